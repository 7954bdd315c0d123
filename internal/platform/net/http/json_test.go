package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type listQ struct {
	Period string `query:"period" default:"day" validate:"oneof=day week month"`
}

func TestQueryHandler_Success(t *testing.T) {
	t.Parallel()

	h := QueryHandler[listQ](func(_ *http.Request, in listQ) (any, error) {
		return map[string]string{"period": in.Period}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/x?period=week", nil)
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, `"period":"week"`) {
		t.Fatalf("body %q missing bound period", body)
	}
}

func TestQueryHandler_BindError(t *testing.T) {
	t.Parallel()

	h := QueryHandler[listQ](func(_ *http.Request, _ listQ) (any, error) {
		t.Fatal("handler should not be called on bind error")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/x?period=fortnight", nil)
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code == http.StatusOK {
		t.Fatalf("expected non-200 on bind error, got %d", rr.Code)
	}
	if !strings.Contains(strings.ToLower(rr.Body.String()), "message") {
		t.Fatalf("expected error wire in body, got %q", rr.Body.String())
	}
}

func TestQueryHandler_HandlerError(t *testing.T) {
	t.Parallel()

	h := QueryHandler[listQ](func(_ *http.Request, _ listQ) (any, error) {
		return nil, errors.New("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code == http.StatusOK {
		t.Fatalf("expected non-200 on handler error, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("expected error message in body, got %q", rr.Body.String())
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	t.Parallel()

	h := JSONHandlerNoBody(func(_ *http.Request) (any, error) {
		return map[string]string{"ok": "yes"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok":"yes"`) {
		t.Fatalf("code=%d body=%q", rr.Code, rr.Body.String())
	}
}
