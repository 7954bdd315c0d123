package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "gitstats/internal/platform/errors"
	"gitstats/internal/platform/net"
	"gitstats/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	bearer string
	err    error
}

func (f fakeAuthPort) Parse(r *http.Request) (string, error) {
	return f.bearer, f.err
}

func writeStub(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	mw := middleware.Auth(nil, writeStub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAuth_ErrorFromPortWritesMappedError(t *testing.T) {
	p := fakeAuthPort{err: perr.Unauthorizedf("Please login first")}
	mw := middleware.Auth(p, writeStub)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if nextCalled {
		t.Fatal("did not expect next to be called on auth error")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAuth_SetsBearerOnContext(t *testing.T) {
	p := fakeAuthPort{bearer: "ghp_abc"}
	mw := middleware.Auth(p, writeStub)

	var seenBearer string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenBearer = net.Bearer(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seenBearer != "ghp_abc" {
		t.Fatalf("expected bearer ghp_abc got %q", seenBearer)
	}
}
