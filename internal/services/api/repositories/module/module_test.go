package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitstats/internal/forge/github"
	modkit "gitstats/internal/modkit"
	phttp "gitstats/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// newMounted builds the module against a canned upstream and mounts it on chi
func newMounted(t *testing.T, ts oauth2.TokenSource) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(upstream.Close)

	deps := modkit.Deps{
		Forge: github.NewClient(github.Options{BaseURL: upstream.URL}),
		Token: ts,
	}
	mux := chi.NewMux()
	New(deps).MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func TestModule_RoutesRequireBearer(t *testing.T) {
	t.Parallel()

	h := newMounted(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repositories", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wire))
	require.Equal(t, "Please login first", wire["message"])
}

func TestModule_HeaderBearerPassesAuth(t *testing.T) {
	t.Parallel()

	h := newMounted(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/repositories", nil)
	req.Header.Set("Authorization", "Bearer ghp_abc")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestModule_FallbackTokenSourcePassesAuth(t *testing.T) {
	t.Parallel()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "pat"})
	h := newMounted(t, ts)

	// no Authorization header, the configured PAT carries the request
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repositories", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
