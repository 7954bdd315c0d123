package net_test

import (
	"net/http"
	"testing"

	perr "gitstats/internal/platform/errors"
	pnet "gitstats/internal/platform/net"
)

func TestError_NilFallsBackToOK(t *testing.T) {
	status, w := pnet.Error(nil)

	if status != http.StatusOK {
		t.Fatalf("status %d want %d", status, http.StatusOK)
	}
	if w != (perr.Wire{}) {
		t.Fatalf("expected empty wire, got %+v", w)
	}
}

func TestError_ProjectErrorMapped(t *testing.T) {
	err := perr.Unauthorizedf("Please login again")

	status, w := pnet.Error(err)

	if status != http.StatusUnauthorized {
		t.Fatalf("status %d want %d", status, http.StatusUnauthorized)
	}
	if w.Message != "Please login again" {
		t.Fatalf("message %q", w.Message)
	}
	if w.Detail != "" {
		t.Fatalf("expected no detail, got %q", w.Detail)
	}
}

func TestError_WrappedCauseInDetail(t *testing.T) {
	err := perr.Wrap(perr.Upstreamf("github responded 502"), perr.ErrorCodeUpstream, "Error loading repositories")

	status, w := pnet.Error(err)

	if status != http.StatusInternalServerError {
		t.Fatalf("status %d want %d", status, http.StatusInternalServerError)
	}
	if w.Message != "Error loading repositories" {
		t.Fatalf("message %q", w.Message)
	}
	if w.Detail != "github responded 502" {
		t.Fatalf("detail %q", w.Detail)
	}
}
