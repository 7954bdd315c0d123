// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyBearer ctxKey = "bearer"
	keyViewer ctxKey = "viewer"
)

// WithRequest annotates context with the request id so chimw.GetReqID can retrieve it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithBearer annotates context with the resolved forge bearer token
func WithBearer(ctx context.Context, token string) context.Context {
	if token != "" {
		ctx = context.WithValue(ctx, keyBearer, token)
	}
	return ctx
}

// WithViewer annotates context with the authenticated forge login
func WithViewer(ctx context.Context, login string) context.Context {
	if login != "" {
		ctx = context.WithValue(ctx, keyViewer, login)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Bearer returns the forge bearer token on the context if present
func Bearer(ctx context.Context) string {
	if v, ok := ctx.Value(keyBearer).(string); ok {
		return v
	}
	return ""
}

// Viewer returns the authenticated forge login on the context if present
func Viewer(ctx context.Context) string {
	if v, ok := ctx.Value(keyViewer).(string); ok {
		return v
	}
	return ""
}
