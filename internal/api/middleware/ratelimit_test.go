package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allow bool
	err   error
}

func (l *stubLimiter) Allow(_ context.Context, _, _ string) (bool, error) {
	return l.allow, l.err
}

func runRateLimit(t *testing.T, limiter Limiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := RateLimit(limiter, "generate", zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRateLimit_Allows(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{allow: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got code %d called %v", rec.Code, called)
	}
}

func TestRateLimit_Throttles(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{allow: false})
	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{err: errors.New("redis down")})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("limiter outage must fail open, got code %d called %v", rec.Code, called)
	}
}
