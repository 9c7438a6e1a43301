package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/datifyy/datifyy-api/internal/pkg/jwt"
)

func authedRequest(t *testing.T, svc *jwt.Service, userID uuid.UUID, banned bool) *http.Request {
	t.Helper()
	token, err := svc.GenerateAccessToken(userID, "user", banned)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthPassesClaimsToHandler(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	var gotID uuid.UUID
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, svc, userID, false))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != userID {
		t.Fatalf("expected user %s in context, got %s", userID, gotID)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	expired := jwt.NewService("test-secret", -time.Minute)
	handler := Auth(expired)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, expired, uuid.New(), false))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthBannedAccountForbidden(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a banned account")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, svc, uuid.New(), true))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
