package httpadapter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret []byte, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "frontend_user",
		"exp": jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestChatRejectsExpiredToken(t *testing.T) {
	handler := newTestServer(t)
	expired := signToken(t, []byte("test-secret"), time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/chat?token="+expired, chatBody(t, "sess-1", "Hej"))
	req.Header.Set("Referer", testReferer)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", rec.Code)
	}
}

func TestChatRejectsTokenSignedWithWrongSecret(t *testing.T) {
	handler := newTestServer(t)
	forged := signToken(t, []byte("other-secret"), time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/chat?token="+forged, chatBody(t, "sess-1", "Hej"))
	req.Header.Set("Referer", testReferer)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for forged token, got %d", rec.Code)
	}
}
