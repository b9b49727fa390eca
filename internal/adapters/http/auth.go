package httpadapter

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// checkKey compares the `key` query parameter with the configured backend
// key.
func (s *Server) checkKey(r *http.Request) bool {
	return s.cfg.BackendKey != "" && r.URL.Query().Get("key") == s.cfg.BackendKey
}

// checkReferer requires the Referer header to start with the allowed
// prefix. Empty config disables the check.
func (s *Server) checkReferer(r *http.Request) bool {
	if s.cfg.AllowedReferer == "" {
		return true
	}
	referer := r.Header.Get("Referer")
	return referer != "" && strings.HasPrefix(referer, s.cfg.AllowedReferer)
}

// createAccessToken issues a short-lived HS256 token for the front-end.
func (s *Server) createAccessToken(ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": "frontend_user",
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (s *Server) validateToken(raw string) bool {
	if raw == "" {
		return false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil {
		return false
	}
	return token.Valid
}
