package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parksandresorts/backster-agent/internal/app/audit"
	"github.com/parksandresorts/backster-agent/internal/app/conversation"
	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// Config carries the boundary's auth settings. Empty AllowedReferer
// disables the referer check (local development and tests).
type Config struct {
	BackendKey     string
	JWTSecret      []byte
	AllowedReferer string
}

type Server struct {
	svc      *conversation.Service
	auditSvc *audit.Service
	cfg      Config
}

func NewServer(svc *conversation.Service, auditSvc *audit.Service, cfg Config) http.Handler {
	s := &Server{svc: svc, auditSvc: auditSvc, cfg: cfg}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/token", s.handleToken)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/dispatches", s.handleDispatches)

	return chainMiddlewares(mux, withRequestID, withLogging, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	SessionID      string `json:"session_id"`
	Query          string `json:"query"`
	Park           string `json:"park"`
	EmploymentType string `json:"employmentType"`
}

type chatResponse struct {
	FromBot  bool     `json:"fromBot"`
	Text     string   `json:"text"`
	Sources  []string `json:"sources"`
	Contents []string `json:"contents"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type dispatchesResponse struct {
	Dispatches []*domain.DispatchRecord `json:"dispatches"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if !s.checkKey(r) || !s.checkReferer(r) {
		forbidden(w, "Not authenticated")
		return
	}

	token, err := s.createAccessToken(tokenTTL)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if !s.checkReferer(r) {
		forbidden(w, "Not authenticated")
		return
	}
	if !s.validateToken(r.URL.Query().Get("token")) {
		forbidden(w, "Invalid or expired token")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.SessionID == "" {
		badRequest(w, "session_id is required")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		badRequest(w, "query is required")
		return
	}

	park, err := domain.ParsePark(req.Park)
	if err != nil {
		badRequest(w, "unknown park")
		return
	}
	employment, err := domain.ParseEmploymentType(req.EmploymentType)
	if err != nil {
		badRequest(w, "unknown employment type")
		return
	}

	out, err := s.svc.Chat(r.Context(), conversation.ChatInput{
		SessionID:      domain.SessionID(req.SessionID),
		Query:          req.Query,
		Park:           park,
		EmploymentType: employment,
	})
	if err != nil {
		observability.ChatRequests.WithLabelValues("error").Inc()
		internalError(w, err)
		return
	}
	observability.ChatRequests.WithLabelValues("ok").Inc()

	writeJSON(w, http.StatusOK, chatResponse{
		FromBot:  true,
		Text:     out.Answer,
		Sources:  emptyIfNil(out.Sources),
		Contents: emptyIfNil(out.Contents),
	})
}

func (s *Server) handleDispatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if !s.checkKey(r) {
		forbidden(w, "Not authenticated")
		return
	}

	records, err := s.auditSvc.RecentDispatches(r.Context(), 50)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dispatchesResponse{Dispatches: records})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func forbidden(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusForbidden, map[string]string{
		"detail": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

const tokenTTL = 30 * time.Minute
