// Package api exposes HTTP handlers for the assessment service.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"example.com/fitassess/internal/advice"
	"example.com/fitassess/internal/assessment"
	"example.com/fitassess/internal/auth"
	"example.com/fitassess/internal/catalog"
	"example.com/fitassess/internal/profile"
)

const maxBodyBytes = 64 << 10

// Handler handles HTTP interactions.
type Handler struct {
	service *assessment.Service
	coach   advice.Advisor
	logger  *slog.Logger
}

// NewHandler constructs Handler. coach answers the public coach endpoint.
func NewHandler(service *assessment.Service, coach advice.Advisor, logger *slog.Logger) *Handler {
	if coach == nil {
		coach = advice.NoopAdvisor{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, coach: coach, logger: logger}
}

// RegisterRoutes sets up routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/v1/catalog/exercises", h.listExercises)
	mux.HandleFunc("/v1/catalog/exercises/", h.exerciseByID)
	mux.HandleFunc("/v1/catalog/products", h.listProducts)
	mux.HandleFunc("/v1/recommendations", h.recommend)
	mux.HandleFunc("/v1/coach", h.coachAdvice)
	mux.HandleFunc("/v1/sessions", h.sessions)
	mux.HandleFunc("/v1/sessions/", h.sessionRoutes)
}

// PublicPaths lists the routes served without a bearer token.
func PublicPaths() (exact []string, prefixes []string) {
	return []string{"/healthz", "/metrics", "/v1/recommendations", "/v1/coach"}, []string{"/v1/catalog/"}
}

// healthz returns an OK response for readiness checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.service.Catalog().Exercises()})
}

func (h *Handler) exerciseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/catalog/exercises/")
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing exercise id")
		return
	}
	exercise, err := h.service.Catalog().Exercise(id)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "exercise not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, exercise)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.service.Catalog().Products()})
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	var req RecommendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	level, err := req.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.service.Recommend(req.TargetZones, req.Injuries, level))
}

func (h *Handler) coachAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	var req advice.Request
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.coach.Advise(r.Context(), req)
	switch {
	case errors.Is(err, advice.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "rate_limited", advice.ErrRateLimited.Error())
	case errors.Is(err, advice.ErrCreditsExhausted):
		writeError(w, http.StatusPaymentRequired, "payment_required", advice.ErrCreditsExhausted.Error())
	case errors.Is(err, advice.ErrMalformed):
		h.logger.Warn("coach reply unreadable, serving fallback", "error", err)
		writeJSON(w, http.StatusOK, advice.MalformedFallback)
	case err != nil:
		h.logger.Warn("coach request failed, serving fallback", "error", err)
		writeJSON(w, http.StatusOK, advice.Fallback)
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) sessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	claims, ok := requireScope(w, r, auth.ScopeAssessmentWrite)
	if !ok {
		return
	}
	session, err := h.service.StartSession(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, newSessionResponse(session, profile.SignalNone))
}

// sessionRoutes dispatches /v1/sessions/{id}[/actions|/plan|/advice].
func (h *Handler) sessionRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions/"), "/")
	parts := strings.Split(rest, "/")
	if rest == "" || len(parts) > 2 {
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
		return
	}
	id := parts[0]
	sub := ""
	if len(parts) == 2 {
		sub = parts[1]
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		h.getSession(w, r, id)
	case sub == "actions" && r.Method == http.MethodPost:
		h.applyAction(w, r, id)
	case sub == "plan" && r.Method == http.MethodGet:
		h.getPlan(w, r, id)
	case sub == "advice" && r.Method == http.MethodGet:
		h.getAdvice(w, r, id)
	case sub == "" || sub == "actions" || sub == "plan" || sub == "advice":
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
	}
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request, id string) {
	claims, ok := requireScope(w, r, auth.ScopeAssessmentRead)
	if !ok {
		return
	}
	session, err := h.service.GetSession(r.Context(), claims.Subject, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session, profile.SignalNone))
}

func (h *Handler) applyAction(w http.ResponseWriter, r *http.Request, id string) {
	claims, ok := requireScope(w, r, auth.ScopeAssessmentWrite)
	if !ok {
		return
	}
	var action profile.Action
	if !decodeBody(w, r, &action) {
		return
	}
	session, signal, err := h.service.Apply(r.Context(), claims.Subject, id, action)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session, signal))
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request, id string) {
	claims, ok := requireScope(w, r, auth.ScopeAssessmentRead)
	if !ok {
		return
	}
	plan, err := h.service.Plan(r.Context(), claims.Subject, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) getAdvice(w http.ResponseWriter, r *http.Request, id string) {
	claims, ok := requireScope(w, r, auth.ScopeAssessmentRead)
	if !ok {
		return
	}
	result, status, err := h.service.Advice(r.Context(), claims.Subject, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if status != assessment.AdviceReady || result == nil {
		w.Header().Set("X-Advice-Status", string(status))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SessionResponse is the wire view of a session after a read or an action.
type SessionResponse struct {
	ID           string                  `json:"id"`
	Step         string                  `json:"step"`
	State        profile.State           `json:"state"`
	CanProceed   bool                    `json:"canProceed"`
	Signal       profile.Signal          `json:"signal"`
	AdviceStatus assessment.AdviceStatus `json:"adviceStatus"`
}

func newSessionResponse(s *assessment.Session, signal profile.Signal) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		Step:         s.State.Step.String(),
		State:        s.State,
		CanProceed:   s.State.CanProceed(),
		Signal:       signal,
		AdviceStatus: s.AdviceStatus,
	}
}

// RecommendRequest is the stateless filter payload.
type RecommendRequest struct {
	TargetZones   []string `json:"targetZones"`
	Injuries      []string `json:"injuries"`
	ActivityLevel string   `json:"activityLevel"`
}

// Validate parses the level and drops the "none" marker from injuries.
// A blank level applies no difficulty filter.
func (r *RecommendRequest) Validate() (profile.ActivityLevel, error) {
	level := profile.LevelUnset
	if strings.TrimSpace(r.ActivityLevel) != "" {
		parsed, err := profile.ParseActivityLevel(r.ActivityLevel)
		if err != nil {
			return "", err
		}
		level = parsed
	}
	p := profile.Profile{Injuries: r.Injuries}
	r.Injuries = p.ActiveInjuries()
	return level, nil
}

func requireScope(w http.ResponseWriter, r *http.Request, scope string) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasScope(scope) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+scope+" required")
		return nil, false
	}
	return claims, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assessment.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "not_found", "session not found")
	case errors.Is(err, assessment.ErrNotCompleted), errors.Is(err, profile.ErrCompleted):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, profile.ErrInvalidActivityLevel),
		errors.Is(err, profile.ErrInvalidZone),
		errors.Is(err, profile.ErrInvalidInjury),
		errors.Is(err, profile.ErrEmptyGoal),
		errors.Is(err, profile.ErrUnknownAction),
		errors.Is(err, profile.ErrWrongStep):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
