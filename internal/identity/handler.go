// HTTP handlers for registration, login and profile access.
//
// Routes:
//
//	POST /auth/register/seeker    → create job-seeker account + profile
//	POST /auth/register/employer  → create employer account + company
//	POST /auth/login              → exchange credentials for a session token
//	GET  /profile                 → current identity with its profile
//	PUT  /profile                 → edit contact and profile fields
package identity

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jobportal/board-service/internal/auth"
)

// Handler holds shared dependencies for the account routes.
type Handler struct {
	svc    *Service
	tokens *auth.Tokens
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service, tokens *auth.Tokens) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// RegisterRoutes mounts all account routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/register/seeker", h.registerSeeker)
	mux.HandleFunc("POST /auth/register/employer", h.registerEmployer)
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("GET /profile", h.profile)
	mux.HandleFunc("PUT /profile", h.updateProfile)
}

func (h *Handler) registerSeeker(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	ident, err := h.svc.RegisterSeeker(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonWith(w, http.StatusCreated, ident)
}

func (h *Handler) registerEmployer(w http.ResponseWriter, r *http.Request) {
	var in RegisterEmployerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	ident, err := h.svc.RegisterEmployer(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonWith(w, http.StatusCreated, ident)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" || body.Password == "" {
		jsonError(w, "body must contain username and password", http.StatusBadRequest)
		return
	}

	ident, err := h.svc.Authenticate(r.Context(), body.Username, body.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(ident.ID, string(ident.Role))
	if err != nil {
		log.Printf("[identity] issue token: %v", err)
		jsonError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]any{"token": token, "identity": ident})
}

// profile returns the identity plus its role-specific profile extension.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	actor := ActorFrom(r.Context())
	if actor == nil {
		jsonError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	switch actor.Role {
	case RoleJobSeeker:
		p, err := h.svc.SeekerProfileOf(r.Context(), actor)
		if err != nil {
			h.writeError(w, err)
			return
		}
		jsonOK(w, map[string]any{"identity": actor, "profile": p})
	case RoleEmployer:
		c, err := h.svc.CompanyOf(r.Context(), actor)
		if err != nil {
			h.writeError(w, err)
			return
		}
		jsonOK(w, map[string]any{"identity": actor, "company": c})
	default:
		log.Printf("[identity] identity %s has unknown role %q", actor.ID, actor.Role)
		jsonError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	actor := ActorFrom(r.Context())
	if actor == nil {
		jsonError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	switch actor.Role {
	case RoleJobSeeker:
		var in SeekerProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if err := h.svc.UpdateSeekerProfile(r.Context(), actor, in); err != nil {
			h.writeError(w, err)
			return
		}
	case RoleEmployer:
		var in CompanyUpdate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if err := h.svc.UpdateCompany(r.Context(), actor, in); err != nil {
			h.writeError(w, err)
			return
		}
	default:
		log.Printf("[identity] identity %s has unknown role %q", actor.ID, actor.Role)
		jsonError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]string{"status": "updated"})
}

// writeError maps domain errors to HTTP status codes. Anything unexpected
// is logged and surfaced as a generic 500, never a stack trace.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		jsonError(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBadCredentials):
		jsonError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("[identity] internal error: %v", err)
		jsonError(w, "internal server error", http.StatusInternalServerError)
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	jsonWith(w, http.StatusOK, v)
}

func jsonWith(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
