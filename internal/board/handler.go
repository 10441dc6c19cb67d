// HTTP handlers for the job registry and application ledger.
//
// Routes:
//
//	GET    /jobs                   → public listing with filters
//	GET    /jobs/{id}              → public detail (active postings only)
//	POST   /jobs                   → post a job (employer)
//	PUT    /jobs/{id}              → edit a posting (owner)
//	DELETE /jobs/{id}              → delete a posting (owner, cascades)
//	POST   /jobs/{id}/apply        → apply (seeker)
//	GET    /jobs/{id}/applications → submissions against a posting (owner)
//	GET    /my/jobs                → employer's own postings
//	GET    /my/applications        → seeker's own applications
package board

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"jobportal/board-service/internal/identity"
)

// Handler holds shared dependencies for the board routes.
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all board routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /jobs", h.listJobs)
	mux.HandleFunc("GET /jobs/{id}", h.getJob)
	mux.HandleFunc("POST /jobs", h.createJob)
	mux.HandleFunc("PUT /jobs/{id}", h.updateJob)
	mux.HandleFunc("DELETE /jobs/{id}", h.deleteJob)
	mux.HandleFunc("POST /jobs/{id}/apply", h.apply)
	mux.HandleFunc("GET /jobs/{id}/applications", h.listJobApplications)
	mux.HandleFunc("GET /my/jobs", h.listMyJobs)
	mux.HandleFunc("GET /my/applications", h.listMyApplications)
}

// ─── Job registry ────────────────────────────────────────────────────────────

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := JobFilter{
		Text:     q.Get("search"),
		Location: q.Get("location"),
		JobType:  q.Get("jobType"),
	}

	jobs, err := h.svc.ListActive(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, map[string]any{"jobs": jobs, "total": len(jobs)})
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.svc.GetActive(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, job)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var f JobFields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	job, err := h.svc.Create(r.Context(), identity.ActorFrom(r.Context()), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonWith(w, http.StatusCreated, job)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	var f JobFields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	job, err := h.svc.Update(r.Context(), identity.ActorFrom(r.Context()), r.PathValue("id"), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, job)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), identity.ActorFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, map[string]string{"status": "deleted"})
}

func (h *Handler) listMyJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListMine(r.Context(), identity.ActorFrom(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, map[string]any{"jobs": jobs, "total": len(jobs)})
}

// ─── Application ledger ──────────────────────────────────────────────────────

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CoverLetter string `json:"coverLetter"`
	}
	// The cover letter is optional; an empty body is a valid application.
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
	}

	app, err := h.svc.Apply(r.Context(), identity.ActorFrom(r.Context()), r.PathValue("id"), body.CoverLetter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonWith(w, http.StatusCreated, app)
}

func (h *Handler) listMyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListForApplicant(r.Context(), identity.ActorFrom(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, map[string]any{"applications": apps, "total": len(apps)})
}

func (h *Handler) listJobApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListForJob(r.Context(), identity.ActorFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	jsonOK(w, map[string]any{"applications": apps, "total": len(apps)})
}

// ─── Error mapping ───────────────────────────────────────────────────────────

// writeError maps domain errors to HTTP status codes. A duplicate apply is
// a conflict, not a failure; unexpected errors are logged and surfaced as
// a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		ve *ValidationError
		fe *ForbiddenError
	)
	switch {
	case errors.As(err, &ve):
		jsonError(w, ve.Error(), http.StatusBadRequest)
	case errors.As(err, &fe):
		if fe.Reason == ReasonAuthRequired {
			jsonError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		jsonError(w, fe.Error(), http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDuplicate):
		jsonError(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("[board] internal error: %v", err)
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
