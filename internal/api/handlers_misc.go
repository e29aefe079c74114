package api

import (
	"net/http"
	"strconv"

	"opsdesk/internal/auth"
	"opsdesk/internal/models"
)

func (a *API) handleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := a.auditLog.List(r.Context(), a.config.AuditListLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (a *API) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit := a.config.ActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = n
	}
	items, err := a.feed.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// handleSession records a LOGIN audit event for the identity the auth layer
// attached to the request. Session establishment itself happens upstream.
func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	id := auth.FromContext(r.Context())
	a.audit.Record(r.Context(), models.ActionLogin, "user", id.ID, map[string]any{"email": id.Email}, models.SeverityLow)
	respondJSON(w, http.StatusOK, map[string]any{
		"user_id": id.ID,
		"email":   id.Email,
		"name":    id.Name,
	})
}

func (a *API) handleOrg(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"organization": a.config.OrganizationName})
}
