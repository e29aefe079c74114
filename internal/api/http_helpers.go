package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"opsdesk/internal/store"
)

var errInvalidLimit = errors.New("limit must be a positive integer")

func decodeJSON(r *http.Request, dest any) error {
	if r.Body == nil {
		return errors.New("request body required")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	respondJSON(w, status, map[string]any{"error": err.Error()})
}

// respondStoreError maps the store error taxonomy onto HTTP statuses.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case store.IsValidation(err):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrConflict):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func pathName(r *http.Request) string {
	return chi.URLParam(r, "name")
}
