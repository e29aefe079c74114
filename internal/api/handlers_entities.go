package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"opsdesk/internal/store"
)

// mountCRUD registers the uniform list/create/update/delete endpoints for
// one repository.
func mountCRUD[T store.Entity](r chi.Router, path string, s *store.Store[T]) {
	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rows, err := s.List(req.Context())
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, rows)
	})

	r.Post(path, func(w http.ResponseWriter, req *http.Request) {
		var draft T
		if err := decodeJSON(req, &draft); err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		created, err := s.Create(req.Context(), draft)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	})

	r.Patch(path+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, err := pathID(req)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		var fields map[string]any
		if err := decodeJSON(req, &fields); err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		updated, err := s.Update(req.Context(), id, fields)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	})

	r.Delete(path+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, err := pathID(req)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.Delete(req.Context(), id); err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusNoContent, nil)
	})
}

func (a *API) handleAddStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	item, err := a.stores.Inventory.AddStock(r.Context(), id, req.Quantity)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
