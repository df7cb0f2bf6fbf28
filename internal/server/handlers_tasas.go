package server

import (
	"net/http"
)

// handleTasas handles GET and POST /api/tasas.
func (s *Server) handleTasas(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tasas, err := s.app.TasaService.List(r.Context(), parseListOptions(r))
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, tasas)

	case http.MethodPost:
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return
		}
		creada, err := s.app.TasaService.Create(r.Context(), payload)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, creada)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleTasaByID handles PUT and DELETE /api/tasas/{id}.
func (s *Server) handleTasaByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return
		}
		actualizada, err := s.app.TasaService.Update(r.Context(), id, payload)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, actualizada)

	case http.MethodDelete:
		if err := s.app.TasaService.Delete(r.Context(), id); err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "eliminada"})

	default:
		RequireMethod(w, r, http.MethodPut, http.MethodDelete)
	}
}

// handleTasaEstado handles PATCH /api/tasas/{id}/estado.
func (s *Server) handleTasaEstado(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPatch) {
		return
	}

	var req struct {
		Activa bool `json:"activa"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	actualizada, err := s.app.TasaService.ToggleEstado(r.Context(), id, req.Activa)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, actualizada)
}
