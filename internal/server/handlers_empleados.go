package server

import (
	"net/http"
)

// handleEmpleados handles GET and POST /api/empleados.
func (s *Server) handleEmpleados(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		empleados, err := s.app.EmpleadoService.List(r.Context(), parseListOptions(r))
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, empleados)

	case http.MethodPost:
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return
		}
		creado, err := s.app.EmpleadoService.Create(r.Context(), payload)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, creado)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleAsesores handles GET /api/asesores: the roster narrowed to
// field roles, for portfolio assignment pickers.
func (s *Server) handleAsesores(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	asesores, err := s.app.EmpleadoService.ListAsesores(r.Context(), parseListOptions(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, asesores)
}

// handleEmpleadoByID handles GET /api/empleados/{id}.
func (s *Server) handleEmpleadoByID(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	empleado, err := s.app.EmpleadoService.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, empleado)
}

// handleEmpleadoEstado handles PATCH /api/empleados/{id}/estado. The
// change is made upstream and the confirmed record is returned; the
// listing refreshes from the response.
func (s *Server) handleEmpleadoEstado(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPatch) {
		return
	}

	var req struct {
		Activo bool `json:"activo"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	actualizado, err := s.app.EmpleadoService.ToggleEstado(r.Context(), id, req.Activo)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, actualizado)
}
