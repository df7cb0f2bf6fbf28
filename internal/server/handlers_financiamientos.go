package server

import (
	"net/http"
	"strconv"
)

// handleFinanciamientos handles GET and POST /api/financiamientos.
func (s *Server) handleFinanciamientos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		prestamos, err := s.app.FinanciamientoService.List(r.Context(), parseListOptions(r))
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, prestamos)

	case http.MethodPost:
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return
		}
		creado, err := s.app.FinanciamientoService.Create(r.Context(), payload)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		s.app.ReporteService.InvalidateDashboard(r.Context())
		WriteJSON(w, http.StatusCreated, creado)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleFinanciamientosRecientes handles GET /api/financiamientos/recientes.
func (s *Server) handleFinanciamientosRecientes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	prestamos, err := s.app.FinanciamientoService.ListRecientes(r.Context(), limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, prestamos)
}

// handleFinanciamientoByID handles GET /api/financiamientos/{id}.
func (s *Server) handleFinanciamientoByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := PathParam(r, "/api/financiamientos/", "")
	prestamo, err := s.app.FinanciamientoService.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, prestamo)
}

// handleAbonos handles POST /api/abonos.
func (s *Server) handleAbonos(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var payload map[string]any
	if !DecodeJSON(w, r, &payload) {
		return
	}

	abono, err := s.app.FinanciamientoService.RegistrarAbono(r.Context(), payload)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.app.ReporteService.InvalidateDashboard(r.Context())
	WriteJSON(w, http.StatusCreated, abono)
}
