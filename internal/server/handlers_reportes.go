package server

import (
	"net/http"
	"strings"
)

// handleDashboard handles GET /api/dashboard.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	resumen, err := s.app.ReporteService.Dashboard(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, resumen)
}

// handleDashboardChart handles GET /api/dashboard/chart (PNG).
func (s *Server) handleDashboardChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.ReporteService.DashboardChart(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleDecisiones handles GET /api/reportes/decisiones?desde=&hasta=.
func (s *Server) handleDecisiones(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	decisiones, err := s.app.ReporteService.Decisiones(r.Context(),
		r.URL.Query().Get("desde"), r.URL.Query().Get("hasta"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, decisiones)
}

// handleEstadisticasAsesor handles GET /api/reportes/asesores/{id}.
func (s *Server) handleEstadisticasAsesor(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/reportes/asesores/")
	estadisticas, err := s.app.ReporteService.EstadisticasAsesor(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, estadisticas)
}

// handleReasignarCartera handles POST /api/cartera/reasignar.
func (s *Server) handleReasignarCartera(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Desde string `json:"desde"`
		Hacia string `json:"hacia"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := s.app.ReporteService.ReassignCartera(r.Context(), req.Desde, req.Hacia); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "cartera reasignada"})
}
