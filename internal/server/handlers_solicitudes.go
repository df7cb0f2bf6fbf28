package server

import (
	"net/http"

	"github.com/rapicredit/backoffice/internal/models"
)

// handleSolicitudes handles GET and POST /api/solicitudes. Listings
// accept an estado param with workflow-state values (EN_REVISION,
// APROBADA, ...) in addition to the free-text q param; TODOS and
// unrecognized values return the full list.
func (s *Server) handleSolicitudes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		opts := parseListOptions(r)
		opts.EstadoSolicitud = models.EstadoSolicitudFilter(r.URL.Query().Get("estado"))
		solicitudes, err := s.app.SolicitudService.List(r.Context(), opts)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, solicitudes)

	case http.MethodPost:
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return
		}
		creada, err := s.app.SolicitudService.Create(r.Context(), payload)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, creada)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleSolicitudByID handles GET and DELETE /api/solicitudes/{id}.
func (s *Server) handleSolicitudByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		solicitud, err := s.app.SolicitudService.Get(r.Context(), id)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, solicitud)

	case http.MethodDelete:
		if err := s.app.SolicitudService.Delete(r.Context(), id); err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "eliminada"})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodDelete)
	}
}

// handleSolicitudDecision handles POST /api/solicitudes/{id}/aprobar
// and /api/solicitudes/{id}/rechazar. A request already decided returns
// 409 without reaching the upstream API.
func (s *Server) handleSolicitudDecision(w http.ResponseWriter, r *http.Request, id string, approve bool) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Comentario string `json:"comentario"`
	}
	if r.ContentLength > 0 && !DecodeJSON(w, r, &req) {
		return
	}

	var (
		decidida *models.Solicitud
		err      error
	)
	if approve {
		decidida, err = s.app.SolicitudService.Approve(r.Context(), id, req.Comentario)
	} else {
		decidida, err = s.app.SolicitudService.Reject(r.Context(), id, req.Comentario)
	}
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	s.app.ReporteService.InvalidateDashboard(r.Context())
	WriteJSON(w, http.StatusOK, decidida)
}
