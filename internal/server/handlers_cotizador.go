package server

import (
	"net/http"

	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/cotizador"
)

// handleCotizador handles POST /api/cotizador: a pure quote preview, no
// upstream call. Inputs that do not describe a computable loan return
// 400 rather than a zeroed quote.
func (s *Server) handleCotizador(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Monto      float64 `json:"monto"`
		PlazoMeses int     `json:"plazoMeses"`
		TasaAnual  float64 `json:"tasaAnual"`
		Frecuencia string  `json:"frecuencia"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	frecuencia := models.NormalizeFrequency(req.Frecuencia)
	cotizacion, ok := cotizador.Cotizar(req.Monto, req.PlazoMeses, req.TasaAnual, frecuencia)
	if !ok {
		WriteError(w, http.StatusBadRequest, "monto y plazo deben ser mayores que cero")
		return
	}

	WriteJSON(w, http.StatusOK, cotizacion)
}
