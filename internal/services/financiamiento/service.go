// Package financiamiento provides loan portfolio services
package financiamiento

import (
	"context"
	"fmt"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/cotizador"
	"github.com/rapicredit/backoffice/internal/services/listing"
)

// Service implements FinanciamientoService
type Service struct {
	core   interfaces.CoreClient
	logger *common.Logger
}

// NewService creates a new loan service
func NewService(core interfaces.CoreClient, logger *common.Logger) *Service {
	return &Service{core: core, logger: logger}
}

var _ interfaces.FinanciamientoService = (*Service)(nil)

func searchFields(f models.Financiamiento) []string {
	return []string{f.Codigo, f.NombreCliente, f.ClienteID}
}

// esVivo reports whether the loan still has an outstanding balance. A
// record with no estado at all is treated as live; legacy payloads only
// set estado once the loan is closed.
func esVivo(f models.Financiamiento) bool {
	switch models.NormalizeToken(f.Estado) {
	case "CANCELADO", "SALDADO", "CERRADO":
		return false
	}
	return true
}

// List fetches the loan book, applies the query and status filters, and
// sorts by client name using Spanish collation.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Financiamiento, error) {
	prestamos, err := s.core.ListFinanciamientos(ctx)
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(prestamos, opts.Query, opts.Estado, searchFields, esVivo)

	return listing.SortByName(filtered, func(f models.Financiamiento) string { return f.NombreCliente }), nil
}

// ListRecientes returns the most recently disbursed loans, newest first.
// Records whose start date cannot be parsed sort to the end.
func (s *Service) ListRecientes(ctx context.Context, limit int) ([]models.Financiamiento, error) {
	prestamos, err := s.core.ListFinanciamientos(ctx)
	if err != nil {
		return nil, err
	}

	sorted := listing.SortByDateDesc(prestamos, func(f models.Financiamiento) string { return f.FechaInicio })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// Get fetches a single loan by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Financiamiento, error) {
	if id == "" {
		return nil, models.NewValidationError("id", "el identificador del financiamiento es requerido")
	}
	return s.core.GetFinanciamiento(ctx, id)
}

// Create validates the disbursement terms and opens the loan upstream.
// The projected installment is attached to the payload so the core API
// stores the same figure the quote screen showed.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*models.Financiamiento, error) {
	monto := asNumber(payload["monto"], payload["capital"])
	plazo := int(asNumber(payload["plazoMeses"], payload["plazo"]))
	tasa := asNumber(payload["tasaAnual"], payload["tasa"])
	frecuencia := models.NormalizeFrequency(asString(payload["frecuencia"]))

	if monto <= 0 {
		return nil, models.NewValidationError("monto", "el monto debe ser mayor que cero")
	}
	if plazo <= 0 {
		return nil, models.NewValidationError("plazoMeses", "el plazo debe ser mayor que cero")
	}
	if tasa < 0 {
		return nil, models.NewValidationError("tasaAnual", "la tasa no puede ser negativa")
	}
	if asString(payload["clienteId"]) == "" && asString(payload["cliente"]) == "" {
		return nil, models.NewValidationError("clienteId", "el cliente es requerido")
	}

	if cuota, ok := cotizador.Cuota(monto, plazo, tasa, frecuencia); ok {
		payload["cuota"] = cuota
	}

	creado, err := s.core.CreateFinanciamiento(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to open loan: %w", err)
	}

	s.logger.Info().
		Str("financiamiento_id", creado.ID).
		Float64("capital", creado.CapitalInicial).
		Msg("Loan opened")
	return creado, nil
}

// RegistrarAbono validates and applies a payment against a loan.
func (s *Service) RegistrarAbono(ctx context.Context, payload map[string]any) (*models.Abono, error) {
	if asString(payload["financiamientoId"]) == "" && asString(payload["financiamiento"]) == "" {
		return nil, models.NewValidationError("financiamientoId", "el financiamiento es requerido")
	}
	if asNumber(payload["monto"]) <= 0 {
		return nil, models.NewValidationError("monto", "el monto del abono debe ser mayor que cero")
	}

	abono, err := s.core.CreateAbono(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to register payment: %w", err)
	}

	s.logger.Info().
		Str("abono_id", abono.ID).
		Str("financiamiento_id", abono.FinanciamientoID).
		Float64("monto", abono.Monto).
		Msg("Payment registered")
	return abono, nil
}

// asNumber reads the first numeric candidate from a decoded JSON form.
func asNumber(candidates ...any) float64 {
	for _, v := range candidates {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
