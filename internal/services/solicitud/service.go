// Package solicitud provides credit request workflow services
package solicitud

import (
	"context"
	"fmt"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/listing"
)

// Service implements SolicitudService
type Service struct {
	core   interfaces.CoreClient
	logger *common.Logger
}

// NewService creates a new credit request service
func NewService(core interfaces.CoreClient, logger *common.Logger) *Service {
	return &Service{core: core, logger: logger}
}

var _ interfaces.SolicitudService = (*Service)(nil)

func searchFields(s models.Solicitud) []string {
	return []string{s.NombreCliente, s.ClienteID, s.Motivo}
}

// List fetches credit requests, narrows by workflow state and free-text
// query, and sorts newest first.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Solicitud, error) {
	solicitudes, err := s.core.ListSolicitudes(ctx)
	if err != nil {
		return nil, err
	}

	// The boolean status filter does not apply here; requests move
	// through a workflow instead of an active flag.
	filtered := listing.Filter(solicitudes, opts.Query, models.FiltroTodos, searchFields, nil)

	if opts.EstadoSolicitud != "" {
		narrowed := make([]models.Solicitud, 0, len(filtered))
		for _, sol := range filtered {
			if sol.Estado == opts.EstadoSolicitud {
				narrowed = append(narrowed, sol)
			}
		}
		filtered = narrowed
	}

	return listing.SortByDateDesc(filtered, func(sol models.Solicitud) string { return sol.FechaCreacion }), nil
}

// Get fetches a single credit request by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Solicitud, error) {
	if id == "" {
		return nil, models.NewValidationError("id", "el identificador de la solicitud es requerido")
	}
	return s.core.GetSolicitud(ctx, id)
}

// Create validates the requested terms and files the request upstream.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*models.Solicitud, error) {
	monto, _ := payload["monto"].(float64)
	if monto <= 0 {
		return nil, models.NewValidationError("monto", "el monto solicitado debe ser mayor que cero")
	}
	if clienteID, _ := payload["clienteId"].(string); clienteID == "" {
		if _, ok := payload["cliente"]; !ok {
			return nil, models.NewValidationError("clienteId", "el cliente es requerido")
		}
	}

	creada, err := s.core.CreateSolicitud(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to file credit request: %w", err)
	}

	s.logger.Info().Str("solicitud_id", creada.ID).Float64("monto", creada.Monto).Msg("Credit request filed")
	return creada, nil
}

// Approve sends the approval decision upstream. Requests already in a
// terminal state are refused locally without an upstream call, since the
// core API treats re-decisions as errors anyway.
func (s *Service) Approve(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
	return s.decide(ctx, id, comentario, "aprobar", s.core.ApproveSolicitud)
}

// Reject sends the rejection decision upstream, with the same terminal
// state refusal as Approve.
func (s *Service) Reject(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
	return s.decide(ctx, id, comentario, "rechazar", s.core.RejectSolicitud)
}

func (s *Service) decide(
	ctx context.Context,
	id, comentario, accion string,
	send func(ctx context.Context, id, comentario string) (*models.Solicitud, error),
) (*models.Solicitud, error) {
	actual, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual.Estado.IsTerminal() {
		s.logger.Warn().
			Str("solicitud_id", id).
			Str("estado", string(actual.Estado)).
			Str("accion", accion).
			Msg("Decision refused, request already decided")
		return nil, &models.TerminalStateError{SolicitudID: id, Estado: actual.Estado}
	}

	decidida, err := send(ctx, id, comentario)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("solicitud_id", id).
		Str("accion", accion).
		Str("estado", string(decidida.Estado)).
		Msg("Credit request decided")
	return decidida, nil
}

// Delete removes a credit request. Decided requests stay: they are part
// of the decision trail.
func (s *Service) Delete(ctx context.Context, id string) error {
	actual, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if actual.Estado.IsTerminal() {
		return &models.TerminalStateError{SolicitudID: id, Estado: actual.Estado}
	}
	return s.core.DeleteSolicitud(ctx, id)
}
