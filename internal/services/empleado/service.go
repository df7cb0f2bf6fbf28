// Package empleado provides staff management services
package empleado

import (
	"context"
	"fmt"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/listing"
)

// Service implements EmpleadoService
type Service struct {
	core   interfaces.CoreClient
	logger *common.Logger
}

// NewService creates a new employee service
func NewService(core interfaces.CoreClient, logger *common.Logger) *Service {
	return &Service{core: core, logger: logger}
}

var _ interfaces.EmpleadoService = (*Service)(nil)

func searchFields(e models.Empleado) []string {
	return []string{e.Codigo, e.NombreCompleto, e.Cedula, e.Email}
}

func (s *Service) list(ctx context.Context, opts interfaces.ListOptions, keep func(models.Empleado) bool) ([]models.Empleado, error) {
	empleados, err := s.core.ListEmpleados(ctx)
	if err != nil {
		return nil, err
	}

	if keep != nil {
		kept := make([]models.Empleado, 0, len(empleados))
		for _, e := range empleados {
			if keep(e) {
				kept = append(kept, e)
			}
		}
		empleados = kept
	}

	filtered := listing.Filter(empleados, opts.Query, opts.Estado, searchFields,
		func(e models.Empleado) bool { return e.Activo })

	return listing.SortByName(filtered, func(e models.Empleado) string { return e.NombreCompleto }), nil
}

// List fetches the staff roster, filtered and sorted by name.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Empleado, error) {
	return s.list(ctx, opts, nil)
}

// ListAsesores narrows the roster to field roles: advisors and collectors.
func (s *Service) ListAsesores(ctx context.Context, opts interfaces.ListOptions) ([]models.Empleado, error) {
	return s.list(ctx, opts, func(e models.Empleado) bool {
		return e.Rol == models.RolAsesor || e.Rol == models.RolCobrador
	})
}

// Get fetches a single employee by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Empleado, error) {
	if id == "" {
		return nil, models.NewValidationError("id", "el identificador del empleado es requerido")
	}
	return s.core.GetEmpleado(ctx, id)
}

// Create validates the hire form and registers the employee upstream.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*models.Empleado, error) {
	nombres, _ := payload["nombres"].(string)
	nombreCompleto, _ := payload["nombreCompleto"].(string)
	if nombres == "" && nombreCompleto == "" {
		return nil, models.NewValidationError("nombres", "el nombre del empleado es requerido")
	}
	if email, _ := payload["email"].(string); email == "" {
		return nil, models.NewValidationError("email", "el correo electrónico es requerido")
	}

	creado, err := s.core.CreateEmpleado(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}

	s.logger.Info().Str("empleado_id", creado.ID).Str("rol", creado.Rol).Msg("Employee registered")
	return creado, nil
}

// ToggleEstado flips the employee's active flag upstream and returns the
// confirmed record. The listing is only as current as the next fetch;
// there is no local-only override to drift out of sync.
func (s *Service) ToggleEstado(ctx context.Context, id string, activo bool) (*models.Empleado, error) {
	if id == "" {
		return nil, models.NewValidationError("id", "el identificador del empleado es requerido")
	}

	actualizado, err := s.core.ToggleEmpleado(ctx, id, activo)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("empleado_id", id).Bool("activo", actualizado.Activo).Msg("Employee status changed")
	return actualizado, nil
}
