// Package cliente provides client portfolio services
package cliente

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/listing"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service implements ClienteService
type Service struct {
	core   interfaces.CoreClient
	logger *common.Logger
}

// NewService creates a new client service
func NewService(core interfaces.CoreClient, logger *common.Logger) *Service {
	return &Service{core: core, logger: logger}
}

var _ interfaces.ClienteService = (*Service)(nil)

// searchFields returns the values the free-text query is matched against.
func searchFields(c models.Cliente) []string {
	return []string{c.Codigo, c.NombreCompleto, c.Cedula}
}

// List fetches the client portfolio, applies the query and status
// filters, and sorts by full name using Spanish collation.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Cliente, error) {
	clientes, err := s.core.ListClientes(ctx)
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(clientes, opts.Query, opts.Estado, searchFields,
		func(c models.Cliente) bool { return c.Activo })

	return listing.SortByName(filtered, func(c models.Cliente) string { return c.NombreCompleto }), nil
}

// Get fetches a single client by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Cliente, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.NewValidationError("id", "el identificador del cliente es requerido")
	}
	return s.core.GetCliente(ctx, id)
}

// Create validates the intake form and registers the client upstream.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*models.Cliente, error) {
	if err := validateIntake(payload); err != nil {
		return nil, err
	}

	creado, err := s.core.CreateCliente(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to register client: %w", err)
	}

	s.logger.Info().Str("cliente_id", creado.ID).Str("codigo", creado.Codigo).Msg("Client registered")
	return creado, nil
}

// UploadFoto attaches a photo to the client record and returns its URL.
func (s *Service) UploadFoto(ctx context.Context, clienteID, filename string, file io.Reader) (string, error) {
	if strings.TrimSpace(clienteID) == "" {
		return "", models.NewValidationError("cliente_id", "el identificador del cliente es requerido")
	}
	return s.core.UploadClienteFoto(ctx, clienteID, filename, file)
}

// validateIntake rejects client payloads the core API would bounce anyway,
// so operators get a field-level message instead of an upstream error.
func validateIntake(payload map[string]any) error {
	nombres, _ := payload["nombres"].(string)
	nombreCompleto, _ := payload["nombreCompleto"].(string)
	if strings.TrimSpace(nombres) == "" && strings.TrimSpace(nombreCompleto) == "" {
		return models.NewValidationError("nombres", "el nombre del cliente es requerido")
	}

	if email, ok := payload["email"].(string); ok && strings.TrimSpace(email) != "" {
		if !emailPattern.MatchString(strings.TrimSpace(email)) {
			return models.NewValidationError("email", "el correo electrónico no es válido")
		}
	}

	if cedula, ok := payload["cedula"].(string); ok && strings.TrimSpace(cedula) == "" {
		return models.NewValidationError("cedula", "la cédula no puede estar vacía")
	}

	return nil
}
