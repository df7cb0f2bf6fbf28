package interfaces

import (
	"context"
	"io"

	"github.com/rapicredit/backoffice/internal/models"
)

// ListOptions carries the filter criteria every listing screen supports:
// a free-text query matched against per-entity searchable fields, and a
// status filter with a TODOS sentinel. Both combine with logical AND.
type ListOptions struct {
	Query  string
	Estado models.StatusFilter

	// EstadoSolicitud narrows solicitud listings to one workflow state.
	// Empty means all states. Ignored by entities without a workflow.
	EstadoSolicitud models.EstadoSolicitud
}

// ClienteService manages client listings and creation.
type ClienteService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Cliente, error)
	Get(ctx context.Context, id string) (*models.Cliente, error)
	Create(ctx context.Context, payload map[string]any) (*models.Cliente, error)

	// UploadFoto attaches a photo to the client record and returns its URL.
	UploadFoto(ctx context.Context, clienteID, filename string, file io.Reader) (string, error)
}

// FinanciamientoService manages loan listings, creation, and payments.
type FinanciamientoService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Financiamiento, error)

	// ListRecientes returns loans sorted by start date descending.
	ListRecientes(ctx context.Context, limit int) ([]models.Financiamiento, error)

	Get(ctx context.Context, id string) (*models.Financiamiento, error)
	Create(ctx context.Context, payload map[string]any) (*models.Financiamiento, error)

	// RegistrarAbono applies a payment against a loan.
	RegistrarAbono(ctx context.Context, payload map[string]any) (*models.Abono, error)
}

// SolicitudService manages credit request listings and decisions.
type SolicitudService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Solicitud, error)
	Get(ctx context.Context, id string) (*models.Solicitud, error)
	Create(ctx context.Context, payload map[string]any) (*models.Solicitud, error)

	// Approve and Reject refuse locally when the request is already in a
	// terminal state; otherwise the decision is sent upstream and the
	// upstream response is returned as the new source of truth.
	Approve(ctx context.Context, id, comentario string) (*models.Solicitud, error)
	Reject(ctx context.Context, id, comentario string) (*models.Solicitud, error)
	Delete(ctx context.Context, id string) error
}

// EmpleadoService manages employee listings and status toggles.
type EmpleadoService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Empleado, error)

	// ListAsesores returns only advisor/collector roles.
	ListAsesores(ctx context.Context, opts ListOptions) ([]models.Empleado, error)

	Get(ctx context.Context, id string) (*models.Empleado, error)
	Create(ctx context.Context, payload map[string]any) (*models.Empleado, error)

	// ToggleEstado performs the real upstream status change and returns
	// the upstream-confirmed record. There is no local-only override.
	ToggleEstado(ctx context.Context, id string, activo bool) (*models.Empleado, error)
}

// TasaService manages the interest rate catalog.
type TasaService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Tasa, error)
	Create(ctx context.Context, payload map[string]any) (*models.Tasa, error)
	Update(ctx context.Context, id string, payload map[string]any) (*models.Tasa, error)
	Delete(ctx context.Context, id string) error
	ToggleEstado(ctx context.Context, id string, activa bool) (*models.Tasa, error)
}

// ReporteService aggregates dashboard and regulatory reporting reads.
type ReporteService interface {
	Dashboard(ctx context.Context) (*models.DashboardResumen, error)

	// DashboardChart renders the collections-vs-disbursements chart as PNG.
	DashboardChart(ctx context.Context) ([]byte, error)

	EstadisticasAsesor(ctx context.Context, asesorID string) (*models.EstadisticasAsesor, error)
	Decisiones(ctx context.Context, desde, hasta string) ([]models.Decision, error)
	ReassignCartera(ctx context.Context, fromAsesorID, toAsesorID string) error
}
