// Package interfaces defines service contracts for the RapiCredit back-office
package interfaces

import (
	"context"
	"io"

	"github.com/rapicredit/backoffice/internal/models"
)

// TokenSource yields the bearer token for the current session, or empty
// string when no session exists. Token absence never blocks a call; the
// upstream core API is the authority on rejecting unauthenticated requests.
type TokenSource interface {
	Token(ctx context.Context) string
}

// CoreClient is the gateway to the upstream core lending API. Every
// method issues one HTTP request; non-2xx responses surface as
// *core.APIError with a human-readable message.
type CoreClient interface {
	// Clients
	ListClientes(ctx context.Context) ([]models.Cliente, error)
	GetCliente(ctx context.Context, id string) (*models.Cliente, error)
	CreateCliente(ctx context.Context, payload map[string]any) (*models.Cliente, error)
	UploadClienteFoto(ctx context.Context, clienteID, filename string, file io.Reader) (string, error)

	// Loans
	ListFinanciamientos(ctx context.Context) ([]models.Financiamiento, error)
	GetFinanciamiento(ctx context.Context, id string) (*models.Financiamiento, error)
	CreateFinanciamiento(ctx context.Context, payload map[string]any) (*models.Financiamiento, error)

	// Credit requests
	ListSolicitudes(ctx context.Context) ([]models.Solicitud, error)
	GetSolicitud(ctx context.Context, id string) (*models.Solicitud, error)
	CreateSolicitud(ctx context.Context, payload map[string]any) (*models.Solicitud, error)
	ApproveSolicitud(ctx context.Context, id, comentario string) (*models.Solicitud, error)
	RejectSolicitud(ctx context.Context, id, comentario string) (*models.Solicitud, error)
	DeleteSolicitud(ctx context.Context, id string) error

	// Payments
	CreateAbono(ctx context.Context, payload map[string]any) (*models.Abono, error)

	// Employees (advisors and collectors included)
	ListEmpleados(ctx context.Context) ([]models.Empleado, error)
	GetEmpleado(ctx context.Context, id string) (*models.Empleado, error)
	CreateEmpleado(ctx context.Context, payload map[string]any) (*models.Empleado, error)
	ToggleEmpleado(ctx context.Context, id string, activo bool) (*models.Empleado, error)

	// Interest rates
	ListTasas(ctx context.Context) ([]models.Tasa, error)
	CreateTasa(ctx context.Context, payload map[string]any) (*models.Tasa, error)
	UpdateTasa(ctx context.Context, id string, payload map[string]any) (*models.Tasa, error)
	DeleteTasa(ctx context.Context, id string) error
	ToggleTasa(ctx context.Context, id string, activa bool) (*models.Tasa, error)

	// Reports
	GetDashboard(ctx context.Context) (*models.DashboardResumen, error)
	GetEstadisticasAsesor(ctx context.Context, asesorID string) (*models.EstadisticasAsesor, error)
	ListDecisiones(ctx context.Context, desde, hasta string) ([]models.Decision, error)

	// Portfolio reassignment
	ReassignCartera(ctx context.Context, fromAsesorID, toAsesorID string) error
}

// IdentityClient authenticates staff against the external identity provider.
type IdentityClient interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (*models.Sesion, error)

	// SignOut drops the cached session locally. No remote call is made.
	SignOut()
}
