package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapicredit/backoffice/internal/app"
	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/cotizador"
	"github.com/rapicredit/backoffice/internal/services/reporte"
	"github.com/rapicredit/backoffice/internal/storage/cache"
)

// mockClienteService implements interfaces.ClienteService for testing.
type mockClienteService struct {
	interfaces.ClienteService

	listFn func(ctx context.Context, opts interfaces.ListOptions) ([]models.Cliente, error)
}

func (m *mockClienteService) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Cliente, error) {
	return m.listFn(ctx, opts)
}

// mockSolicitudService implements interfaces.SolicitudService for testing.
type mockSolicitudService struct {
	interfaces.SolicitudService

	approveFn func(ctx context.Context, id, comentario string) (*models.Solicitud, error)
	listFn    func(ctx context.Context, opts interfaces.ListOptions) ([]models.Solicitud, error)
}

func (m *mockSolicitudService) Approve(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
	return m.approveFn(ctx, id, comentario)
}

func (m *mockSolicitudService) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Solicitud, error) {
	return m.listFn(ctx, opts)
}

// mockReportCore backs a real reporte.Service in handler tests.
type mockReportCore struct {
	interfaces.CoreClient
}

func (m *mockReportCore) GetDashboard(ctx context.Context) (*models.DashboardResumen, error) {
	return &models.DashboardResumen{CobradoHoy: 1200, DesembolsadoHoy: 5000, MoraTotal: 300}, nil
}

func newTestServer(t *testing.T, configure func(a *app.App)) *Server {
	t.Helper()

	logger := common.NewSilentLogger()
	a := &app.App{
		Config:         common.NewDefaultConfig(),
		Logger:         logger,
		Cache:          cache.NewMemory(),
		ReporteService: reporte.NewService(&mockReportCore{}, cache.NewMemory(), logger),
	}
	if configure != nil {
		configure(a)
	}
	return NewServer(a)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestClientesListPassesQueryParams(t *testing.T) {
	var seen interfaces.ListOptions
	srv := newTestServer(t, func(a *app.App) {
		a.ClienteService = &mockClienteService{
			listFn: func(ctx context.Context, opts interfaces.ListOptions) ([]models.Cliente, error) {
				seen = opts
				return []models.Cliente{{ID: "1", NombreCompleto: "María Pérez"}}, nil
			},
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes?q=maria&estado=ACTIVOS", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria", seen.Query)
	assert.Equal(t, models.FiltroActivos, seen.Estado)

	var out []models.Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "María Pérez", out[0].NombreCompleto)
}

func TestSolicitudesListEstadoParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.EstadoSolicitud
	}{
		{"todos sentinel leaves the list unfiltered", "estado=TODOS", ""},
		{"unknown value leaves the list unfiltered", "estado=pendientes", ""},
		{"workflow state narrows the list", "estado=EN_REVISION", models.SolicitudEnRevision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen interfaces.ListOptions
			srv := newTestServer(t, func(a *app.App) {
				a.SolicitudService = &mockSolicitudService{
					listFn: func(ctx context.Context, opts interfaces.ListOptions) ([]models.Solicitud, error) {
						seen = opts
						return []models.Solicitud{}, nil
					},
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/solicitudes?"+tt.query, nil)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, seen.EstadoSolicitud)
		})
	}
}

func TestSolicitudAprobarConflictWhenDecided(t *testing.T) {
	srv := newTestServer(t, func(a *app.App) {
		a.SolicitudService = &mockSolicitudService{
			approveFn: func(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
				return nil, &models.TerminalStateError{SolicitudID: id, Estado: models.SolicitudAprobada}
			},
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/api/solicitudes/s1/aprobar",
		strings.NewReader(`{"comentario":"otra vez"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "ya fue decidida")
}

func TestSolicitudAprobarSuccess(t *testing.T) {
	srv := newTestServer(t, func(a *app.App) {
		a.SolicitudService = &mockSolicitudService{
			approveFn: func(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
				return &models.Solicitud{ID: id, Estado: models.SolicitudAprobada}, nil
			},
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/api/solicitudes/s2/aprobar", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out models.Solicitud
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, models.SolicitudAprobada, out.Estado)
}

func TestCotizadorKnownExample(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cotizador",
		strings.NewReader(`{"monto":12000,"plazoMeses":12,"tasaAnual":24,"frecuencia":"MENSUAL"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out cotizador.Cotizacion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.InDelta(t, 1134.71, out.Cuota, 0.01)
	assert.Equal(t, 12, out.TotalPagos)
}

func TestCotizadorRejectsZeroMonto(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cotizador",
		strings.NewReader(`{"monto":0,"plazoMeses":12,"tasaAnual":24}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardChartReturnsPNG(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/chart", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Greater(t, rec.Body.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cotizador", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}

func TestCorrelationIDGenerated(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
