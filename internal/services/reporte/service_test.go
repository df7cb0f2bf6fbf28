package reporte

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/storage/cache"
)

type mockCore struct {
	interfaces.CoreClient

	resumen        models.DashboardResumen
	dashboardCalls int
	decisiones     []models.Decision
	reassignCalls  int
}

func (m *mockCore) GetDashboard(ctx context.Context) (*models.DashboardResumen, error) {
	m.dashboardCalls++
	resumen := m.resumen
	return &resumen, nil
}

func (m *mockCore) ListDecisiones(ctx context.Context, desde, hasta string) ([]models.Decision, error) {
	return m.decisiones, nil
}

func (m *mockCore) ReassignCartera(ctx context.Context, fromAsesorID, toAsesorID string) error {
	m.reassignCalls++
	return nil
}

func newTestService(core *mockCore) *Service {
	return NewService(core, cache.NewMemory(), common.NewSilentLogger())
}

func TestDashboardServedFromCache(t *testing.T) {
	core := &mockCore{resumen: models.DashboardResumen{ClientesActivos: 42, CobradoHoy: 1500}}
	svc := newTestService(core)
	ctx := context.Background()

	first, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, first.ClientesActivos)

	_, err = svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, core.dashboardCalls)
}

func TestInvalidateDashboardForcesRefetch(t *testing.T) {
	core := &mockCore{resumen: models.DashboardResumen{SolicitudesPendientes: 3}}
	svc := newTestService(core)
	ctx := context.Background()

	_, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	core.resumen.SolicitudesPendientes = 2
	svc.InvalidateDashboard(ctx)

	segundo, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, segundo.SolicitudesPendientes)
	assert.Equal(t, 2, core.dashboardCalls)
}

func TestDecisionesSortedNewestFirst(t *testing.T) {
	core := &mockCore{decisiones: []models.Decision{
		{SolicitudID: "a", Fecha: "2026-02-01"},
		{SolicitudID: "b", Fecha: "2026-02-15"},
		{SolicitudID: "c", Fecha: "2026-02-08"},
	}}
	svc := newTestService(core)

	out, err := svc.Decisiones(context.Background(), "", "")

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0].SolicitudID)
	assert.Equal(t, "c", out[1].SolicitudID)
	assert.Equal(t, "a", out[2].SolicitudID)
}

func TestReassignCarteraRejectsSameAdvisor(t *testing.T) {
	core := &mockCore{}
	svc := newTestService(core)

	err := svc.ReassignCartera(context.Background(), "a1", "a1")

	var invalid *models.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, core.reassignCalls)
}

func TestReassignCarteraCallsUpstream(t *testing.T) {
	core := &mockCore{}
	svc := newTestService(core)

	require.NoError(t, svc.ReassignCartera(context.Background(), "a1", "a2"))
	assert.Equal(t, 1, core.reassignCalls)
}

func TestRenderDashboardChartProducesPNG(t *testing.T) {
	png, err := RenderDashboardChart(&models.DashboardResumen{
		CobradoHoy:      12500,
		DesembolsadoHoy: 30000,
		MoraTotal:       8400,
	})

	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderDashboardChartNilResumen(t *testing.T) {
	_, err := RenderDashboardChart(nil)
	assert.Error(t, err)
}
