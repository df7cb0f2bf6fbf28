package financiamiento

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
)

type mockCore struct {
	interfaces.CoreClient

	prestamos   []models.Financiamiento
	lastPayload map[string]any
}

func (m *mockCore) ListFinanciamientos(ctx context.Context) ([]models.Financiamiento, error) {
	return m.prestamos, nil
}

func (m *mockCore) CreateFinanciamiento(ctx context.Context, payload map[string]any) (*models.Financiamiento, error) {
	m.lastPayload = payload
	return &models.Financiamiento{ID: "f9", CapitalInicial: payload["monto"].(float64)}, nil
}

func (m *mockCore) CreateAbono(ctx context.Context, payload map[string]any) (*models.Abono, error) {
	m.lastPayload = payload
	return &models.Abono{ID: "a1", FinanciamientoID: "f9", Monto: payload["monto"].(float64)}, nil
}

func newTestService(core *mockCore) *Service {
	return NewService(core, common.NewSilentLogger())
}

func TestListExcludesClosedLoansWithActiveFilter(t *testing.T) {
	core := &mockCore{prestamos: []models.Financiamiento{
		{ID: "1", NombreCliente: "Ana", Estado: "activo"},
		{ID: "2", NombreCliente: "Pedro", Estado: "saldado"},
		{ID: "3", NombreCliente: "María", Estado: ""},
	}}
	svc := newTestService(core)

	out, err := svc.List(context.Background(), interfaces.ListOptions{Estado: models.FiltroActivos})

	require.NoError(t, err)
	require.Len(t, out, 2, "legacy records without estado count as live")
	assert.Equal(t, "Ana", out[0].NombreCliente)
	assert.Equal(t, "María", out[1].NombreCliente)
}

func TestListRecientesNewestFirstWithLimit(t *testing.T) {
	core := &mockCore{prestamos: []models.Financiamiento{
		{ID: "old", FechaInicio: "2025-11-01"},
		{ID: "mid", FechaInicio: "2026-01-15T10:00:00"},
		{ID: "new", FechaInicio: "2026-03-20"},
	}}
	svc := newTestService(core)

	out, err := svc.ListRecientes(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
}

func TestCreateAttachesProjectedCuota(t *testing.T) {
	core := &mockCore{}
	svc := newTestService(core)

	_, err := svc.Create(context.Background(), map[string]any{
		"clienteId":  "c1",
		"monto":      float64(50000),
		"plazoMeses": float64(10),
		"tasaAnual":  float64(30),
		"frecuencia": "MENSUAL",
	})

	require.NoError(t, err)
	cuota, ok := core.lastPayload["cuota"].(float64)
	require.True(t, ok, "payload carries the projected installment")
	assert.InDelta(t, 5712.94, cuota, 0.01)
}

func TestCreateValidatesTerms(t *testing.T) {
	svc := newTestService(&mockCore{})

	cases := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{"monto cero", map[string]any{"clienteId": "c1", "monto": float64(0), "plazoMeses": float64(10)}, "monto"},
		{"plazo cero", map[string]any{"clienteId": "c1", "monto": float64(1000)}, "plazoMeses"},
		{"tasa negativa", map[string]any{"clienteId": "c1", "monto": float64(1000), "plazoMeses": float64(10), "tasaAnual": float64(-5)}, "tasaAnual"},
		{"sin cliente", map[string]any{"monto": float64(1000), "plazoMeses": float64(10)}, "clienteId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.payload)

			var invalid *models.ValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestRegistrarAbonoValidatesMonto(t *testing.T) {
	svc := newTestService(&mockCore{})

	_, err := svc.RegistrarAbono(context.Background(), map[string]any{
		"financiamientoId": "f9",
		"monto":            float64(-100),
	})

	var invalid *models.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "monto", invalid.Field)
}

func TestRegistrarAbonoPassesThrough(t *testing.T) {
	core := &mockCore{}
	svc := newTestService(core)

	abono, err := svc.RegistrarAbono(context.Background(), map[string]any{
		"financiamientoId": "f9",
		"monto":            float64(1500),
	})

	require.NoError(t, err)
	assert.Equal(t, 1500.0, abono.Monto)
}
