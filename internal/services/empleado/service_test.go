package empleado

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

	empleados   []models.Empleado
	toggleCalls int
}

func (m *mockCore) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	return m.empleados, nil
}

func (m *mockCore) ToggleEmpleado(ctx context.Context, id string, activo bool) (*models.Empleado, error) {
	m.toggleCalls++
	return &models.Empleado{ID: id, Activo: activo}, nil
}

func roster() []models.Empleado {
	return []models.Empleado{
		{ID: "1", NombreCompleto: "Ana Torres", Rol: models.RolAsesor, Activo: true},
		{ID: "2", NombreCompleto: "Pedro Gómez", Rol: models.RolCobrador, Activo: true},
		{ID: "3", NombreCompleto: "Beatriz Ortega", Rol: models.RolGerente, Activo: true},
		{ID: "4", NombreCompleto: "Óscar Díaz", Rol: models.RolAsesor, Activo: false},
	}
}

func TestListReturnsWholeRoster(t *testing.T) {
	svc := NewService(&mockCore{empleados: roster()}, common.NewSilentLogger())

	out, err := svc.List(context.Background(), interfaces.ListOptions{})

	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestListAsesoresKeepsFieldRolesOnly(t *testing.T) {
	svc := NewService(&mockCore{empleados: roster()}, common.NewSilentLogger())

	out, err := svc.ListAsesores(context.Background(), interfaces.ListOptions{})

	require.NoError(t, err)
	require.Len(t, out, 3, "gerente is not a field role")
	for _, e := range out {
		assert.NotEqual(t, models.RolGerente, e.Rol)
	}
}

func TestListAsesoresCombinesWithStatusFilter(t *testing.T) {
	svc := NewService(&mockCore{empleados: roster()}, common.NewSilentLogger())

	out, err := svc.ListAsesores(context.Background(), interfaces.ListOptions{Estado: models.FiltroActivos})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ana Torres", out[0].NombreCompleto)
	assert.Equal(t, "Pedro Gómez", out[1].NombreCompleto)
}

func TestToggleEstadoReturnsUpstreamRecord(t *testing.T) {
	core := &mockCore{}
	svc := NewService(core, common.NewSilentLogger())

	actualizado, err := svc.ToggleEstado(context.Background(), "4", true)

	require.NoError(t, err)
	assert.True(t, actualizado.Activo)
	assert.Equal(t, 1, core.toggleCalls)
}

func TestToggleEstadoRequiresID(t *testing.T) {
	core := &mockCore{}
	svc := NewService(core, common.NewSilentLogger())

	_, err := svc.ToggleEstado(context.Background(), "", true)

	var invalid *models.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, core.toggleCalls)
}
