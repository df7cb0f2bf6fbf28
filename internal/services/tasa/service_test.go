package tasa

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/storage/cache"
)

type mockCore struct {
	interfaces.CoreClient

	tasas     []models.Tasa
	listCalls int
}

func (m *mockCore) ListTasas(ctx context.Context) ([]models.Tasa, error) {
	m.listCalls++
	return m.tasas, nil
}

func (m *mockCore) CreateTasa(ctx context.Context, payload map[string]any) (*models.Tasa, error) {
	return &models.Tasa{ID: "t9", PorcentajeAnual: payload["porcentajeAnual"].(float64)}, nil
}

func (m *mockCore) ToggleTasa(ctx context.Context, id string, activa bool) (*models.Tasa, error) {
	return &models.Tasa{ID: id, Activa: activa}, nil
}

func catalogo() []models.Tasa {
	return []models.Tasa{
		{ID: "1", Nombre: "Preferencial", PorcentajeAnual: 24, Activa: true},
		{ID: "2", Nombre: "Estándar", PorcentajeAnual: 36, Activa: true},
		{ID: "3", Nombre: "Histórica 2020", PorcentajeAnual: 48, Activa: false},
	}
}

func newTestService(core *mockCore) *Service {
	return NewService(core, cache.NewMemory(), 0, common.NewSilentLogger())
}

// recordingCache captures the TTL each Set was called with.
type recordingCache struct {
	interfaces.Cache

	lastTTL time.Duration
}

func (c *recordingCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.lastTTL = ttl
	c.Cache.Set(ctx, key, value, ttl)
}

func TestCatalogUsesConfiguredTTL(t *testing.T) {
	core := &mockCore{tasas: catalogo()}
	rec := &recordingCache{Cache: cache.NewMemory()}
	svc := NewService(core, rec, 90*time.Second, common.NewSilentLogger())

	_, err := svc.List(context.Background(), interfaces.ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, rec.lastTTL)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	rec := &recordingCache{Cache: cache.NewMemory()}
	svc := NewService(&mockCore{tasas: catalogo()}, rec, 0, common.NewSilentLogger())

	_, err := svc.List(context.Background(), interfaces.ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, defaultTTL, rec.lastTTL)
}

func TestListServesSecondReadFromCache(t *testing.T) {
	core := &mockCore{tasas: catalogo()}
	svc := newTestService(core)
	ctx := context.Background()

	first, err := svc.List(ctx, interfaces.ListOptions{})
	require.NoError(t, err)

	second, err := svc.List(ctx, interfaces.ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, core.listCalls, "second read comes from cache")
}

func TestListFiltersActiveAndSortsByName(t *testing.T) {
	svc := newTestService(&mockCore{tasas: catalogo()})

	out, err := svc.List(context.Background(), interfaces.ListOptions{Estado: models.FiltroActivos})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Estándar", out[0].Nombre)
	assert.Equal(t, "Preferencial", out[1].Nombre)
}

func TestCreateInvalidatesCatalog(t *testing.T) {
	core := &mockCore{tasas: catalogo()}
	svc := newTestService(core)
	ctx := context.Background()

	_, err := svc.List(ctx, interfaces.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, core.listCalls)

	_, err = svc.Create(ctx, map[string]any{"nombre": "Promocional", "porcentajeAnual": float64(20)})
	require.NoError(t, err)

	_, err = svc.List(ctx, interfaces.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, core.listCalls, "mutation forces a refetch")
}

func TestToggleEstadoInvalidatesCatalog(t *testing.T) {
	core := &mockCore{tasas: catalogo()}
	svc := newTestService(core)
	ctx := context.Background()

	_, err := svc.List(ctx, interfaces.ListOptions{})
	require.NoError(t, err)

	_, err = svc.ToggleEstado(ctx, "3", true)
	require.NoError(t, err)

	_, err = svc.List(ctx, interfaces.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, core.listCalls)
}

func TestCreateValidatesPorcentaje(t *testing.T) {
	svc := newTestService(&mockCore{})

	_, err := svc.Create(context.Background(), map[string]any{"nombre": "Gratis", "porcentajeAnual": float64(0)})

	var invalid *models.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "porcentajeAnual", invalid.Field)
}
