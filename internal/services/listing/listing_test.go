package listing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapicredit/backoffice/internal/models"
)

type registro struct {
	Codigo string
	Nombre string
	Cedula string
	Fecha  string
	Activo bool
}

func campos(r registro) []string { return []string{r.Codigo, r.Nombre, r.Cedula} }
func activo(r registro) bool     { return r.Activo }
func nombre(r registro) string   { return r.Nombre }
func fecha(r registro) string    { return r.Fecha }

func TestFilter_SubstringCaseInsensitive(t *testing.T) {
	records := []registro{
		{Codigo: "CL-007", Nombre: "María López", Cedula: "001-1234567-8", Activo: true},
		{Codigo: "CL-008", Nombre: "Juan Pérez", Cedula: "001-7654321-9", Activo: true},
	}

	// name match, any case, accents folded
	got := Filter(records, "maria", models.FiltroTodos, campos, activo)
	require.Len(t, got, 1)
	assert.Equal(t, "CL-007", got[0].Codigo)

	got = Filter(records, "MARÍA", models.FiltroTodos, campos, activo)
	require.Len(t, got, 1)
	assert.Equal(t, "CL-007", got[0].Codigo)

	// code match, any case
	got = Filter(records, "cl-007", models.FiltroTodos, campos, activo)
	require.Len(t, got, 1)
	assert.Equal(t, "María López", got[0].Nombre)

	// cedula match
	got = Filter(records, "7654321", models.FiltroTodos, campos, activo)
	require.Len(t, got, 1)
	assert.Equal(t, "Juan Pérez", got[0].Nombre)

	// no match
	got = Filter(records, "xyz", models.FiltroTodos, campos, activo)
	assert.Empty(t, got)

	// empty query matches everything
	got = Filter(records, "", models.FiltroTodos, campos, activo)
	assert.Len(t, got, 2)
}

func TestFilter_StatusExactMatch(t *testing.T) {
	records := []registro{
		{Codigo: "A", Activo: true},
		{Codigo: "B", Activo: false},
		{Codigo: "C", Activo: true},
	}

	got := Filter(records, "", models.FiltroActivos, campos, activo)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Codigo)
	assert.Equal(t, "C", got[1].Codigo)

	got = Filter(records, "", models.FiltroInactivos, campos, activo)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Codigo)

	got = Filter(records, "", models.FiltroTodos, campos, activo)
	assert.Len(t, got, 3)
}

func TestFilter_CriteriaCombineWithAND(t *testing.T) {
	records := []registro{
		{Codigo: "A", Nombre: "Ana", Activo: true},
		{Codigo: "B", Nombre: "Ana", Activo: false},
	}

	got := Filter(records, "ana", models.FiltroActivos, campos, activo)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Codigo)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := []registro{
		{Codigo: "B", Activo: true},
		{Codigo: "A", Activo: false},
	}
	Filter(records, "", models.FiltroActivos, campos, activo)
	assert.Equal(t, "B", records[0].Codigo)
	assert.Equal(t, "A", records[1].Codigo)
}

func TestSortByName_SpanishCollation(t *testing.T) {
	records := []registro{
		{Nombre: "Óscar"},
		{Nombre: "Pedro"},
		{Nombre: "Ana"},
	}

	got := SortByName(records, nombre)
	require.Len(t, got, 3)
	// byte-value sort would push "Óscar" after "Pedro"; Spanish
	// collation keeps it between Ana and Pedro
	assert.Equal(t, "Ana", got[0].Nombre)
	assert.Equal(t, "Óscar", got[1].Nombre)
	assert.Equal(t, "Pedro", got[2].Nombre)
}

func TestSortByName_Stable(t *testing.T) {
	records := []registro{
		{Codigo: "primero", Nombre: "Ana"},
		{Codigo: "segundo", Nombre: "Ana"},
		{Codigo: "tercero", Nombre: "Ana"},
	}

	got := SortByName(records, nombre)
	require.Len(t, got, 3)
	assert.Equal(t, "primero", got[0].Codigo)
	assert.Equal(t, "segundo", got[1].Codigo)
	assert.Equal(t, "tercero", got[2].Codigo)
}

func TestSortByDateDesc(t *testing.T) {
	records := []registro{
		{Codigo: "viejo", Fecha: "2023-01-15"},
		{Codigo: "roto", Fecha: "no es fecha"},
		{Codigo: "nuevo", Fecha: "2025-06-30T10:00:00Z"},
		{Codigo: "medio", Fecha: "2024-11-02"},
	}

	got := SortByDateDesc(records, fecha)
	require.Len(t, got, 4)
	assert.Equal(t, "nuevo", got[0].Codigo)
	assert.Equal(t, "medio", got[1].Codigo)
	assert.Equal(t, "viejo", got[2].Codigo)
	// unparseable dates are treated as earliest
	assert.Equal(t, "roto", got[3].Codigo)
}

func TestParseDate(t *testing.T) {
	assert.False(t, ParseDate("2024-05-01").IsZero())
	assert.False(t, ParseDate("01/05/2024").IsZero())
	assert.False(t, ParseDate("2024-05-01T08:30:00Z").IsZero())
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("mañana").IsZero())
}

func TestGuard_StaleResultSuppressed(t *testing.T) {
	var g Guard
	var mu sync.Mutex
	displayed := ""

	// fetch for "a" starts first but resolves last
	tokenA := g.Begin()
	// fetch for "ab" starts second and resolves first
	tokenB := g.Begin()

	applied := g.Commit(tokenB, func() {
		mu.Lock()
		displayed = "resultado-ab"
		mu.Unlock()
	})
	assert.True(t, applied)

	// the slow "a" response arrives late and must be dropped
	applied = g.Commit(tokenA, func() {
		mu.Lock()
		displayed = "resultado-a"
		mu.Unlock()
	})
	assert.False(t, applied)

	assert.Equal(t, "resultado-ab", displayed)
}

func TestGuard_CurrentFetchCommits(t *testing.T) {
	var g Guard
	token := g.Begin()
	assert.True(t, g.Current(token))

	ran := false
	assert.True(t, g.Commit(token, func() { ran = true }))
	assert.True(t, ran)
}
