package models

// StatusFilter narrows a listing by active flag. FiltroTodos is the
// ALL-sentinel that bypasses the status filter entirely.
type StatusFilter string

const (
	FiltroTodos     StatusFilter = "TODOS"
	FiltroActivos   StatusFilter = "ACTIVOS"
	FiltroInactivos StatusFilter = "INACTIVOS"
)

// NormalizeStatusFilter maps a query-string value onto the filter enum.
// Empty and unknown values bypass the filter.
func NormalizeStatusFilter(raw string) StatusFilter {
	switch NormalizeToken(raw) {
	case "ACTIVOS", "ACTIVO", "ACTIVA", "ACTIVAS":
		return FiltroActivos
	case "INACTIVOS", "INACTIVO", "INACTIVA", "INACTIVAS":
		return FiltroInactivos
	default:
		return FiltroTodos
	}
}

// Matches reports whether a record with the given active flag passes the filter.
func (f StatusFilter) Matches(active bool) bool {
	switch f {
	case FiltroActivos:
		return active
	case FiltroInactivos:
		return !active
	default:
		return true
	}
}
