package models

// Employee role constants. Asesores and cobradores both carry a cartera;
// the distinction matters only for reporting.
const (
	RolAsesor   = "asesor"
	RolCobrador = "cobrador"
	RolGerente  = "gerente"
)

// Empleado is the canonical employee record, covering advisors and
// collectors as well as administrative staff.
type Empleado struct {
	ID             string   `json:"id"`
	Codigo         string   `json:"codigo"`
	NombreCompleto string   `json:"nombre_completo"`
	Cedula         string   `json:"cedula"`
	Email          string   `json:"email"`
	Rol            string   `json:"rol"`
	Telefonos      []string `json:"telefonos"`
	Activo         bool     `json:"activo"`
	ClientesACargo int      `json:"clientes_a_cargo"`
	FechaIngreso   string   `json:"fecha_ingreso"`
}

// NormalizeEmpleado maps an employee payload onto the canonical record.
// Like clients, an employee with no active flag is assumed active
// (actividad takes precedence over activo when both are present).
func NormalizeEmpleado(src map[string]any) Empleado {
	if src == nil {
		src = map[string]any{}
	}
	rol := normalizeRol(coerceString(src, "", "rol", "role", "cargo", "tipo"))
	return Empleado{
		ID:             coerceID(src, "_id", "id", "empleadoId"),
		Codigo:         coerceString(src, "", "codigo", "codigoEmpleado", "codigo_empleado"),
		NombreCompleto: coerceFullName(src, "Empleado"),
		Cedula:         coerceString(src, "", "cedula", "dni", "documento"),
		Email:          coerceString(src, "", "email", "correo"),
		Rol:            rol,
		Telefonos:      coerceStringSlice(src, "telefonos", "telefono", "celular"),
		Activo:         coerceBool(src, true, "actividad", "activo"),
		ClientesACargo: coerceInt(src, 0, "clientesACargo", "clientes_a_cargo", "totalClientes"),
		FechaIngreso:   coerceString(src, "", "fechaIngreso", "fecha_ingreso", "createdAt"),
	}
}

func normalizeRol(raw string) string {
	switch NormalizeToken(raw) {
	case "ASESOR", "ADVISOR":
		return RolAsesor
	case "COBRADOR", "COLLECTOR":
		return RolCobrador
	case "GERENTE", "ADMIN", "MANAGER":
		return RolGerente
	default:
		return RolAsesor
	}
}

// NormalizeEmpleados maps a list payload, skipping non-object entries.
func NormalizeEmpleados(src []any) []Empleado {
	out := make([]Empleado, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeEmpleado(m))
		}
	}
	return out
}
