package models

// Cliente is the canonical client record.
type Cliente struct {
	ID             string   `json:"id"`
	Codigo         string   `json:"codigo"`
	NombreCompleto string   `json:"nombre_completo"`
	Cedula         string   `json:"cedula"`
	Email          string   `json:"email"`
	Direccion      string   `json:"direccion"`
	Telefonos      []string `json:"telefonos"`
	Referencias    []string `json:"referencias"`
	Fotos          []string `json:"fotos"`
	AsesorID       string   `json:"asesor_id"`
	Activo         bool     `json:"activo"`
	FechaRegistro  string   `json:"fecha_registro"`
}

// NormalizeCliente maps a client payload onto the canonical record.
//
// Field chains (first present key wins):
//
//	ID          _id | id | clienteId
//	Codigo      codigo | codigoCliente | codigo_cliente
//	Nombre      nombreCompleto | nombre_completo | fullName | nombres+apellidos | razonSocial
//	Cedula      cedula | dni | documento
//	Telefonos   telefonos | telefono | celular      (scalar wraps to one-element list)
//	Activo      actividad | activo                  (absent → true: a client with no
//	                                                 flag is assumed active, matching
//	                                                 historical backend behavior)
func NormalizeCliente(src map[string]any) Cliente {
	if src == nil {
		src = map[string]any{}
	}
	return Cliente{
		ID:             coerceID(src, "_id", "id", "clienteId"),
		Codigo:         coerceString(src, "", "codigo", "codigoCliente", "codigo_cliente"),
		NombreCompleto: coerceFullName(src, "Cliente"),
		Cedula:         coerceString(src, "", "cedula", "dni", "documento"),
		Email:          coerceString(src, "", "email", "correo"),
		Direccion:      coerceString(src, "", "direccion", "domicilio"),
		Telefonos:      coerceStringSlice(src, "telefonos", "telefono", "celular"),
		Referencias:    coerceStringSlice(src, "referencias", "referencia"),
		Fotos:          coerceStringSlice(src, "fotos", "foto", "fotoUrl"),
		AsesorID:       coerceID(src, "asesor", "asesorId", "asesor_id", "cobrador"),
		Activo:         coerceBool(src, true, "actividad", "activo"),
		FechaRegistro:  coerceString(src, "", "fechaRegistro", "fecha_registro", "createdAt", "created_at"),
	}
}

// NormalizeClientes maps a list payload, skipping non-object entries.
func NormalizeClientes(src []any) []Cliente {
	out := make([]Cliente, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeCliente(m))
		}
	}
	return out
}
