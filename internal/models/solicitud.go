package models

// EstadoSolicitud is the lifecycle state of a credit request. Transitions
// are enforced and persisted upstream; this service only reads the state,
// blocks actions on terminal requests, and trusts the upstream response
// as the new source of truth.
type EstadoSolicitud string

const (
	SolicitudRegistrada EstadoSolicitud = "REGISTRADA"
	SolicitudEnRevision EstadoSolicitud = "EN_REVISION"
	SolicitudAprobada   EstadoSolicitud = "APROBADA"
	SolicitudRechazada  EstadoSolicitud = "RECHAZADA"
)

// IsTerminal reports whether no further approve/reject action applies.
func (e EstadoSolicitud) IsTerminal() bool {
	return e == SolicitudAprobada || e == SolicitudRechazada
}

// NormalizeEstadoSolicitud maps state spellings seen across backend
// generations ("en revision", "EN_REVISIÓN", "aprobada") onto the
// canonical enum. Unknown values default to REGISTRADA.
func NormalizeEstadoSolicitud(raw string) EstadoSolicitud {
	switch NormalizeToken(raw) {
	case "EN_REVISION", "REVISION":
		return SolicitudEnRevision
	case "APROBADA", "APROBADO":
		return SolicitudAprobada
	case "RECHAZADA", "RECHAZADO":
		return SolicitudRechazada
	default:
		return SolicitudRegistrada
	}
}

// EstadoSolicitudFilter maps an estado query-string value onto a
// workflow state for listing. TODOS, empty, and unknown values bypass
// the filter; NormalizeEstadoSolicitud is not usable here because its
// REGISTRADA default would silently narrow the list.
func EstadoSolicitudFilter(raw string) EstadoSolicitud {
	switch NormalizeToken(raw) {
	case "REGISTRADA", "REGISTRADO":
		return SolicitudRegistrada
	case "EN_REVISION", "REVISION":
		return SolicitudEnRevision
	case "APROBADA", "APROBADO":
		return SolicitudAprobada
	case "RECHAZADA", "RECHAZADO":
		return SolicitudRechazada
	default:
		return ""
	}
}

// Solicitud is the canonical credit request record.
type Solicitud struct {
	ID            string           `json:"id"`
	ClienteID     string           `json:"cliente_id"`
	NombreCliente string           `json:"nombre_cliente"`
	Monto         float64          `json:"monto"`
	PlazoMeses    int              `json:"plazo_meses"`
	TasaAnual     float64          `json:"tasa_anual"`
	Frecuencia    PaymentFrequency `json:"frecuencia"`
	Estado        EstadoSolicitud  `json:"estado"`
	Motivo        string           `json:"motivo"`
	AsesorID      string           `json:"asesor_id"`
	Comentarios   []string         `json:"comentarios"`
	FechaCreacion string           `json:"fecha_creacion"`
}

// NormalizeSolicitud maps a credit request payload onto the canonical record.
func NormalizeSolicitud(src map[string]any) Solicitud {
	if src == nil {
		src = map[string]any{}
	}
	return Solicitud{
		ID:            coerceID(src, "_id", "id", "solicitudId"),
		ClienteID:     coerceID(src, "cliente", "clienteId", "cliente_id"),
		NombreCliente: coerceString(src, "", "nombreCliente", "nombre_cliente", "clienteNombre"),
		Monto:         coerceNumber(src, 0, "monto", "montoSolicitado", "monto_solicitado"),
		PlazoMeses:    coerceInt(src, 0, "plazoMeses", "plazo_meses", "plazo"),
		TasaAnual:     coerceNumber(src, 0, "tasaAnual", "tasa_anual", "tasa", "tasaPropuesta"),
		Frecuencia:    NormalizeFrequency(coerceString(src, "", "frecuencia", "frecuenciaPago")),
		Estado:        NormalizeEstadoSolicitud(coerceString(src, "", "estado", "status")),
		Motivo:        coerceString(src, "", "motivo", "proposito", "destino"),
		AsesorID:      coerceID(src, "asesor", "asesorId", "asesor_id"),
		Comentarios:   coerceStringSlice(src, "comentarios", "comentario", "observaciones"),
		FechaCreacion: coerceString(src, "", "fechaCreacion", "fecha_creacion", "createdAt", "created_at"),
	}
}

// NormalizeSolicitudes maps a list payload, skipping non-object entries.
func NormalizeSolicitudes(src []any) []Solicitud {
	out := make([]Solicitud, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeSolicitud(m))
		}
	}
	return out
}
