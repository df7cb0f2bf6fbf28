package models

// DashboardResumen is the normalized dashboard summary shown on the
// back-office landing screen.
type DashboardResumen struct {
	ClientesActivos       int     `json:"clientes_activos"`
	FinanciamientosVivos  int     `json:"financiamientos_vivos"`
	SolicitudesPendientes int     `json:"solicitudes_pendientes"`
	CarteraTotal          float64 `json:"cartera_total"`
	MoraTotal             float64 `json:"mora_total"`
	CobradoHoy            float64 `json:"cobrado_hoy"`
	DesembolsadoHoy       float64 `json:"desembolsado_hoy"`
}

// NormalizeDashboardResumen maps the dashboard payload onto the summary record.
func NormalizeDashboardResumen(src map[string]any) DashboardResumen {
	if src == nil {
		src = map[string]any{}
	}
	return DashboardResumen{
		ClientesActivos:       coerceInt(src, 0, "clientesActivos", "clientes_activos", "totalClientes"),
		FinanciamientosVivos:  coerceInt(src, 0, "financiamientosVivos", "financiamientos_vivos", "prestamosActivos"),
		SolicitudesPendientes: coerceInt(src, 0, "solicitudesPendientes", "solicitudes_pendientes"),
		CarteraTotal:          coerceNumber(src, 0, "carteraTotal", "cartera_total", "cartera"),
		MoraTotal:             coerceNumber(src, 0, "moraTotal", "mora_total", "mora"),
		CobradoHoy:            coerceNumber(src, 0, "cobradoHoy", "cobrado_hoy", "cobrosHoy"),
		DesembolsadoHoy:       coerceNumber(src, 0, "desembolsadoHoy", "desembolsado_hoy", "desembolsosHoy"),
	}
}

// EstadisticasAsesor aggregates an advisor's portfolio performance.
type EstadisticasAsesor struct {
	AsesorID          string  `json:"asesor_id"`
	NombreAsesor      string  `json:"nombre_asesor"`
	ClientesActivos   int     `json:"clientes_activos"`
	CarteraAsignada   float64 `json:"cartera_asignada"`
	MontoEnMora       float64 `json:"monto_en_mora"`
	CobradoDelMes     float64 `json:"cobrado_del_mes"`
	ClientesEnMora    int     `json:"clientes_en_mora"`
	PorcentajeAlDia   float64 `json:"porcentaje_al_dia"`
}

// NormalizeEstadisticasAsesor maps a per-advisor statistics payload.
func NormalizeEstadisticasAsesor(src map[string]any) EstadisticasAsesor {
	if src == nil {
		src = map[string]any{}
	}
	return EstadisticasAsesor{
		AsesorID:        coerceID(src, "asesor", "asesorId", "asesor_id", "_id"),
		NombreAsesor:    coerceString(src, "", "nombreAsesor", "nombre_asesor", "nombre"),
		ClientesActivos: coerceInt(src, 0, "clientesActivos", "clientes_activos"),
		CarteraAsignada: coerceNumber(src, 0, "carteraAsignada", "cartera_asignada", "cartera"),
		MontoEnMora:     coerceNumber(src, 0, "montoEnMora", "monto_en_mora", "moraTotal"),
		CobradoDelMes:   coerceNumber(src, 0, "cobradoDelMes", "cobrado_del_mes", "cobradoMes"),
		ClientesEnMora:  coerceInt(src, 0, "clientesEnMora", "clientes_en_mora"),
		PorcentajeAlDia: coerceNumber(src, 0, "porcentajeAlDia", "porcentaje_al_dia"),
	}
}

// Decision is one entry of the decision-trail report: who approved or
// rejected which solicitud, and when.
type Decision struct {
	SolicitudID   string `json:"solicitud_id"`
	NombreCliente string `json:"nombre_cliente"`
	Accion        string `json:"accion"`
	EmpleadoID    string `json:"empleado_id"`
	Comentario    string `json:"comentario"`
	Fecha         string `json:"fecha"`
}

// NormalizeDecision maps a decision-trail entry payload.
func NormalizeDecision(src map[string]any) Decision {
	if src == nil {
		src = map[string]any{}
	}
	return Decision{
		SolicitudID:   coerceID(src, "solicitud", "solicitudId", "solicitud_id"),
		NombreCliente: coerceString(src, "", "nombreCliente", "nombre_cliente", "cliente"),
		Accion:        coerceString(src, "", "accion", "action", "decision"),
		EmpleadoID:    coerceID(src, "empleado", "empleadoId", "empleado_id", "usuario"),
		Comentario:    coerceString(src, "", "comentario", "observacion", "nota"),
		Fecha:         coerceString(src, "", "fecha", "fechaDecision", "fecha_decision", "createdAt"),
	}
}

// NormalizeDecisiones maps a list payload, skipping non-object entries.
func NormalizeDecisiones(src []any) []Decision {
	out := make([]Decision, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeDecision(m))
		}
	}
	return out
}
