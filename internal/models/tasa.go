package models

// Tasa is the canonical interest rate record.
type Tasa struct {
	ID              string           `json:"id"`
	Nombre          string           `json:"nombre"`
	PorcentajeAnual float64          `json:"porcentaje_anual"`
	Frecuencia      PaymentFrequency `json:"frecuencia"`
	Activa          bool             `json:"activa"`
	FechaCreacion   string           `json:"fecha_creacion"`
}

// NormalizeTasa maps a rate payload onto the canonical record. Unlike
// clients and employees, a rate with no active flag is NOT assumed
// active: rates are offered to staff for selection and an unknown flag
// must not surface a possibly retired rate.
func NormalizeTasa(src map[string]any) Tasa {
	if src == nil {
		src = map[string]any{}
	}
	return Tasa{
		ID:              coerceID(src, "_id", "id", "tasaId"),
		Nombre:          coerceString(src, "", "nombre", "descripcion", "name"),
		PorcentajeAnual: coerceNumber(src, 0, "porcentajeAnual", "porcentaje_anual", "porcentaje", "tasa"),
		Frecuencia:      NormalizeFrequency(coerceString(src, "", "frecuencia", "frecuenciaPago")),
		Activa:          coerceBool(src, false, "actividad", "activa", "activo"),
		FechaCreacion:   coerceString(src, "", "fechaCreacion", "fecha_creacion", "createdAt"),
	}
}

// NormalizeTasas maps a list payload, skipping non-object entries.
func NormalizeTasas(src []any) []Tasa {
	out := make([]Tasa, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeTasa(m))
		}
	}
	return out
}
