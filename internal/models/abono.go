package models

// Payment application types: an abono is applied against capital,
// accrued interest, or arrears.
const (
	AbonoCapital = "capital"
	AbonoInteres = "interes"
	AbonoMora    = "mora"
)

// Abono is the canonical payment record.
type Abono struct {
	ID               string  `json:"id"`
	FinanciamientoID string  `json:"financiamiento_id"`
	ClienteID        string  `json:"cliente_id"`
	Monto            float64 `json:"monto"`
	Tipo             string  `json:"tipo"`
	CobradorID       string  `json:"cobrador_id"`
	Fecha            string  `json:"fecha"`
}

// NormalizeAbono maps a payment payload onto the canonical record.
func NormalizeAbono(src map[string]any) Abono {
	if src == nil {
		src = map[string]any{}
	}
	tipo := NormalizeToken(coerceString(src, "", "tipo", "tipoAbono", "tipo_abono"))
	switch tipo {
	case "INTERES":
		tipo = AbonoInteres
	case "MORA":
		tipo = AbonoMora
	default:
		tipo = AbonoCapital
	}
	return Abono{
		ID:               coerceID(src, "_id", "id", "abonoId"),
		FinanciamientoID: coerceID(src, "financiamiento", "financiamientoId", "financiamiento_id", "prestamo"),
		ClienteID:        coerceID(src, "cliente", "clienteId", "cliente_id"),
		Monto:            coerceNumber(src, 0, "monto", "montoAbono", "monto_abono", "cantidad"),
		Tipo:             tipo,
		CobradorID:       coerceID(src, "cobrador", "cobradorId", "cobrador_id", "empleado"),
		Fecha:            coerceString(src, "", "fecha", "fechaAbono", "fecha_abono", "createdAt"),
	}
}

// NormalizeAbonos maps a list payload, skipping non-object entries.
func NormalizeAbonos(src []any) []Abono {
	out := make([]Abono, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeAbono(m))
		}
	}
	return out
}
