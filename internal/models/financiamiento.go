package models

// PaymentFrequency enumerates how often installments fall due.
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "MENSUAL"
	FrequencyBiweekly PaymentFrequency = "QUINCENAL"
	FrequencyWeekly   PaymentFrequency = "SEMANAL"
	FrequencyDaily    PaymentFrequency = "DIARIO"
)

// PaymentsPerMonth returns how many installments fall in one month for
// the frequency. DAILY uses 30 as an explicit approximation, not a
// calendar-accurate count.
func (f PaymentFrequency) PaymentsPerMonth() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyBiweekly:
		return 2
	case FrequencyWeekly:
		return 4
	case FrequencyDaily:
		return 30
	default:
		return 0
	}
}

// NormalizeFrequency maps the frequency spellings seen across backend
// generations onto the canonical enum. Unknown values default to monthly.
func NormalizeFrequency(raw string) PaymentFrequency {
	switch NormalizeToken(raw) {
	case "MENSUAL", "MONTHLY":
		return FrequencyMonthly
	case "QUINCENAL", "BIWEEKLY", "CATORCENAL":
		return FrequencyBiweekly
	case "SEMANAL", "WEEKLY":
		return FrequencyWeekly
	case "DIARIO", "DAILY", "DIARIA":
		return FrequencyDaily
	default:
		return FrequencyMonthly
	}
}

// Financiamiento is the canonical loan record.
type Financiamiento struct {
	ID               string           `json:"id"`
	Codigo           string           `json:"codigo"`
	ClienteID        string           `json:"cliente_id"`
	NombreCliente    string           `json:"nombre_cliente"`
	CapitalInicial   float64          `json:"capital_inicial"`
	CapitalDebe      float64          `json:"capital_debe"`
	InteresDebe      float64          `json:"interes_debe"`
	MoraDebe         float64          `json:"mora_debe"`
	TasaAnual        float64          `json:"tasa_anual"`
	PlazoMeses       int              `json:"plazo_meses"`
	Frecuencia       PaymentFrequency `json:"frecuencia"`
	Cuota            float64          `json:"cuota"`
	Estado           string           `json:"estado"`
	EnMora           bool             `json:"en_mora"`
	AsesorID         string           `json:"asesor_id"`
	FechaInicio      string           `json:"fecha_inicio"`
	FechaVencimiento string           `json:"fecha_vencimiento"`
}

// SaldoTotal returns the total outstanding balance (capital + interest + arrears).
func (f Financiamiento) SaldoTotal() float64 {
	return f.CapitalDebe + f.InteresDebe + f.MoraDebe
}

// NormalizeFinanciamiento maps a loan payload onto the canonical record.
// Balance fields carry both camelCase and snake_case histories
// (capitalDebe/capital_debe etc.); all amounts default to 0.
func NormalizeFinanciamiento(src map[string]any) Financiamiento {
	if src == nil {
		src = map[string]any{}
	}
	return Financiamiento{
		ID:               coerceID(src, "_id", "id", "financiamientoId"),
		Codigo:           coerceString(src, "", "codigo", "codigoFinanciamiento", "numeroPrestamo"),
		ClienteID:        coerceID(src, "cliente", "clienteId", "cliente_id"),
		NombreCliente:    coerceString(src, "", "nombreCliente", "nombre_cliente", "clienteNombre"),
		CapitalInicial:   coerceNumber(src, 0, "capitalInicial", "capital_inicial", "monto", "montoInicial"),
		CapitalDebe:      coerceNumber(src, 0, "capitalDebe", "capital_debe", "saldoCapital"),
		InteresDebe:      coerceNumber(src, 0, "interesDebe", "interes_debe", "saldoInteres"),
		MoraDebe:         coerceNumber(src, 0, "moraDebe", "mora_debe", "saldoMora"),
		TasaAnual:        coerceNumber(src, 0, "tasaAnual", "tasa_anual", "tasa", "tasaInteres"),
		PlazoMeses:       coerceInt(src, 0, "plazoMeses", "plazo_meses", "plazo"),
		Frecuencia:       NormalizeFrequency(coerceString(src, "", "frecuencia", "frecuenciaPago", "frecuencia_pago")),
		Cuota:            coerceNumber(src, 0, "cuota", "montoCuota", "monto_cuota"),
		Estado:           coerceString(src, "", "estado", "status"),
		EnMora:           coerceBool(src, false, "enMora", "en_mora", "mora"),
		AsesorID:         coerceID(src, "asesor", "asesorId", "asesor_id", "cobrador"),
		FechaInicio:      coerceString(src, "", "fechaInicio", "fecha_inicio", "fechaDesembolso"),
		FechaVencimiento: coerceString(src, "", "fechaVencimiento", "fecha_vencimiento", "fechaFin"),
	}
}

// NormalizeFinanciamientos maps a list payload, skipping non-object entries.
func NormalizeFinanciamientos(src []any) []Financiamiento {
	out := make([]Financiamiento, 0, len(src))
	for _, item := range src {
		if m, ok := item.(map[string]any); ok {
			out = append(out, NormalizeFinanciamiento(m))
		}
	}
	return out
}
