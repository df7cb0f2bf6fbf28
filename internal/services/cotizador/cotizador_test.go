package cotizador

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapicredit/backoffice/internal/models"
)

func TestCuota_ZeroInterest(t *testing.T) {
	// at zero interest the installment is a straight-line division
	cuota, ok := Cuota(12000, 12, 0, models.FrequencyMonthly)
	require.True(t, ok)
	assert.Equal(t, 1000.0, cuota)

	cuota, ok = Cuota(500, 5, 0, models.FrequencyMonthly)
	require.True(t, ok)
	assert.Equal(t, 100.0, cuota)
}

func TestCuota_KnownExample(t *testing.T) {
	// 12000 over 12 months at 24% annual, monthly:
	// periodic rate 0.02, 12 payments -> ~1134.72
	cuota, ok := Cuota(12000, 12, 24, models.FrequencyMonthly)
	require.True(t, ok)

	want := 12000 * 0.02 / (1 - math.Pow(1.02, -12))
	assert.InDelta(t, want, cuota, 0.01)
	assert.InDelta(t, 1134.72, cuota, 0.01)
}

func TestCuota_FrequencyScaling(t *testing.T) {
	// term stays in months; frequency multiplies the installment count
	// and divides the periodic rate
	mensual, ok := Cuota(10000, 10, 0, models.FrequencyMonthly)
	require.True(t, ok)
	assert.Equal(t, 1000.0, mensual)

	quincenal, ok := Cuota(10000, 10, 0, models.FrequencyBiweekly)
	require.True(t, ok)
	assert.Equal(t, 500.0, quincenal)

	semanal, ok := Cuota(10000, 10, 0, models.FrequencyWeekly)
	require.True(t, ok)
	assert.Equal(t, 250.0, semanal)

	diario, ok := Cuota(10000, 1, 0, models.FrequencyDaily)
	require.True(t, ok)
	assert.InDelta(t, 10000.0/30, diario, 1e-9)
}

func TestCuota_MissingInput(t *testing.T) {
	tests := []struct {
		name  string
		monto float64
		plazo int
		tasa  float64
	}{
		{"zero principal", 0, 12, 24},
		{"negative principal", -100, 12, 24},
		{"zero term", 12000, 0, 24},
		{"negative term", 12000, -1, 24},
		{"NaN principal", math.NaN(), 12, 24},
		{"NaN rate", 12000, 12, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cuota, ok := Cuota(tt.monto, tt.plazo, tt.tasa, models.FrequencyMonthly)
			assert.False(t, ok, "expected no result")
			assert.Zero(t, cuota)
		})
	}
}

func TestCuota_NeverNaNOrInf(t *testing.T) {
	// extreme but positive inputs still yield a finite installment or no result
	cuota, ok := Cuota(1e12, 600, 1000, models.FrequencyDaily)
	if ok {
		assert.False(t, math.IsNaN(cuota))
		assert.False(t, math.IsInf(cuota, 0))
	}
}

func TestCotizar_Totals(t *testing.T) {
	cot, ok := Cotizar(12000, 12, 24, models.FrequencyMonthly)
	require.True(t, ok)

	assert.Equal(t, 12, cot.TotalPagos)
	assert.InDelta(t, 1134.71, cot.Cuota, 0.01)
	assert.InDelta(t, cot.Cuota*12, cot.TotalAPagar, 0.05)
	assert.InDelta(t, cot.TotalAPagar-12000, cot.TotalIntereses, 0.05)
}

func TestCotizar_NoResult(t *testing.T) {
	cot, ok := Cotizar(0, 12, 24, models.FrequencyMonthly)
	assert.False(t, ok)
	assert.Nil(t, cot)
}
