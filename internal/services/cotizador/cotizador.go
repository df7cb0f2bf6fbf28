// Package cotizador computes installment previews for loan creation
// screens. The authoritative amortization schedule is computed and
// persisted upstream; this estimator only gives staff a live preview as
// they type, so it never errors: incomplete input yields no result.
package cotizador

import (
	"math"

	"github.com/rapicredit/backoffice/internal/models"
)

// Cotizacion is the full preview for a requested loan.
type Cotizacion struct {
	Cuota          float64 `json:"cuota"`
	TotalPagos     int     `json:"total_pagos"`
	TotalAPagar    float64 `json:"total_a_pagar"`
	TotalIntereses float64 `json:"total_intereses"`
}

// Cuota computes the fixed periodic installment for a loan of principal
// monto over plazoMeses months at tasaAnual percent annual interest,
// paid at the given frequency. The term is always expressed in months
// regardless of frequency and multiplied by payments-per-month to get
// the installment count; this mirrors how rates are quoted to clients
// and is intentional, not a defect.
//
// Returns (0, false) when principal or term is missing, non-positive,
// or not a finite number: not enough information yet, not an error.
func Cuota(monto float64, plazoMeses int, tasaAnual float64, frecuencia models.PaymentFrequency) (float64, bool) {
	if monto <= 0 || plazoMeses <= 0 || math.IsNaN(monto) || math.IsNaN(tasaAnual) {
		return 0, false
	}

	totalPagos := plazoMeses * frecuencia.PaymentsPerMonth()
	if totalPagos <= 0 {
		return 0, false
	}

	tasaPeriodica := tasaAnual / 100 / 12 / float64(frecuencia.PaymentsPerMonth())
	if tasaPeriodica <= 0 {
		// interest-free straight-line division
		return monto / float64(totalPagos), true
	}

	// standard amortizing-loan annuity formula
	cuota := monto * tasaPeriodica / (1 - math.Pow(1+tasaPeriodica, -float64(totalPagos)))
	if math.IsNaN(cuota) || math.IsInf(cuota, 0) {
		return 0, false
	}
	return cuota, true
}

// Cotizar computes the full preview: installment, installment count, and
// totals. Amounts are rounded to 2 decimals at this response edge only;
// Cuota itself stays unrounded for display-layer currency formatting.
func Cotizar(monto float64, plazoMeses int, tasaAnual float64, frecuencia models.PaymentFrequency) (*Cotizacion, bool) {
	cuota, ok := Cuota(monto, plazoMeses, tasaAnual, frecuencia)
	if !ok {
		return nil, false
	}

	totalPagos := plazoMeses * frecuencia.PaymentsPerMonth()
	total := cuota * float64(totalPagos)

	return &Cotizacion{
		Cuota:          round2(cuota),
		TotalPagos:     totalPagos,
		TotalAPagar:    round2(total),
		TotalIntereses: round2(total - monto),
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
