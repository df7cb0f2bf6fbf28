package reporte

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rapicredit/backoffice/internal/models"
)

// RenderDashboardChart renders today's money movement as a PNG bar
// chart: collections in green, disbursements in blue, outstanding
// arrears in red. Returns raw PNG bytes.
func RenderDashboardChart(resumen *models.DashboardResumen) ([]byte, error) {
	if resumen == nil {
		return nil, fmt.Errorf("no dashboard data to render")
	}

	barStyle := func(hex string) chart.Style {
		return chart.Style{
			FillColor:   drawing.ColorFromHex(hex),
			StrokeColor: drawing.ColorFromHex(hex),
			StrokeWidth: 0,
		}
	}

	graph := chart.BarChart{
		Title:    "Movimiento del día",
		Width:    700,
		Height:   400,
		BarWidth: 90,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: []chart.Value{
			{Label: "Cobrado hoy", Value: resumen.CobradoHoy, Style: barStyle("16a34a")},      // green-600
			{Label: "Desembolsado hoy", Value: resumen.DesembolsadoHoy, Style: barStyle("2563eb")}, // blue-600
			{Label: "Mora total", Value: resumen.MoraTotal, Style: barStyle("dc2626")},        // red-600
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
