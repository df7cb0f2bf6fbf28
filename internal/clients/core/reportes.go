package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rapicredit/backoffice/internal/models"
)

// GetDashboard retrieves the dashboard summary
func (c *Client) GetDashboard(ctx context.Context) (*models.DashboardResumen, error) {
	raw, err := c.getObject(ctx, "/api/dashboard")
	if err != nil {
		return nil, err
	}
	resumen := models.NormalizeDashboardResumen(raw)
	return &resumen, nil
}

// GetEstadisticasAsesor retrieves per-advisor portfolio statistics
func (c *Client) GetEstadisticasAsesor(ctx context.Context, asesorID string) (*models.EstadisticasAsesor, error) {
	raw, err := c.getObject(ctx, "/api/asesores/"+url.PathEscape(asesorID)+"/estadisticas")
	if err != nil {
		return nil, err
	}
	stats := models.NormalizeEstadisticasAsesor(raw)
	return &stats, nil
}

// ListDecisiones retrieves the decision-trail report for a date range.
// Empty bounds are omitted and the upstream default range applies.
func (c *Client) ListDecisiones(ctx context.Context, desde, hasta string) ([]models.Decision, error) {
	query := url.Values{}
	if desde != "" {
		query.Set("desde", desde)
	}
	if hasta != "" {
		query.Set("hasta", hasta)
	}
	path := "/api/reportes/decisiones"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	raw, err := c.getList(ctx, path)
	if err != nil {
		return nil, err
	}
	return models.NormalizeDecisiones(raw), nil
}

// ReassignCartera moves every client in one advisor's portfolio to another
func (c *Client) ReassignCartera(ctx context.Context, fromAsesorID, toAsesorID string) error {
	body := map[string]any{
		"desdeAsesor": fromAsesorID,
		"haciaAsesor": toAsesorID,
	}
	return c.do(ctx, http.MethodPost, "/api/cartera/reasignar", body, nil)
}
