package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rapicredit/backoffice/internal/models"
)

// ListTasas retrieves the interest rate catalog
func (c *Client) ListTasas(ctx context.Context) ([]models.Tasa, error) {
	raw, err := c.getList(ctx, "/api/tasas")
	if err != nil {
		return nil, err
	}
	return models.NormalizeTasas(raw), nil
}

// CreateTasa adds a rate to the catalog
func (c *Client) CreateTasa(ctx context.Context, payload map[string]any) (*models.Tasa, error) {
	raw, err := c.sendObject(ctx, http.MethodPost, "/api/tasas", payload)
	if err != nil {
		return nil, err
	}
	tasa := models.NormalizeTasa(raw)
	return &tasa, nil
}

// UpdateTasa updates an existing rate
func (c *Client) UpdateTasa(ctx context.Context, id string, payload map[string]any) (*models.Tasa, error) {
	raw, err := c.sendObject(ctx, http.MethodPut, "/api/tasas/"+url.PathEscape(id), payload)
	if err != nil {
		return nil, err
	}
	tasa := models.NormalizeTasa(raw)
	return &tasa, nil
}

// DeleteTasa removes a rate from the catalog
func (c *Client) DeleteTasa(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasas/"+url.PathEscape(id), nil, nil)
}

// ToggleTasa changes a rate's active status upstream
func (c *Client) ToggleTasa(ctx context.Context, id string, activa bool) (*models.Tasa, error) {
	path := "/api/tasas/" + url.PathEscape(id) + "/estado"
	raw, err := c.sendObject(ctx, http.MethodPatch, path, map[string]any{"activa": activa})
	if err != nil {
		return nil, err
	}
	tasa := models.NormalizeTasa(raw)
	return &tasa, nil
}
