package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rapicredit/backoffice/internal/models"
)

// ListFinanciamientos retrieves all loans
func (c *Client) ListFinanciamientos(ctx context.Context) ([]models.Financiamiento, error) {
	raw, err := c.getList(ctx, "/api/financiamientos")
	if err != nil {
		return nil, err
	}
	return models.NormalizeFinanciamientos(raw), nil
}

// GetFinanciamiento retrieves a loan by id
func (c *Client) GetFinanciamiento(ctx context.Context, id string) (*models.Financiamiento, error) {
	raw, err := c.getObject(ctx, "/api/financiamientos/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	loan := models.NormalizeFinanciamiento(raw)
	return &loan, nil
}

// CreateFinanciamiento disburses a new loan. The authoritative
// amortization schedule is computed and persisted upstream.
func (c *Client) CreateFinanciamiento(ctx context.Context, payload map[string]any) (*models.Financiamiento, error) {
	raw, err := c.sendObject(ctx, http.MethodPost, "/api/financiamientos", payload)
	if err != nil {
		return nil, err
	}
	loan := models.NormalizeFinanciamiento(raw)
	return &loan, nil
}

// CreateAbono applies a payment against a loan
func (c *Client) CreateAbono(ctx context.Context, payload map[string]any) (*models.Abono, error) {
	raw, err := c.sendObject(ctx, http.MethodPost, "/api/abonos", payload)
	if err != nil {
		return nil, err
	}
	abono := models.NormalizeAbono(raw)
	return &abono, nil
}
