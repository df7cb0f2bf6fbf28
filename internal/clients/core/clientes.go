package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rapicredit/backoffice/internal/models"
)

// ListClientes retrieves all clients
func (c *Client) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	raw, err := c.getList(ctx, "/api/clientes")
	if err != nil {
		return nil, err
	}
	return models.NormalizeClientes(raw), nil
}

// GetCliente retrieves a client by id
func (c *Client) GetCliente(ctx context.Context, id string) (*models.Cliente, error) {
	raw, err := c.getObject(ctx, "/api/clientes/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	cliente := models.NormalizeCliente(raw)
	return &cliente, nil
}

// CreateCliente registers a new client. The payload passes through
// as-entered; the upstream API owns validation of business fields.
func (c *Client) CreateCliente(ctx context.Context, payload map[string]any) (*models.Cliente, error) {
	raw, err := c.sendObject(ctx, http.MethodPost, "/api/clientes", payload)
	if err != nil {
		return nil, err
	}
	cliente := models.NormalizeCliente(raw)
	return &cliente, nil
}

// UploadClienteFoto uploads a client photo as multipart form data and
// returns the stored photo URL.
func (c *Client) UploadClienteFoto(ctx context.Context, clienteID, filename string, file io.Reader) (string, error) {
	path := fmt.Sprintf("/api/clientes/%s/fotos", url.PathEscape(clienteID))
	raw, err := c.uploadMultipart(ctx, path, "foto", filename, file)
	if err != nil {
		return "", err
	}
	cliente := models.NormalizeCliente(raw)
	if len(cliente.Fotos) > 0 {
		return cliente.Fotos[len(cliente.Fotos)-1], nil
	}
	return "", nil
}
