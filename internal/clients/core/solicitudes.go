package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rapicredit/backoffice/internal/models"
)

// ListSolicitudes retrieves all credit requests
func (c *Client) ListSolicitudes(ctx context.Context) ([]models.Solicitud, error) {
	raw, err := c.getList(ctx, "/api/solicitudes")
	if err != nil {
		return nil, err
	}
	return models.NormalizeSolicitudes(raw), nil
}

// GetSolicitud retrieves a credit request by id
func (c *Client) GetSolicitud(ctx context.Context, id string) (*models.Solicitud, error) {
	raw, err := c.getObject(ctx, "/api/solicitudes/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	solicitud := models.NormalizeSolicitud(raw)
	return &solicitud, nil
}

// CreateSolicitud registers a new credit request
func (c *Client) CreateSolicitud(ctx context.Context, payload map[string]any) (*models.Solicitud, error) {
	raw, err := c.sendObject(ctx, http.MethodPost, "/api/solicitudes", payload)
	if err != nil {
		return nil, err
	}
	solicitud := models.NormalizeSolicitud(raw)
	return &solicitud, nil
}

// ApproveSolicitud sends the approve command. The state transition is
// enforced upstream; the returned record is the new source of truth.
func (c *Client) ApproveSolicitud(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
	return c.decideSolicitud(ctx, id, "aprobar", comentario)
}

// RejectSolicitud sends the reject command.
func (c *Client) RejectSolicitud(ctx context.Context, id, comentario string) (*models.Solicitud, error) {
	return c.decideSolicitud(ctx, id, "rechazar", comentario)
}

func (c *Client) decideSolicitud(ctx context.Context, id, accion, comentario string) (*models.Solicitud, error) {
	path := "/api/solicitudes/" + url.PathEscape(id) + "/" + accion
	body := map[string]any{}
	if comentario != "" {
		body["comentario"] = comentario
	}
	raw, err := c.sendObject(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	solicitud := models.NormalizeSolicitud(raw)
	return &solicitud, nil
}

// DeleteSolicitud removes a credit request
func (c *Client) DeleteSolicitud(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/solicitudes/"+url.PathEscape(id), nil, nil)
}
