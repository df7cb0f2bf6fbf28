package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rapicredit/backoffice/internal/models"
)

// ListEmpleados retrieves all employees, advisors and collectors included
func (c *Client) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	raw, err := c.getList(ctx, "/api/empleados")
	if err != nil {
		return nil, err
	}
	return models.NormalizeEmpleados(raw), nil
}

// GetEmpleado retrieves an employee by id
func (c *Client) GetEmpleado(ctx context.Context, id string) (*models.Empleado, error) {
	raw, err := c.getObject(ctx, "/api/empleados/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	empleado := models.NormalizeEmpleado(raw)
	return &empleado, nil
}

// CreateEmpleado registers a new employee
func (c *Client) CreateEmpleado(ctx context.Context, payload map[string]any) (*models.Empleado, error) {
	raw, err := c.sendObject(ctx, http.MethodPost, "/api/empleados", payload)
	if err != nil {
		return nil, err
	}
	empleado := models.NormalizeEmpleado(raw)
	return &empleado, nil
}

// ToggleEmpleado changes an employee's active status upstream and
// returns the confirmed record.
func (c *Client) ToggleEmpleado(ctx context.Context, id string, activo bool) (*models.Empleado, error) {
	path := "/api/empleados/" + url.PathEscape(id) + "/estado"
	raw, err := c.sendObject(ctx, http.MethodPatch, path, map[string]any{"activo": activo})
	if err != nil {
		return nil, err
	}
	empleado := models.NormalizeEmpleado(raw)
	return &empleado, nil
}
