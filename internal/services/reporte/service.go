// Package reporte provides dashboard and oversight reporting services
package reporte

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
	"github.com/rapicredit/backoffice/internal/services/listing"
)

const (
	dashboardKey = "reporte:dashboard"
	dashboardTTL = 60 * time.Second
)

// Service implements ReporteService
type Service struct {
	core   interfaces.CoreClient
	cache  interfaces.Cache
	guard  listing.Guard
	logger *common.Logger
}

// NewService creates a new reporting service
func NewService(core interfaces.CoreClient, cache interfaces.Cache, logger *common.Logger) *Service {
	return &Service{core: core, cache: cache, logger: logger}
}

var _ interfaces.ReporteService = (*Service)(nil)

// Dashboard returns the landing-screen summary through a short-TTL
// cache. A slower in-flight refresh never overwrites a newer one.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResumen, error) {
	if raw, ok := s.cache.Get(ctx, dashboardKey); ok {
		var resumen models.DashboardResumen
		if err := json.Unmarshal([]byte(raw), &resumen); err == nil {
			return &resumen, nil
		}
		s.cache.Delete(ctx, dashboardKey)
	}

	token := s.guard.Begin()
	resumen, err := s.core.GetDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(resumen); err == nil {
		s.guard.Commit(token, func() {
			s.cache.Set(ctx, dashboardKey, string(encoded), dashboardTTL)
		})
	}
	return resumen, nil
}

// InvalidateDashboard drops the cached summary after a write that moves
// its figures, such as a loan decision or a payment.
func (s *Service) InvalidateDashboard(ctx context.Context) {
	s.guard.Begin()
	s.cache.Delete(ctx, dashboardKey)
}

// DashboardChart renders the day's money movement as a PNG bar chart.
func (s *Service) DashboardChart(ctx context.Context) ([]byte, error) {
	resumen, err := s.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return RenderDashboardChart(resumen)
}

// EstadisticasAsesor returns one advisor's portfolio performance.
func (s *Service) EstadisticasAsesor(ctx context.Context, asesorID string) (*models.EstadisticasAsesor, error) {
	if asesorID == "" {
		return nil, models.NewValidationError("asesor_id", "el identificador del asesor es requerido")
	}
	return s.core.GetEstadisticasAsesor(ctx, asesorID)
}

// Decisiones returns the approve/reject trail for a date range, newest
// first. Open-ended ranges are allowed.
func (s *Service) Decisiones(ctx context.Context, desde, hasta string) ([]models.Decision, error) {
	decisiones, err := s.core.ListDecisiones(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return listing.SortByDateDesc(decisiones, func(d models.Decision) string { return d.Fecha }), nil
}

// ReassignCartera moves one advisor's client portfolio to another.
func (s *Service) ReassignCartera(ctx context.Context, fromAsesorID, toAsesorID string) error {
	if fromAsesorID == "" || toAsesorID == "" {
		return models.NewValidationError("asesor_id", "ambos asesores son requeridos")
	}
	if fromAsesorID == toAsesorID {
		return models.NewValidationError("asesor_id", "los asesores de origen y destino deben ser distintos")
	}

	if err := s.core.ReassignCartera(ctx, fromAsesorID, toAsesorID); err != nil {
		return fmt.Errorf("failed to reassign portfolio: %w", err)
	}

	s.logger.Info().
		Str("desde", fromAsesorID).
		Str("hacia", toAsesorID).
		Msg("Portfolio reassigned")
	return nil
}
