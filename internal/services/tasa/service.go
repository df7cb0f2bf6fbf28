// Package tasa provides interest rate catalog services
package tasa

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
	cacheKey   = "catalogo:tasas"
	defaultTTL = 5 * time.Minute
)

// Service implements TasaService. The rate catalog changes rarely and is
// read on every quote screen, so the full upstream list is cached and
// invalidated on any mutation.
type Service struct {
	core   interfaces.CoreClient
	cache  interfaces.Cache
	ttl    time.Duration
	guard  listing.Guard
	logger *common.Logger
}

// NewService creates a new rate catalog service. ttl bounds how long a
// cached catalog is served; non-positive values fall back to the default.
func NewService(core interfaces.CoreClient, cache interfaces.Cache, ttl time.Duration, logger *common.Logger) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{core: core, cache: cache, ttl: ttl, logger: logger}
}

var _ interfaces.TasaService = (*Service)(nil)

func searchFields(t models.Tasa) []string {
	return []string{t.Nombre, string(t.Frecuencia)}
}

// List returns the rate catalog, filtered and sorted by name. The
// upstream fetch goes through the short-TTL cache; a cache the caller
// cannot reach only costs a refetch.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Tasa, error) {
	tasas, err := s.catalogo(ctx)
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(tasas, opts.Query, opts.Estado, searchFields,
		func(t models.Tasa) bool { return t.Activa })

	return listing.SortByName(filtered, func(t models.Tasa) string { return t.Nombre }), nil
}

// catalogo returns the cached catalog, refreshing from upstream on a
// miss. A refresh only repopulates the cache when no newer refresh or
// invalidation happened while it was in flight.
func (s *Service) catalogo(ctx context.Context) ([]models.Tasa, error) {
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var tasas []models.Tasa
		if err := json.Unmarshal([]byte(raw), &tasas); err == nil {
			return tasas, nil
		}
		s.cache.Delete(ctx, cacheKey)
	}

	token := s.guard.Begin()
	tasas, err := s.core.ListTasas(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(tasas); err == nil {
		s.guard.Commit(token, func() {
			s.cache.Set(ctx, cacheKey, string(encoded), s.ttl)
		})
	}
	return tasas, nil
}

// invalidate drops the cached catalog and bumps the refresh generation
// so a slower in-flight refresh cannot rewrite pre-mutation data.
func (s *Service) invalidate(ctx context.Context) {
	s.guard.Begin()
	s.cache.Delete(ctx, cacheKey)
}

// Create validates and registers a new rate upstream.
func (s *Service) Create(ctx context.Context, payload map[string]any) (*models.Tasa, error) {
	if nombre, _ := payload["nombre"].(string); nombre == "" {
		return nil, models.NewValidationError("nombre", "el nombre de la tasa es requerido")
	}
	if pct, _ := payload["porcentajeAnual"].(float64); pct <= 0 {
		return nil, models.NewValidationError("porcentajeAnual", "el porcentaje anual debe ser mayor que cero")
	}

	creada, err := s.core.CreateTasa(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Str("tasa_id", creada.ID).Float64("porcentaje", creada.PorcentajeAnual).Msg("Rate created")
	return creada, nil
}

// Update modifies a rate upstream and invalidates the catalog.
func (s *Service) Update(ctx context.Context, id string, payload map[string]any) (*models.Tasa, error) {
	if id == "" {
		return nil, models.NewValidationError("id", "el identificador de la tasa es requerido")
	}

	actualizada, err := s.core.UpdateTasa(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return actualizada, nil
}

// Delete removes a rate upstream and invalidates the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.NewValidationError("id", "el identificador de la tasa es requerido")
	}
	if err := s.core.DeleteTasa(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ToggleEstado flips the rate's active flag upstream and returns the
// confirmed record.
func (s *Service) ToggleEstado(ctx context.Context, id string, activa bool) (*models.Tasa, error) {
	if id == "" {
		return nil, models.NewValidationError("id", "el identificador de la tasa es requerido")
	}

	actualizada, err := s.core.ToggleTasa(ctx, id, activa)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("tasa_id", id).Bool("activa", actualizada.Activa).Msg("Rate status changed")
	return actualizada, nil
}
