// Package app wires configuration, clients, and services into one
// shared core used by cmd/rapicredit-server.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rapicredit/backoffice/internal/clients/core"
	"github.com/rapicredit/backoffice/internal/clients/identity"
	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/services/cliente"
	"github.com/rapicredit/backoffice/internal/services/empleado"
	"github.com/rapicredit/backoffice/internal/services/financiamiento"
	"github.com/rapicredit/backoffice/internal/services/reporte"
	"github.com/rapicredit/backoffice/internal/services/solicitud"
	"github.com/rapicredit/backoffice/internal/services/tasa"
	"github.com/rapicredit/backoffice/internal/storage/cache"
)

// App holds all initialized clients and services.
type App struct {
	Config   *common.Config
	Logger   *common.Logger
	Cache    interfaces.Cache
	Core     interfaces.CoreClient
	Identity *identity.Client

	ClienteService        interfaces.ClienteService
	FinanciamientoService interfaces.FinanciamientoService
	SolicitudService      interfaces.SolicitudService
	EmpleadoService       interfaces.EmpleadoService
	TasaService           interfaces.TasaService
	ReporteService        *reporte.Service

	StartupTime time.Time

	redisCache *cache.Redis
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	// Load configuration - check provided path, RAPICREDIT_CONFIG, then
	// binary dir, then the development fallback
	if configPath == "" {
		configPath = os.Getenv("RAPICREDIT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "rapicredit.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/rapicredit.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	a := &App{
		Config:      config,
		Logger:      logger,
		StartupTime: time.Now(),
	}

	// Response cache: redis when configured, in-process otherwise
	if config.Cache.Addr != "" {
		redis := cache.NewRedis(config.Cache.Addr, logger)
		a.Cache = redis
		a.redisCache = redis
	} else {
		a.Cache = cache.NewMemory()
		logger.Debug().Msg("No cache address configured, using in-process cache")
	}

	// Core API client, authenticated through the identity session
	coreClient := core.NewClient(config.Clients.Core.BaseURL,
		core.WithLogger(logger),
		core.WithTimeout(config.Clients.Core.GetTimeout()),
		core.WithRateLimit(config.Clients.Core.RateLimit),
	)

	identityClient := identity.NewClient(
		config.Clients.Identity.BaseURL,
		config.Clients.Identity.APIKey,
		identity.WithLogger(logger),
		identity.WithTimeout(config.Clients.Identity.GetTimeout()),
		identity.WithRoster(coreClient),
	)
	coreClient.SetTokenSource(identityClient)

	a.Core = coreClient
	a.Identity = identityClient

	a.ClienteService = cliente.NewService(coreClient, logger)
	a.FinanciamientoService = financiamiento.NewService(coreClient, logger)
	a.SolicitudService = solicitud.NewService(coreClient, logger)
	a.EmpleadoService = empleado.NewService(coreClient, logger)
	a.TasaService = tasa.NewService(coreClient, a.Cache, config.Cache.GetTTL(), logger)
	a.ReporteService = reporte.NewService(coreClient, a.Cache, logger)

	logger.Info().
		Str("core_api", config.Clients.Core.BaseURL).
		Str("environment", config.Environment).
		Msg("Application initialized")

	return a, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.redisCache != nil {
		return a.redisCache.Close()
	}
	return nil
}
