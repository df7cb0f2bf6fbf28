package server

import (
	"net/http"
	"strings"
	"time"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Auth
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/logout", s.handleAuthLogout)

	// Clients
	mux.HandleFunc("/api/clientes/", s.routeClientes)
	mux.HandleFunc("/api/clientes", s.handleClientes)

	// Loans and payments
	mux.HandleFunc("/api/financiamientos/recientes", s.handleFinanciamientosRecientes)
	mux.HandleFunc("/api/financiamientos/", s.handleFinanciamientoByID)
	mux.HandleFunc("/api/financiamientos", s.handleFinanciamientos)
	mux.HandleFunc("/api/abonos", s.handleAbonos)

	// Credit requests
	mux.HandleFunc("/api/solicitudes/", s.routeSolicitudes)
	mux.HandleFunc("/api/solicitudes", s.handleSolicitudes)

	// Staff
	mux.HandleFunc("/api/asesores", s.handleAsesores)
	mux.HandleFunc("/api/empleados/", s.routeEmpleados)
	mux.HandleFunc("/api/empleados", s.handleEmpleados)

	// Rate catalog
	mux.HandleFunc("/api/tasas/", s.routeTasas)
	mux.HandleFunc("/api/tasas", s.handleTasas)

	// Quote preview
	mux.HandleFunc("/api/cotizador", s.handleCotizador)

	// Reporting
	mux.HandleFunc("/api/dashboard/chart", s.handleDashboardChart)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/reportes/decisiones", s.handleDecisiones)
	mux.HandleFunc("/api/reportes/asesores/", s.handleEstadisticasAsesor)
	mux.HandleFunc("/api/cartera/reasignar", s.handleReasignarCartera)
}

// routeClientes dispatches /api/clientes/{id} and /api/clientes/{id}/fotos.
func (s *Server) routeClientes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/clientes/")
	if path == "" {
		s.handleClientes(w, r)
		return
	}

	if strings.HasSuffix(path, "/fotos") {
		s.handleClienteFoto(w, r, strings.TrimSuffix(path, "/fotos"))
		return
	}

	s.handleClienteByID(w, r, path)
}

// routeSolicitudes dispatches /api/solicitudes/{id} and the decision
// actions /{id}/aprobar and /{id}/rechazar.
func (s *Server) routeSolicitudes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/solicitudes/")
	if path == "" {
		s.handleSolicitudes(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) == 1 {
		s.handleSolicitudByID(w, r, parts[0])
		return
	}

	switch parts[1] {
	case "aprobar":
		s.handleSolicitudDecision(w, r, parts[0], true)
	case "rechazar":
		s.handleSolicitudDecision(w, r, parts[0], false)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// routeEmpleados dispatches /api/empleados/{id} and /api/empleados/{id}/estado.
func (s *Server) routeEmpleados(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/empleados/")
	if path == "" {
		s.handleEmpleados(w, r)
		return
	}

	if strings.HasSuffix(path, "/estado") {
		s.handleEmpleadoEstado(w, r, strings.TrimSuffix(path, "/estado"))
		return
	}

	s.handleEmpleadoByID(w, r, path)
}

// routeTasas dispatches /api/tasas/{id} and /api/tasas/{id}/estado.
func (s *Server) routeTasas(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/tasas/")
	if path == "" {
		s.handleTasas(w, r)
		return
	}

	if strings.HasSuffix(path, "/estado") {
		s.handleTasaEstado(w, r, strings.TrimSuffix(path, "/estado"))
		return
	}

	s.handleTasaByID(w, r, path)
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
