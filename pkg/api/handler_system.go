package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/ranger/pkg/database"
	"github.com/codeready-toolchain/ranger/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only our own components (database, worker pool) are checked. External
// dependencies (tool servers, LLM sidecar) are excluded so an orchestrator
// never restarts this process because an external service is down.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	_, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// listProfilesHandler handles GET /api/v1/agent-profiles.
// Disabled profiles are omitted; they cannot be submitted against.
func (s *Server) listProfilesHandler(c *echo.Context) error {
	profiles := s.cfg.ProfileRegistry.GetAll()

	resp := make([]*ProfileResponse, 0, len(profiles))
	for profileID, profile := range profiles {
		if profile.Disabled() {
			continue
		}
		resp = append(resp, &ProfileResponse{
			ProfileID:             profileID,
			Description:           profile.Description,
			AllowedToolServers:    profile.AllowedToolServers,
			ApprovalRequiredTools: profile.ApprovalRequiredTools,
			MaxSteps:              s.cfg.MaxStepsForProfile(profile),
			Enabled:               true,
		})
	}
	sort.Slice(resp, func(i, j int) bool { return resp[i].ProfileID < resp[j].ProfileID })

	return c.JSON(http.StatusOK, resp)
}

// listToolServersHandler handles GET /api/v1/tool-servers.
// Reports connection state from the process-wide multiplexer without
// probing any server.
func (s *Server) listToolServersHandler(c *echo.Context) error {
	if s.mcpManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "tool server manager is not available")
	}

	servers := s.mcpManager.Status()
	connected := true
	for _, srv := range servers {
		if !srv.Disabled && !srv.Connected {
			connected = false
			break
		}
	}
	return c.JSON(http.StatusOK, &ToolServerListResponse{
		Connected: connected,
		Servers:   servers,
	})
}
