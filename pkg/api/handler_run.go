package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// maxGoalSize caps the submitted goal text.
const maxGoalSize = 64 * 1024

// submitRunHandler handles POST /api/v1/run.
// Creates a run in "pending" status and returns immediately with run_id.
func (s *Server) submitRunHandler(c *echo.Context) error {
	var req SubmitRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Goal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "goal field is required")
	}
	if len(req.Goal) > maxGoalSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("goal exceeds maximum size of %d bytes", maxGoalSize))
	}
	if req.AgentProfileID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent_profile_id field is required")
	}

	profile, err := s.cfg.GetProfile(req.AgentProfileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("agent profile %q not found in configuration", req.AgentProfileID))
	}
	if profile.Disabled() {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("agent profile %q is disabled", req.AgentProfileID))
	}

	run, err := s.runService.CreateRun(c.Request().Context(), models.CreateRunRequest{
		RunID:          uuid.New().String(),
		Goal:           req.Goal,
		AgentProfileID: req.AgentProfileID,
		Context:        req.Context,
		StreamTokens:   req.StreamTokens,
		Author:         extractAuthor(c),
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &SubmitRunResponse{
		RunID:          run.ID,
		Status:         string(run.Status),
		Goal:           run.Goal,
		AgentProfileID: run.AgentProfileID,
		CreatedAt:      run.CreatedAt,
		Message:        "Run submitted for processing",
	})
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	run, err := s.runService.GetRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toRunResponse(run))
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	filters := models.RunFilters{Limit: 25}

	if v := c.QueryParam("status"); v != "" {
		if err := entrun.StatusValidator(entrun.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = v
	}
	filters.ProfileID = c.QueryParam("agent_profile_id")
	filters.Author = c.QueryParam("author")

	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}
	if v := c.QueryParam("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.QueryParam("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &t
	}

	result, err := s.runService.ListRuns(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &RunListResponse{
		Runs:       make([]*RunSummary, 0, len(result.Runs)),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	}
	for _, run := range result.Runs {
		resp.Runs = append(resp.Runs, toRunSummary(run))
	}
	return c.JSON(http.StatusOK, resp)
}

// searchRunsHandler handles GET /api/v1/runs/search.
func (s *Server) searchRunsHandler(c *echo.Context) error {
	query := c.QueryParam("q")
	if len(query) < 3 {
		return echo.NewHTTPError(http.StatusBadRequest, "search query must be at least 3 characters")
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	runs, err := s.runService.SearchRuns(c.Request().Context(), query, limit)
	if err != nil {
		return mapServiceError(err)
	}

	summaries := make([]*RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, toRunSummary(run))
	}
	return c.JSON(http.StatusOK, summaries)
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel.
// Cancellation is idempotent: cancelling a terminal run reports its current
// status without modifying it.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	before, err := s.runService.GetRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}
	wasTerminal := models.IsTerminalStatus(string(before.Status))

	run, err := s.runService.CancelRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}

	// Interrupt the executing planner on this pod, if any. Other pods notice
	// the terminal status at their next loop iteration.
	if s.workerPool != nil {
		s.workerPool.CancelRun(runID)
	}

	message := "Run cancellation requested"
	if wasTerminal {
		message = fmt.Sprintf("Run already %s", run.Status)
	} else if err := s.pub.PublishStatus(c.Request().Context(), runID, string(entrun.StatusCancelled), nil, ""); err != nil {
		// Stream consumers still terminate via the streamer's status poll.
		slog.Warn("Failed to publish cancel status event", "run_id", runID, "error", err)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		RunID:   runID,
		Status:  string(run.Status),
		Message: message,
	})
}
