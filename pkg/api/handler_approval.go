package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/ranger/pkg/planner"
)

// approveRunHandler handles POST /api/v1/runs/:id/approve.
// Executes the held tool call and releases the run back to the queue.
// A body with "approved": false rejects instead. Approving a run that is
// not awaiting approval is an idempotent no-op.
func (s *Server) approveRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	var req ApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var result *planner.ApprovalResult
	var err error
	if req.Approved != nil && !*req.Approved {
		result, err = s.gate.Reject(c.Request().Context(), runID, extractAuthor(c))
	} else {
		result, err = s.gate.Approve(c.Request().Context(), runID, extractAuthor(c), req.ModifiedArguments)
	}
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toApprovalResponse(runID, result))
}

// rejectRunHandler handles POST /api/v1/runs/:id/reject.
// Fails the run without executing the held tool call.
func (s *Server) rejectRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	result, err := s.gate.Reject(c.Request().Context(), runID, extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, toApprovalResponse(runID, result))
}

func toApprovalResponse(runID string, result *planner.ApprovalResult) *ApprovalResponse {
	return &ApprovalResponse{
		RunID:   runID,
		Status:  result.Status,
		Applied: result.Applied,
		Message: result.Message,
	}
}
