package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/ranger/pkg/services"
)

// streamRunHandler handles GET /api/v1/runs/:id/stream.
//
// Serves the run's event log as SSE, replaying persisted events after the
// client's cursor and polling for new ones until the run is terminal. The
// resume cursor comes from the Last-Event-ID header (standard EventSource
// reconnect) or the last_event_id query parameter.
func (s *Server) streamRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	lastEventID := 0
	if v := c.Request().Header.Get("Last-Event-ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			lastEventID = id
		}
	}
	if v := c.QueryParam("last_event_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid last_event_id")
		}
		lastEventID = id
	}

	err := s.streamer.Stream(c.Request().Context(), c.Response(), runID, lastEventID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "run not found")
		}
		// Headers are already written once streaming starts; nothing useful
		// can be returned to the client at this point.
		return err
	}
	return nil
}
