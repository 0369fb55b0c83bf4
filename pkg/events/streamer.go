package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/codeready-toolchain/ranger/ent"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

const (
	// DefaultPollInterval is how often the streamer tails the event log.
	DefaultPollInterval = 300 * time.Millisecond

	// pollBatchSize bounds one fetch from the event log.
	pollBatchSize = 500
)

// Streamer converts event-log tailing into a server-sent-events response.
// It polls the log, forwards persisted events in ID order, interleaves
// transient token deltas from the broker, and closes the stream with an
// end frame once the run reaches a terminal status.
//
// The stream is best-effort; authoritative state is always the run row.
type Streamer struct {
	runs         *services.RunService
	events       *services.EventService
	broker       *Broker
	pollInterval time.Duration
}

// NewStreamer creates a Streamer. broker may be nil (no token frames).
func NewStreamer(runs *services.RunService, events *services.EventService, broker *Broker) *Streamer {
	return &Streamer{
		runs:         runs,
		events:       events,
		broker:       broker,
		pollInterval: DefaultPollInterval,
	}
}

// Stream writes the SSE stream for a run to w until the run terminates or
// ctx is cancelled. lastEventID is the resume cursor: 0 replays the whole
// log, a client reconnecting with Last-Event-ID picks up where it left off.
func (s *Streamer) Stream(ctx context.Context, w http.ResponseWriter, runID string, lastEventID int) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("response writer does not support flushing")
	}

	// Resolve the run before committing the response status, so an unknown
	// run can still surface as a plain HTTP error.
	run, err := s.runs.GetRun(ctx, runID)
	if err != nil {
		return err
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var tokens chan TokenPayload
	if s.broker != nil && run.StreamTokens {
		tokens = s.broker.Subscribe(runID)
		defer s.broker.Unsubscribe(runID, tokens)
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case tok, ok := <-tokens:
			if !ok {
				tokens = nil
				continue
			}
			if err := writeFrame(w, flusher, 0, EventTypeToken, tok); err != nil {
				return err
			}

		case <-ticker.C:
			cursor, err := s.forwardEvents(ctx, w, flusher, runID, lastEventID)
			if err != nil {
				return err
			}
			lastEventID = cursor

			run, err := s.runs.GetRun(ctx, runID)
			if err != nil {
				return err
			}
			if models.IsTerminalStatus(string(run.Status)) {
				// One more fetch so events written in the same update as
				// the terminal transition are not lost.
				if _, err := s.forwardEvents(ctx, w, flusher, runID, lastEventID); err != nil {
					return err
				}
				return writeFrame(w, flusher, 0, EventTypeEnd, EndPayload{
					Type:      EventTypeEnd,
					Status:    string(run.Status),
					Timestamp: now(),
				})
			}
		}
	}
}

// forwardEvents fetches and writes all events after the cursor, returning
// the new cursor.
func (s *Streamer) forwardEvents(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, runID string, cursor int) (int, error) {
	for {
		batch, err := s.events.GetEventsSince(ctx, runID, cursor, pollBatchSize)
		if err != nil {
			return cursor, err
		}
		for _, ev := range batch {
			if err := writeEvent(w, flusher, ev); err != nil {
				return cursor, err
			}
			cursor = ev.ID
		}
		if len(batch) < pollBatchSize {
			return cursor, nil
		}
	}
}

// writeEvent emits one persisted event as an SSE frame.
func writeEvent(w http.ResponseWriter, flusher http.Flusher, ev *ent.RunEvent) error {
	return writeFrame(w, flusher, ev.ID, ev.EventType, ev.Payload)
}

// writeFrame writes a single SSE frame. id 0 omits the id line (transient
// frames have no replay cursor).
func writeFrame(w http.ResponseWriter, flusher http.Flusher, id int, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s frame: %w", eventType, err)
	}
	if id > 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", id); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
