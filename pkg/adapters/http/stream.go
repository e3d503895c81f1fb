package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/gorilla/websocket"
)

// Frame types sent on GET /run/stream.
const (
	FrameStep   = "step"
	FrameResult = "result"
	FrameError  = "error"
)

// StreamFrame is one websocket message of a streamed search. Step frames
// carry Event; the closing frame carries Result or Error.
type StreamFrame struct {
	Type   string            `json:"type"`
	Event  *domain.StepEvent `json:"event,omitempty"`
	Result *RunResponse      `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

const writeWait = time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Stream handles GET /run/stream. It runs one search and pushes every step
// to the client as it happens. A failed write cancels the search, which
// leaves the grid with whatever tags it had reached.
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("stream: websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(r.Context(), s.RunTimeout)
	defer cancel()

	send := func(f StreamFrame) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return conn.WriteJSON(f)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.Session.Run(ctx, func(_ context.Context, ev domain.StepEvent) error {
		return send(StreamFrame{Type: FrameStep, Event: &ev})
	})
	if err != nil {
		s.Logger.Warn("stream: run rejected", "error", err)
		_ = send(StreamFrame{Type: FrameError, Error: err.Error()})
		return
	}

	if err := send(StreamFrame{Type: FrameResult, Result: &RunResponse{Result: res, Grid: viewOf(s.Session.Grid())}}); err != nil {
		s.Logger.Debug("stream: client gone before result", "error", err)
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(res.Outcome)),
		time.Now().Add(writeWait))
}
