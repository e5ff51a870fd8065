package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/showcase/internal/catalog"
	"github.com/vango-dev/showcase/internal/showcase"
	"github.com/vango-dev/showcase/pkg/render"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// Session is one open page. It owns the page's controller and the
// goroutines that serve its WebSocket.
type Session struct {
	ID        string
	IP        string
	CreatedAt time.Time

	lastActive atomic.Int64 // unix nanos

	conn   *websocket.Conn
	mu     sync.Mutex // serializes conn writes
	closed atomic.Bool

	controller *viewstate.Controller
	view       showcase.View
	renderer   *render.Renderer
	handler    HandlerFunc

	events     chan *ClientMessage
	dispatchCh chan func()
	done       chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	config  *SessionConfig
	logger  *slog.Logger
	metrics *serverMetrics
	onClose func(*Session)

	actionCount atomic.Uint64
	patchCount  atomic.Uint64
	bytesSent   atomic.Uint64
	bytesRecv   atomic.Uint64
}

// newSession builds a session around conn. The controller schedules toast
// expiry onto the session's event loop.
func newSession(conn *websocket.Conn, cat *catalog.Catalog, config *SessionConfig, handler HandlerFunc, logger *slog.Logger) (*Session, error) {
	now := time.Now()
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		ID:         id,
		CreatedAt:  now,
		conn:       conn,
		renderer:   render.NewRenderer(),
		handler:    handler,
		events:     make(chan *ClientMessage, config.MaxEventQueue),
		dispatchCh: make(chan func(), config.MaxEventQueue),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		config:     config,
		logger:     logger.With("session_id", id),
	}
	s.lastActive.Store(now.UnixNano())

	s.controller = viewstate.New(
		viewstate.WithVariant(config.Variant),
		viewstate.WithToastDelay(config.ToastDelay),
		viewstate.WithScheduler(viewstate.LoopScheduler{Dispatch: s.Dispatch}),
		viewstate.WithOnChange(s.onChange),
		viewstate.WithLogger(s.logger),
	)

	cat = cat.ForVariant(config.Variant)
	if _, err := cat.Bind(s.controller); err != nil {
		cancel()
		s.controller.Close()
		return nil, err
	}
	s.view = showcase.View{Catalog: cat, Controller: s.controller}

	return s, nil
}

// Controller returns the session's controller.
func (s *Session) Controller() *viewstate.Controller {
	return s.controller
}

// View returns the session's page view.
func (s *Session) View() showcase.View {
	return s.view
}

// onChange runs on the event loop after every controller transition.
func (s *Session) onChange(change viewstate.Change) {
	html, err := s.renderer.RenderToString(s.view.ChangeSlot(change))
	if err != nil {
		s.logger.Error("slot render failed", "slot", change.Kind.String(), "error", err)
		return
	}
	slot := showcase.SlotID(change.Kind)
	if err := s.send(NewPatch(slot, html, change.Reason)); err != nil {
		return
	}
	s.patchCount.Add(1)
	s.metrics.recordPatch(slot, string(change.Reason))
}

// handleMessage runs one client message on the event loop.
func (s *Session) handleMessage(msg *ClientMessage) {
	switch msg.Type {
	case MsgPing:
		s.send(ServerMessage{Type: MsgPong})

	case MsgAction:
		s.actionCount.Add(1)
		a := NewAction(s.ctx, s.ID, msg.Action, msg.Args, s.controller)
		if err := s.handler(a); err != nil {
			s.logger.Debug("action rejected", "action", msg.Action, "error", err)
			s.sendError(err)
		}
	}
}

// Dispatch queues fn to run on the session's event loop. When the queue is
// full it waits for room or for Close; calls after Close are dropped. It
// must not be called from the event loop itself, which drains the queue.
func (s *Session) Dispatch(fn func()) {
	if s.closed.Load() {
		return
	}
	select {
	case s.dispatchCh <- fn:
	case <-s.done:
	}
}

// QueueMessage queues a decoded client message for the event loop.
func (s *Session) QueueMessage(msg *ClientMessage) error {
	select {
	case s.events <- msg:
		return nil
	default:
		s.logger.Warn("event queue full, dropping message", "type", msg.Type, "action", msg.Action)
		return ErrEventQueueFull
	}
}

func (s *Session) send(msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed.Load() {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.conn == nil {
		s.mu.Unlock()
		return ErrNoConnection
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	err = s.conn.WriteMessage(websocket.TextMessage, data)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("write error", "error", err)
		s.Close()
		return &SessionError{SessionID: s.ID, Op: "write", Err: err}
	}
	s.bytesSent.Add(uint64(len(data)))
	return nil
}

func (s *Session) sendError(err error) {
	msg := NewErrorMessage(err)
	s.metrics.recordError(msg.Code)
	s.send(msg)
}

// UpdateLastActive records client activity.
func (s *Session) UpdateLastActive() {
	s.lastActive.Store(time.Now().UnixNano())
}

// LastActive returns the time of the last client message.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// Close tears the session down: the controller is closed (cancelling any
// toast countdown), the loops stop and the connection is closed.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}

	close(s.done)
	s.cancel()
	s.controller.Close()

	if s.conn != nil {
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.conn.Close()
	}

	if s.onClose != nil {
		s.onClose(s)
	}

	s.logger.Info("session closed",
		"actions", s.actionCount.Load(),
		"patches", s.patchCount.Load(),
		"bytes_sent", s.bytesSent.Load(),
		"bytes_recv", s.bytesRecv.Load())
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// SessionStats is a point-in-time view of one session.
type SessionStats struct {
	ID          string
	CreatedAt   time.Time
	LastActive  time.Time
	Actions     uint64
	Patches     uint64
	BytesSent   uint64
	BytesRecv   uint64
	Modal       viewstate.ModalState
	Toast       viewstate.ToastState
	Dismissible bool
}

// Stats returns session statistics.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		LastActive:  s.LastActive(),
		Actions:     s.actionCount.Load(),
		Patches:     s.patchCount.Load(),
		BytesSent:   s.bytesSent.Load(),
		BytesRecv:   s.bytesRecv.Load(),
		Modal:       s.controller.Modal(),
		Toast:       s.controller.Toast(),
		Dismissible: s.controller.Dismissible(),
	}
}
