package server

import (
	"runtime/debug"
	"time"

	"github.com/gorilla/websocket"
)

// Start sends the hello frame and starts the session loops.
func (s *Session) Start() {
	s.send(NewHello(s.ID, s.config.Variant))
	go s.ReadLoop()
	go s.WriteLoop()
	go s.EventLoop()
}

// ReadLoop reads client frames and queues them for the event loop.
// It blocks until the connection is closed or an error occurs.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.metrics.recordWebSocketError("read")
			}
			return
		}

		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		s.UpdateLastActive()
		s.bytesRecv.Add(uint64(len(data)))

		msg, err := DecodeClientMessage(data)
		if err != nil {
			s.logger.Debug("decode error", "error", err)
			s.sendError(err)
			continue
		}

		if err := s.QueueMessage(msg); err != nil {
			s.sendError(err)
		}
	}
}

// WriteLoop sends heartbeat pings until the session closes.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.config.WriteTimeout))
			if err != nil {
				s.logger.Debug("ping error", "error", err)
				s.Close()
				return
			}

		case <-s.done:
			return
		}
	}
}

// EventLoop runs client actions and dispatched callbacks. It is the only
// goroutine that touches the controller.
func (s *Session) EventLoop() {
	for {
		select {
		case msg := <-s.events:
			s.safeExecute(func() { s.handleMessage(msg) })

		case fn := <-s.dispatchCh:
			s.safeExecute(fn)

		case <-s.done:
			return
		}
	}
}

func (s *Session) safeExecute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event loop panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}
