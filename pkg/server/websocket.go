package server

import (
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cosmos-docs/livepreview/pkg/middleware"
	"github.com/cosmos-docs/livepreview/pkg/protocol"
)

// Start runs the session: one goroutine reads frames, one handles queued
// messages and one keeps the connection alive with pings.
func (s *Session) Start() {
	go s.receive()
	go s.heartbeat()
	go s.dispatch()
}

// receive decodes incoming frames and queues them for dispatch. Ending
// the connection closes the session.
func (s *Session) receive() {
	defer s.Close()

	extend := func() error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	}
	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetPongHandler(func(string) error {
		s.touch()
		return extend()
	})

	for {
		_ = extend()
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				middleware.RecordWebSocketError("read")
				s.logger.Error("websocket read failed", "error", err)
			}
			return
		}
		s.touch()

		msg, err := protocol.DecodeClient(data)
		if err != nil {
			middleware.RecordWebSocketError("decode")
			s.logger.Warn("dropping undecodable message", "error", err)
			s.sendErrorMessage(protocol.CodeInvalidMessage, "Invalid message")
			continue
		}

		switch err := s.enqueue(msg); {
		case errors.Is(err, ErrSessionClosed):
			return
		case err != nil:
			middleware.RecordWebSocketError("queue_full")
			s.sendErrorMessage(protocol.CodeServerError, "Event queue full")
		}
	}
}

// enqueue never blocks: a full queue is reported as ErrEventQueueFull.
func (s *Session) enqueue(msg *protocol.ClientMessage) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	select {
	case <-s.done:
		return ErrSessionClosed
	case s.events <- msg:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// dispatch pushes the first render, then handles messages in arrival
// order until the session closes.
func (s *Session) dispatch() {
	s.flush()
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.events:
			s.handleMessage(msg)
		}
	}
}

func (s *Session) heartbeat() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}
		if err := s.ping(); err != nil {
			s.Close()
			return
		}
	}
}

func (s *Session) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrSessionClosed
	}
	deadline := time.Now().Add(s.config.WriteTimeout)
	if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
		middleware.RecordWebSocketError("ping")
		s.logger.Error("websocket ping failed", "error", err)
		return err
	}
	return nil
}
