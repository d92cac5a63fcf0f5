package server

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/reactor-ui/reactor/pkg/dom"
	"github.com/reactor-ui/reactor/pkg/hooks"
	"github.com/reactor-ui/reactor/pkg/protocol"
	"github.com/reactor-ui/reactor/pkg/remotedom"
	"github.com/reactor-ui/reactor/pkg/runtime"
)

// LiveSession drives one connected page. The session owns a recording
// document and a runtime session mounted into it; client events are
// delivered on a single event loop goroutine, and the ops each render
// pass records are flushed to the client as one sequenced frame.
type LiveSession struct {
	ID string

	conn    *websocket.Conn
	config  *SessionConfig
	metrics *liveMetrics
	logger  *slog.Logger

	doc  *remotedom.Document
	root *remotedom.Element
	sess *runtime.Session

	writeMu sync.Mutex
	sendSeq atomic.Uint64

	events    chan *protocol.Event
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once
	onClose   func(*LiveSession)
}

func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// newLiveSession creates a session over an upgraded connection.
func newLiveSession(conn *websocket.Conn, config *SessionConfig, metrics *liveMetrics, logger *slog.Logger) *LiveSession {
	id := newSessionID()
	return &LiveSession{
		ID:      id,
		conn:    conn,
		config:  config,
		metrics: metrics,
		logger:  logger.With("session", id),
		events:  make(chan *protocol.Event, config.MaxEventQueue),
		done:    make(chan struct{}),
	}
}

// Mount renders the component into a fresh recording document, sends the
// hello frame, and flushes the initial tree as the first ops frame.
func (s *LiveSession) Mount(component hooks.Component, props hooks.Props) error {
	s.doc = remotedom.NewDocument()
	s.root = s.doc.CreateElement("div").(*remotedom.Element)
	s.sess = runtime.NewSession(s.doc, s.root, s.logger)

	if err := s.sess.Mount(component, props); err != nil {
		return NewSessionError(s.ID, "mount", err)
	}

	if err := s.writeFrame(protocol.NewHello(s.ID, s.root.ID())); err != nil {
		return err
	}
	return s.flush()
}

// Start launches the session goroutines. Call after Mount succeeds.
func (s *LiveSession) Start() {
	go s.readLoop()
	go s.heartbeatLoop()
	go s.eventLoop()
}

// QueueEvent queues a client event for the event loop. Events are
// dropped, not blocked on, when the queue is full.
func (s *LiveSession) QueueEvent(ev *protocol.Event) error {
	select {
	case s.events <- ev:
		return nil
	default:
		s.metrics.eventsDropped.Inc()
		return ErrEventQueueFull
	}
}

// readLoop reads frames from the socket until the connection dies.
func (s *LiveSession) readLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			if frame.Event == nil {
				s.logger.Warn("event frame without event payload")
				continue
			}
			if err := s.QueueEvent(frame.Event); err != nil {
				s.writeFrame(protocol.NewError("queue_full", "event queue full"))
			}

		case protocol.FramePing:
			s.writeFrame(&protocol.Frame{Type: protocol.FramePong})

		case protocol.FramePong:
			s.logger.Debug("received pong")

		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
		}
	}
}

// heartbeatLoop sends periodic pings until the session is closed.
func (s *LiveSession) heartbeatLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.writeFrame(&protocol.Frame{Type: protocol.FramePing}); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// eventLoop processes queued events one at a time. All renders for this
// session happen on this goroutine.
func (s *LiveSession) eventLoop() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		case <-s.done:
			return
		}
	}
}

// handleEvent delivers one client event to its listener and flushes the
// ops the resulting re-renders recorded.
func (s *LiveSession) handleEvent(ev *protocol.Event) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.renderErrors.Inc()
			s.logger.Error("event handler panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	s.metrics.eventsTotal.Inc()

	n, ok := s.doc.Lookup(ev.Node)
	if !ok {
		// Stale ID: the node was removed while the event was in flight.
		s.logger.Debug("event for unknown node", "node", ev.Node, "type", ev.Type)
		return
	}
	el, ok := n.(*remotedom.Element)
	if !ok {
		s.logger.Warn("event target is not an element", "node", ev.Node)
		return
	}

	el.Deliver(dom.ListenerID(ev.Listener), dom.Event{
		Type:    ev.Type,
		Value:   ev.Value,
		Checked: ev.Checked,
	})

	if err := s.flush(); err != nil {
		s.logger.Error("flush failed", "error", err)
		s.Close()
	}
}

// flush drains recorded ops and ships them as one sequenced frame.
func (s *LiveSession) flush() error {
	ops := s.doc.Drain()
	if len(ops) == 0 {
		return nil
	}

	seq := s.sendSeq.Add(1)
	if err := s.writeFrame(protocol.NewOps(seq, ops)); err != nil {
		return err
	}

	s.metrics.opsFrames.Inc()
	s.metrics.opsSent.Add(float64(len(ops)))
	return nil
}

// writeFrame encodes and writes one frame under the write lock.
func (s *LiveSession) writeFrame(f *protocol.Frame) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	data, err := protocol.EncodeFrame(f)
	if err != nil {
		return NewSessionError(s.ID, "encode frame", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return NewSessionError(s.ID, "write frame", err)
	}
	return nil
}

// Close shuts the session down. Safe to call multiple times.
func (s *LiveSession) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
		s.conn.Close()
		if s.onClose != nil {
			s.onClose(s)
		}
		s.metrics.activeSessions.Dec()
		s.logger.Info("session closed")
	})
}
