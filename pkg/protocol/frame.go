package protocol

import (
	"encoding/json"
	"fmt"
)

// MaxFrameSize is the largest frame DecodeFrame accepts, in bytes.
// Incoming client frames carry a single event and should be tiny; the
// limit guards against a misbehaving client.
const MaxFrameSize = 64 * 1024

// FrameType identifies the kind of frame.
type FrameType uint8

const (
	FrameHello FrameType = iota + 1 // server → client, session bootstrap
	FrameOps                        // server → client, DOM mutations
	FrameEvent                      // client → server, user event
	FramePing                       // either direction
	FramePong                       // either direction
	FrameError                      // server → client, terminal error
)

var frameNames = map[FrameType]string{
	FrameHello: "hello",
	FrameOps:   "ops",
	FrameEvent: "event",
	FramePing:  "ping",
	FramePong:  "pong",
	FrameError: "error",
}

var frameTypes = func() map[string]FrameType {
	m := make(map[string]FrameType, len(frameNames))
	for t, n := range frameNames {
		m[n] = t
	}
	return m
}()

// String returns the wire name of the frame type.
func (t FrameType) String() string {
	if n, ok := frameNames[t]; ok {
		return n
	}
	return fmt.Sprintf("FrameType(%d)", uint8(t))
}

// MarshalJSON encodes the frame type as its wire name.
func (t FrameType) MarshalJSON() ([]byte, error) {
	n, ok := frameNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameType, uint8(t))
	}
	return json.Marshal(n)
}

// UnmarshalJSON decodes a frame type from its wire name.
func (t *FrameType) UnmarshalJSON(data []byte) error {
	var n string
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	ft, ok := frameTypes[n]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFrameType, n)
	}
	*t = ft
	return nil
}

// Event is a user interaction reported by the client.
type Event struct {
	// Node is the element the listener is attached to.
	Node NodeID `json:"node"`

	// Listener is the listener registration the event targets.
	Listener uint32 `json:"listener"`

	// Type is the DOM event type ("click", "input", ...).
	Type string `json:"type"`

	// Value carries the target's value for input-like events.
	Value string `json:"value,omitempty"`

	// Checked carries the target's checked state for checkboxes.
	Checked bool `json:"checked,omitempty"`
}

// Frame is one WebSocket message. Exactly one of the payload fields is
// populated, selected by Type.
type Frame struct {
	Type FrameType `json:"type"`

	// Seq numbers server → client ops frames, starting at 1.
	Seq uint64 `json:"seq,omitempty"`

	// SessionID is set on hello frames.
	SessionID string `json:"session_id,omitempty"`

	// Root is the node ID of the mount root, set on hello frames.
	Root NodeID `json:"root,omitempty"`

	Ops   []Op   `json:"ops,omitempty"`
	Event *Event `json:"event,omitempty"`

	// Code and Message are set on error frames.
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewHello creates a session bootstrap frame.
func NewHello(sessionID string, root NodeID) *Frame {
	return &Frame{Type: FrameHello, SessionID: sessionID, Root: root}
}

// NewOps creates a sequenced ops frame.
func NewOps(seq uint64, ops []Op) *Frame {
	return &Frame{Type: FrameOps, Seq: seq, Ops: ops}
}

// NewError creates a terminal error frame.
func NewError(code, message string) *Frame {
	return &Frame{Type: FrameError, Code: code, Message: message}
}

// EncodeFrame encodes a frame for the wire.
func EncodeFrame(f *Frame) ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFrame decodes a frame received from the wire. It rejects frames
// over MaxFrameSize and frames with unknown types.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Type == 0 {
		return nil, ErrInvalidFrameType
	}
	return &f, nil
}
