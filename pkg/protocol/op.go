// Package protocol defines the wire format spoken between a live server
// session and the browser thin client.
//
// The server is the only party that mutates the page. It streams DOM
// mutation ops to the client; the client streams user events back. Frames
// are JSON encoded, one frame per WebSocket message.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Protocol errors.
var (
	ErrInvalidOpCode    = errors.New("protocol: invalid op code")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
	ErrFrameTooLarge    = errors.New("protocol: frame too large")
)

// OpCode identifies a DOM mutation op.
type OpCode uint8

const (
	OpCreateElement OpCode = iota + 1
	OpCreateText
	OpSetText
	OpSetAttribute
	OpRemoveAttribute
	OpSetClass
	OpSetStyle
	OpRemoveStyle
	OpAppendChild
	OpInsertBefore
	OpRemoveNode
	OpAddListener
	OpRemoveListener
)

var opNames = map[OpCode]string{
	OpCreateElement:   "createElement",
	OpCreateText:      "createText",
	OpSetText:         "setText",
	OpSetAttribute:    "setAttribute",
	OpRemoveAttribute: "removeAttribute",
	OpSetClass:        "setClass",
	OpSetStyle:        "setStyle",
	OpRemoveStyle:     "removeStyle",
	OpAppendChild:     "appendChild",
	OpInsertBefore:    "insertBefore",
	OpRemoveNode:      "removeNode",
	OpAddListener:     "addListener",
	OpRemoveListener:  "removeListener",
}

var opCodes = func() map[string]OpCode {
	m := make(map[string]OpCode, len(opNames))
	for c, n := range opNames {
		m[n] = c
	}
	return m
}()

// String returns the wire name of the op code.
func (c OpCode) String() string {
	if n, ok := opNames[c]; ok {
		return n
	}
	return fmt.Sprintf("OpCode(%d)", uint8(c))
}

// MarshalJSON encodes the op code as its wire name.
func (c OpCode) MarshalJSON() ([]byte, error) {
	n, ok := opNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOpCode, uint8(c))
	}
	return json.Marshal(n)
}

// UnmarshalJSON decodes an op code from its wire name.
func (c *OpCode) UnmarshalJSON(data []byte) error {
	var n string
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	code, ok := opCodes[n]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOpCode, n)
	}
	*c = code
	return nil
}

// NodeID identifies a node in the client's mirror of the page.
// IDs are assigned by the server, sequentially from 1; 0 means "no node".
type NodeID uint64

// Op is one DOM mutation. Which fields are meaningful depends on Code:
//
//	createElement    Node, Tag
//	createText       Node, Value
//	setText          Node, Value
//	setAttribute     Node, Key, Value
//	removeAttribute  Node, Key
//	setClass         Node, Value
//	setStyle         Node, Key, Value
//	removeStyle      Node, Key
//	appendChild      Node (parent), Ref (child)
//	insertBefore     Node (parent), Ref (child), Before (0 = append)
//	removeNode       Node
//	addListener      Node, Key (event type), Listener
//	removeListener   Node, Key (event type), Listener
type Op struct {
	Code     OpCode `json:"op"`
	Node     NodeID `json:"node"`
	Ref      NodeID `json:"ref,omitempty"`
	Before   NodeID `json:"before,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Key      string `json:"key,omitempty"`
	Value    string `json:"value,omitempty"`
	Listener uint32 `json:"listener,omitempty"`
}
