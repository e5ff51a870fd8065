package server

import (
	"encoding/json"
	stderrors "errors"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// MessageType discriminates protocol messages.
type MessageType string

const (
	// Client → server.
	MsgAction MessageType = "action"
	MsgPing   MessageType = "ping"

	// Server → client.
	MsgHello MessageType = "hello"
	MsgPatch MessageType = "patch"
	MsgError MessageType = "error"
	MsgPong  MessageType = "pong"
)

// ClientMessage is a decoded client frame.
type ClientMessage struct {
	Type   MessageType `json:"type"`
	Action string      `json:"action,omitempty"`
	Args   []string    `json:"args,omitempty"`
}

// ServerMessage is any frame the server sends. Only the fields relevant to
// Type are set.
type ServerMessage struct {
	Type MessageType `json:"type"`

	// hello
	Session string `json:"session,omitempty"`
	Variant string `json:"variant,omitempty"`

	// patch
	Slot   string `json:"slot,omitempty"`
	HTML   string `json:"html,omitempty"`
	Reason string `json:"reason,omitempty"`

	// error
	Code     string `json:"code,omitempty"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message,omitempty"`
}

// DecodeClientMessage parses a client frame.
func DecodeClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.New("E140").Wrap(err)
	}
	switch msg.Type {
	case MsgAction:
		if msg.Action == "" {
			return nil, errors.New("E140").WithDetail("action message without an action name")
		}
	case MsgPing:
	default:
		return nil, errors.New("E140").WithDetail("unknown message type " + string(msg.Type))
	}
	return &msg, nil
}

// NewHello announces the session to the client.
func NewHello(sessionID string, variant viewstate.Variant) ServerMessage {
	return ServerMessage{Type: MsgHello, Session: sessionID, Variant: string(variant)}
}

// NewPatch replaces the element with id slot.
func NewPatch(slot, html string, reason viewstate.Reason) ServerMessage {
	return ServerMessage{Type: MsgPatch, Slot: slot, HTML: html, Reason: string(reason)}
}

// NewErrorMessage converts err into a client error frame. Validation errors
// from the controller map to E142.
func NewErrorMessage(err error) ServerMessage {
	se := toShowcaseError(err)
	msg := se.Message
	if se.Detail != "" {
		msg += ": " + se.Detail
	}
	return ServerMessage{
		Type:     MsgError,
		Code:     se.Code,
		Category: string(se.Category),
		Message:  msg,
	}
}

func toShowcaseError(err error) *errors.ShowcaseError {
	var se *errors.ShowcaseError
	if stderrors.As(err, &se) {
		return se
	}
	var ve *viewstate.ValidationError
	if stderrors.As(err, &ve) {
		return errors.New("E142").WithDetail(ve.Error()).Wrap(err)
	}
	if stderrors.Is(err, viewstate.ErrClosed) || stderrors.Is(err, ErrSessionClosed) {
		return errors.Newf(errors.CategoryProtocol, "session closed").Wrap(err)
	}
	return errors.Newf(errors.CategoryProtocol, "%s", err.Error())
}
