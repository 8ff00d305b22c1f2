package presentation

import (
	"context"
	"encoding/json"
	"errors"
	e "waterreminder/internal/core/domain/errors"

	"github.com/r3labs/sse/v2"
)

const DefaultStreamID = "main"

const (
	EventShowReminder = "show-reminder"
	EventShowWindow   = "show-window"
	EventHideWindow   = "hide-window"
)

var ErrNotConnected = errors.New("presentation layer is not connected")

type showWindowPayload struct {
	Focus       bool `json:"focus"`
	AlwaysOnTop bool `json:"always_on_top"`
}

// SSE talks to the presentation layer through a server-sent events stream.
// It implements both reminder.Presenter and reminder.Notifier.
type SSE struct {
	sseServer *sse.Server
	streamID  string
}

func NewSSE(sseServer *sse.Server, streamID string) *SSE {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if streamID == "" {
		streamID = DefaultStreamID
	}
	return &SSE{sseServer: sseServer, streamID: streamID}
}

func (p *SSE) StreamID() string {
	return p.streamID
}

func (p *SSE) Show(ctx context.Context) error {
	return p.publish(EventShowWindow, showWindowPayload{Focus: true, AlwaysOnTop: true})
}

func (p *SSE) Hide(ctx context.Context) error {
	return p.publish(EventHideWindow, struct{}{})
}

// NotifyShowReminder sends an empty object: events without data are never
// delivered by the SSE server.
func (p *SSE) NotifyShowReminder(ctx context.Context) error {
	return p.publish(EventShowReminder, struct{}{})
}

func (p *SSE) publish(event string, payload interface{}) error {
	if !p.sseServer.StreamExists(p.streamID) {
		return ErrNotConnected
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	p.sseServer.Publish(p.streamID, &sse.Event{
		Event: []byte(event),
		Data:  data,
	})
	return nil
}
