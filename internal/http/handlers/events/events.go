package events

import (
	"net/http"
	"sync"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

// Handler streams presentation events (show-reminder, show-window,
// hide-window) to the UI. Several UIs may share one stream; it is removed
// when the last of them disconnects.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	streamID  string

	lock        sync.Mutex
	subscribers map[string]int
}

func New(log logging.Logger, sseServer *sse.Server, streamID string) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{
		log:         log,
		sseServer:   sseServer,
		streamID:    streamID,
		subscribers: make(map[string]int),
	}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	streamID := r.URL.Query().Get("stream")
	if streamID != h.streamID {
		response.RenderError(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	count := h.connect(streamID)
	h.log.Info(
		r.Context(),
		"Presentation layer connected.",
		logging.Entry("streamID", streamID),
		logging.Entry("subscribers", count),
	)

	// Blocks until the UI disconnects or the SSE server is closed.
	h.sseServer.ServeHTTP(rw, r)

	count = h.disconnect(streamID)
	h.log.Info(
		r.Context(),
		"Presentation layer disconnected.",
		logging.Entry("streamID", streamID),
		logging.Entry("subscribers", count),
	)
}

func (h *Handler) connect(streamID string) int {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.subscribers[streamID] == 0 {
		h.sseServer.CreateStream(streamID)
	}
	h.subscribers[streamID]++
	return h.subscribers[streamID]
}

func (h *Handler) disconnect(streamID string) int {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.subscribers[streamID]--
	if h.subscribers[streamID] > 0 {
		return h.subscribers[streamID]
	}
	delete(h.subscribers, streamID)
	h.sseServer.RemoveStream(streamID)
	return 0
}

// Subscribers returns the number of UIs connected to streamID.
func (h *Handler) Subscribers(streamID string) int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.subscribers[streamID]
}
