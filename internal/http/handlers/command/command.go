package command

import (
	"net/http"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/services"
	"waterreminder/internal/http/handlers/response"
)

// Handler runs a service that takes no input and answers 204 No Content.
type Handler[I any, R any] struct {
	service services.Service[I, R]
}

func New[I any, R any](service services.Service[I, R]) *Handler[I, R] {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler[I, R]{service: service}
}

func (h *Handler[I, R]) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	var input I
	if _, err := h.service.Run(r.Context(), input); err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.RenderNoContent(rw)
}
