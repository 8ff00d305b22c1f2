package status

import (
	"net/http"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/services"
	service "waterreminder/internal/core/services/get_status"
	"waterreminder/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, response.Status{
		Interval:  result.Interval.Seconds(),
		LastShown: result.LastShown.UTC(),
		NextAt:    result.NextAt.UTC(),
		NextIn:    result.NextIn,
		Overdue:   result.Overdue,
		Presets:   response.NewPresets(result.Presets),
	}, http.StatusOK)
}
