package updatesettings

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
	service "waterreminder/internal/core/services/set_interval"
	"waterreminder/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Interval *int64 `json:"interval"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	d.DisallowUnknownFields()
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Interval, validation.NotNil),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	interval, err := reminder.NewInterval(*input.Interval)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Interval: interval})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSettingsNotPersisted):
			response.RenderError(rw, service.ErrSettingsNotPersisted.Error(), http.StatusInternalServerError)
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	settings := response.Settings{}
	settings.FromDomainType(result.Interval)
	response.Render(rw, settings, http.StatusOK)
}

func isExpectedError(err error) bool {
	return errors.Is(err, reminder.ErrIntervalTooShort) || errors.Is(err, reminder.ErrIntervalTooLong)
}
