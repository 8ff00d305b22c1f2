package services

import (
	"waterreminder/internal/app/deps"
	"waterreminder/internal/core/services"
	getinterval "waterreminder/internal/core/services/get_interval"
	getstatus "waterreminder/internal/core/services/get_status"
	hidewindow "waterreminder/internal/core/services/hide_window"
	setinterval "waterreminder/internal/core/services/set_interval"
	showreminder "waterreminder/internal/core/services/show_reminder"
	showwindow "waterreminder/internal/core/services/show_window"
	triggerreminder "waterreminder/internal/core/services/trigger_reminder"
)

type Services struct {
	GetInterval services.Service[getinterval.Input, getinterval.Result]
	SetInterval services.Service[setinterval.Input, setinterval.Result]
	GetStatus   services.Service[getstatus.Input, getstatus.Result]

	ShowWindow services.Service[showwindow.Input, showwindow.Result]
	HideWindow services.Service[hidewindow.Input, hidewindow.Result]

	ShowReminder    services.Service[showreminder.Input, showreminder.Result]
	TriggerReminder services.Service[triggerreminder.Input, triggerreminder.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.GetInterval = getinterval.New(deps.State)
	s.SetInterval = setinterval.New(
		deps.Logger,
		deps.State,
		deps.SettingsRepository,
	)
	s.GetStatus = getstatus.New(deps.State, deps.Now)

	s.ShowWindow = showwindow.New(deps.Logger, deps.Presenter)
	s.HideWindow = hidewindow.New(deps.Logger, deps.Presenter)

	s.ShowReminder = showreminder.New(
		deps.Logger,
		deps.Presenter,
		deps.Notifier,
	)
	s.TriggerReminder = triggerreminder.New(
		deps.Logger,
		deps.State,
		s.ShowReminder,
		deps.Now,
	)

	return s
}
