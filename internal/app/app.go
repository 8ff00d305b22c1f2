package app

import (
	"net/http"
	"waterreminder/internal/app/deps"
	"waterreminder/internal/app/services"
	"waterreminder/internal/http/handlers/command"
	"waterreminder/internal/http/handlers/events"
	getsettings "waterreminder/internal/http/handlers/settings/get_settings"
	updatesettings "waterreminder/internal/http/handlers/settings/update_settings"
	"waterreminder/internal/http/handlers/status"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    deps.Config.Address(),
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	settingsRouter := chi.NewRouter()
	settingsRouter.Method(http.MethodGet, "/", getsettings.New(s.GetInterval))
	settingsRouter.Method(http.MethodPut, "/", updatesettings.New(s.SetInterval))

	windowRouter := chi.NewRouter()
	windowRouter.Method(http.MethodPost, "/show", command.New(s.ShowWindow))
	windowRouter.Method(http.MethodPost, "/hide", command.New(s.HideWindow))

	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/show", command.New(s.ShowReminder))

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/settings", settingsRouter)
	router.Mount("/window", windowRouter)
	router.Mount("/reminder", reminderRouter)
	router.Method(http.MethodGet, "/status", status.New(s.GetStatus))
	router.Method(
		http.MethodGet,
		"/events",
		events.New(deps.Logger, deps.SseServer, deps.Config.SseStreamID),
	)

	return router
}
