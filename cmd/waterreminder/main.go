package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"waterreminder/internal/app"
	"waterreminder/internal/app/deps"
	"waterreminder/internal/app/services"
	dl "waterreminder/internal/core/domain/logging"
	"waterreminder/internal/scheduler"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	httpServer := app.InitHttpServer(deps, services)
	reminderScheduler := scheduler.New(deps.Logger, services.TriggerReminder, deps.Config.TickPeriod)
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	stopScheduler := func() {
		cancelScheduler()
		reminderScheduler.Stop()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		start(httpServer, deps)
	}()
	go func() {
		defer wg.Done()
		if err := reminderScheduler.Run(schedulerCtx); err != nil {
			panic(err)
		}
	}()

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, stopScheduler, deps, shutdownDeps)
	wg.Wait()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		signal.Stop(stopCh)
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("interval", deps.State.Interval()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(
	ctx context.Context,
	server *http.Server,
	stopScheduler func(),
	deps *deps.Deps,
	shutDownDeps func(),
) {
	ctx, cancel := context.WithTimeout(ctx, deps.Config.ShutdownTimeout)
	defer cancel()

	stopScheduler()

	// SSE streams never end on their own, close them before draining HTTP.
	deps.SseServer.Close()
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "HTTP server did not shut down cleanly.", dl.Entry("err", err))
	}

	deps.Logger.Info(ctx, "Water reminder has shut down.")
	shutDownDeps()
}
