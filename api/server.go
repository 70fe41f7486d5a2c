package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/design-toolkit/api/console"
)

func (app *Application) Serve(mux *http.ServeMux) error {
	srv := &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	shutdownErr := make(chan error)

	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		s := <-shutdown
		console.LogStatus("warning", "shutting down server with signal "+s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownErr <- err
			return
		}

		console.LogStatus("info", "waiting for in-flight requests to finish...")
		shutdownErr <- nil
	}()

	console.LogStatus("success", "starting server on port "+app.Config.HTTPPort)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownErr
	if err != nil {
		return err
	}

	console.LogStatus("info", "stopped server "+app.Config.HTTPPort)

	return nil
}
