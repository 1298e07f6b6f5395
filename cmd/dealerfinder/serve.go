package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	dfhttp "github.com/ammanabbasi/used-car-dealer-finder/http"
)

// Run starts the web UI and serves until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv, err := dfhttp.NewServer(deps.Searcher,
		dfhttp.WithAddr(c.Addr),
		dfhttp.WithLogger(deps.Logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
