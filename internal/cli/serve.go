package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazypower/loci/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	srv := server.New(a.gen, a.serverOptions())
	defer srv.Close()
	addr := a.cfg.ListenAddr()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "loci serving on %s\n", addr)
		fmt.Fprintf(os.Stderr, "  db: %s\n", a.db.Path)
		fmt.Fprintf(os.Stderr, "  thesaurus: %s\n", a.cfg.Thesaurus.Provider)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	}
	fmt.Fprintln(os.Stderr, "\nshutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(ctx)
}

func (a *app) serverOptions() server.Options {
	return server.Options{
		DB:            a.db,
		Lookup:        a.lookup,
		Version:       VersionString(),
		RatePerMinute: a.cfg.Server.RatePerMinute,
		RateBurst:     a.cfg.Server.RateBurst,
		BatchLimit:    a.cfg.Server.BatchLimit,
		Concurrency:   a.cfg.Server.Concurrency,
	}
}
