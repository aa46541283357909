package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewpaige1/flashnotes/config"
	"github.com/andrewpaige1/flashnotes/handlers"
	"github.com/andrewpaige1/flashnotes/store"
	"github.com/andrewpaige1/flashnotes/synth"
	"github.com/andrewpaige1/flashnotes/web"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the flashnotes API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), opts.cfg)
		},
	}

	cmd.Flags().Int("port", 8080, "port to listen on")
	cmd.Flags().String("db-url", "sqlite://flashnotes.db", "database URL (postgres:// or sqlite://)")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config) error {
	db, err := config.ConnectServer(cfg)
	if err != nil {
		return err
	}

	h := &handlers.DBHandler{
		Store:     store.NewFlashcardStore(db),
		Synth:     synth.New(),
		ListLimit: cfg.ListLimit,
	}
	router := handlers.NewRouter(h, web.Assets(), handlers.RouterOptions{
		CORSOrigins:       cfg.CORSOrigins,
		GenerateRateLimit: cfg.GenerateRateLimit,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
