package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Aashish23092/id-verification/handler"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP verification API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	gin.SetMode(gin.ReleaseMode)

	limits := a.cfg.Upload
	router := handler.NewRouter(handler.RouterDeps{
		Aadhaar:            handler.NewAadhaarHandler(a.aadhaar, limits, a.logger),
		PAN:                handler.NewPANHandler(a.pan, limits, a.logger),
		Gatherer:           a.registry,
		Logger:             a.logger,
		MaxMultipartMemory: limits.MaxMultipartMemory,
	})

	srv := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting identity verification service", "port", a.cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "timeout", a.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
