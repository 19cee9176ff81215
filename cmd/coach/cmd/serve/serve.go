package serve

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"interview-coach/cmd/coach/cmd/shared"
	"interview-coach/internal/app"
)

var (
	host            string
	port            string
	shutdownTimeout time.Duration
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen address (overrides config)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides config)")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "grace period for in-flight turns")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interview HTTP API",
	Long: `Run the interview HTTP API.

- Versioned routes live under /api/v1, the browser frontend routes at the root
- Swagger UI is served at /swagger/index.html and Prometheus metrics at /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig()
		if err != nil {
			return err
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, cleanup, err := app.InitializeApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		application.Logger.Info("configuration loaded",
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("llm_model", cfg.LLM.Model),
			zap.String("database", cfg.Database.Driver),
			zap.String("audio_backend", cfg.Audio.Backend),
			zap.String("lock_backend", cfg.Lock.Backend),
		)

		errCh := make(chan error, 1)
		go func() {
			errCh <- application.Server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return application.Server.Shutdown(shutdownCtx)
	},
}
