package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "studyaid/docs"
	"studyaid/internal/app"
	"studyaid/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(envFile *string) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}
			defer logger.Log.Sync()
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler, closeApp, err := app.InitApp(ctx, cfg)
			if err != nil {
				logger.Log.Error("Ошибка инициализации приложения", zap.Error(err))
				return err
			}
			defer closeApp()

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					logger.Log.Error("Ошибка запуска сервера", zap.Error(err))
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Log.Info("Остановка сервера")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Override PORT")
	return cmd
}
