package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"adminpanel/database"
	"adminpanel/handlers"
	"adminpanel/logger"
	"adminpanel/proxy"
	"adminpanel/scheduler"
	"adminpanel/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		logger.Info("🚀 Admin Panel Console Starting")
		logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		a, err := newApp(ctx, cfg, db)
		if err != nil {
			return err
		}
		defer a.close()

		devProxy, err := proxy.New(proxy.Options{
			Target:      cfg.BackendURL,
			Prefix:      cfg.ProxyPrefix,
			StripPrefix: cfg.ProxyStripPrefix,
		})
		if err != nil {
			return err
		}

		// 만료 세션 정리와 오래된 활동 로그 삭제
		schedCfg := scheduler.Config{
			Interval:  time.Hour,
			Retention: time.Duration(cfg.ActivityRetentionDays) * 24 * time.Hour,
			Activity:  a.activity,
		}
		if a.memStore != nil {
			schedCfg.Sessions = a.memStore
		}
		scheduler.Start(ctx, schedCfg)

		// 선택 목록 미리 불러오기. 실패한 목록은 다음 요청에서 다시 시도한다.
		go func() {
			for kind, err := range a.pickers.Warm(ctx) {
				logger.WithFields(map[string]interface{}{
					"kind":  kind,
					"error": err.Error(),
				}).Warn("Picker warm-up failed")
			}
		}()

		router := handlers.NewRouter(handlers.Dependencies{
			Stats:          a.stats,
			Activity:       a.activity,
			Pickers:        a.pickers,
			Users:          a.api.Users,
			Roles:          a.api.Roles,
			Editor:         a.editor,
			Uploads:        a.api.Uploads,
			Maintenance:    services.NewMaintenanceView(a.api.Maintenance, a.pickers.Dispensers),
			EditorTTL:      cfg.EditorTTL,
			UploadMaxBytes: cfg.UploadMaxBytes,
			Proxy:          devProxy,
			ProxyPrefix:    cfg.ProxyPrefix,
			WebDir:         cfg.WebDir,
			AllowedOrigins: cfg.CORSOrigins,
		})

		server := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server listening on %s", cfg.HTTPAddr)
			logger.Info("Proxy %s -> %s", cfg.ProxyPrefix, cfg.BackendURL)
			logger.Info("Backend API base: %s", cfg.APIBaseURL())
			logger.Info("Swagger UI: http://localhost%s/swagger/index.html", cfg.HTTPAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown: %v", err)
			return err
		}
		logger.Info("Server exited")
		return nil
	},
}
