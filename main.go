package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"adminpanel/config"
	_ "adminpanel/docs" // Swagger 문서
	"adminpanel/logger"
)

var version = "1.0.0"

// @title Admin Panel Console API
// @version 1.0
// @description 사용자, 역할 권한, 사업장, 유지보수 관리를 위한 콘솔 서버
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

var (
	flagAddr          string
	flagBackend       string
	flagAuthorization string
)

var rootCmd = &cobra.Command{
	Use:   "adminpanel",
	Short: "Admin panel console server and CLI",
	Long: `adminpanel serves the admin dashboard, proxies /api to the backend and
runs the dashboard logic (stat cards, pickers, user and role forms, the
role permission editor) behind /console.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "backend base URL (overrides BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&flagAuthorization, "authorization", "", "Authorization header forwarded to the backend")

	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides HTTP_ADDR)")

	rolesCmd.AddCommand(rolesTreeCmd)
	rootCmd.AddCommand(serveCmd, statsCmd, rolesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig .env 와 환경 변수, 플래그 순서로 설정을 읽고 로거를 초기화한다.
func loadConfig(withFileLog bool) (config.AppConfig, error) {
	// .env 가 없으면 환경 변수만 사용
	_ = godotenv.Load()

	cfg := config.Load()
	if flagAddr != "" {
		cfg.HTTPAddr = flagAddr
	}
	if flagBackend != "" {
		cfg.BackendURL = flagBackend
	}

	logDir := cfg.LogDir
	if !withFileLog {
		logDir = ""
	}
	if err := logger.Initialize(logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		LogDir:     logDir,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxAge:     cfg.LogMaxAgeDays,
		MaxBackups: 5,
		UseColor:   true,
	}); err != nil {
		return cfg, fmt.Errorf("initialize logger: %w", err)
	}
	return cfg, nil
}
