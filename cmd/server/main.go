package main

import (
	"flag"
	"os"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/app"
	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.Admin.Secret) {
			stdLog.Fatalf("admin secret is weak or still the default; set a strong random value before going live")
		}
	} else if isWeakSecret(cfg.Admin.Secret) {
		stdLog.Printf("warning: admin secret is weak or still the default")
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("app exited with error: %v", err)
	}
}

func isWeakSecret(secret string) bool {
	if len(secret) < 16 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
