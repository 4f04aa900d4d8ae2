package logger

import (
	"context"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/config"
)

// New builds the process logger. Logs are shipped to Loki when LOKI_URL is set.
func New(cfg config.App) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if cfg.LokiURL == "" {
		return zapConfig.Build()
	}

	lokiConfig := zaploki.Config{
		Url:          cfg.LokiURL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": cfg.AppName, "env": cfg.Environment},
	}
	return zaploki.New(context.Background(), lokiConfig).WithCreateLogger(zapConfig)
}
