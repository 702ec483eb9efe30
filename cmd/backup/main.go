package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jmarhee/rs-archive-subdir/internal/config"
	"github.com/jmarhee/rs-archive-subdir/internal/entrypoint"
	"github.com/jmarhee/rs-archive-subdir/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		configFatal(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		configFatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = entrypoint.Run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("резервное копирование завершилось с ошибкой", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}

	log.Info("резервное копирование завершено")
	_ = log.Sync()
}

// уровень из конфигурации еще неизвестен, пишем продакшн-логгером в stderr
func configFatal(err error) {
	log := logger.Fallback()
	log.Error("ошибка конфигурации", zap.Error(err))
	_ = log.Sync()
	os.Exit(1)
}
