package entrypoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jmarhee/rs-archive-subdir/internal/config"
	"github.com/jmarhee/rs-archive-subdir/internal/infra/localfs"
	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/services"
	"github.com/jmarhee/rs-archive-subdir/internal/services/archive_service"
	"github.com/jmarhee/rs-archive-subdir/internal/services/retention_service"
)

var (
	ErrArchiveStep = errors.New("ошибка создания резервной копии")
	ErrPruneStep   = errors.New("ошибка очистки устаревших архивов")
)

func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log = log.With(zap.String("run_id", uuid.New().String()))

	log.Info("запуск резервного копирования",
		zap.String("source", cfg.SourceDir),
		zap.String("dest", cfg.DestDir),
		zap.Uint64("retention_hours", uint64(cfg.RetentionPeriodHours)),
	)

	storage := localfs.New(log, cfg.DestDir)
	archiver := archive_service.New(log, cfg, storage)
	pruner := retention_service.New(log, cfg, storage)

	return run(ctx, log, archiver, pruner)
}

// очистка выполняется даже если архив не создан
func run(ctx context.Context, log *zap.Logger, archiver services.Archiver, pruner services.Pruner) error {
	var errs error

	archive, err := archiver.CreateArchive(ctx)
	if err != nil {
		log.Error("не удалось создать архив", zap.Error(err))
		errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrArchiveStep, err))
	} else {
		log.Info("резервная копия готова",
			zap.String("archive", archive.Name),
			zap.Int64("size", archive.Size),
		)
	}

	report, err := pruner.Prune(ctx)
	if err != nil {
		log.Error("очистка завершилась с ошибками", zap.Error(err))
		errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrPruneStep, err))
	}
	if report != nil {
		log.Info("очистка выполнена",
			zap.Strings("deleted", report.Deleted),
			zap.Int("retained", len(report.Retained)),
		)
	}

	return errs
}
