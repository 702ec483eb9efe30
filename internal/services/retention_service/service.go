package retention_service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jmarhee/rs-archive-subdir/internal/config"
	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/infra"
	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/services"
	"github.com/jmarhee/rs-archive-subdir/models"
)

const ArchiveExt = ".gz"

var _ services.Pruner = (*retentionService)(nil)

type retentionService struct {
	storage infra.ArchiveStorage
	logger  *zap.Logger
	cfg     *config.Config
	now     func() time.Time
}

func New(log *zap.Logger, cfg *config.Config, storage infra.ArchiveStorage) services.Pruner {
	return &retentionService{
		storage: storage,
		logger:  log,
		cfg:     cfg,
		now:     time.Now,
	}
}

// ошибка по одному файлу не останавливает очистку
func (s *retentionService) Prune(ctx context.Context) (*models.PruneReport, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	retention := s.cfg.RetentionSeconds()
	now := s.now().Unix()

	names, err := s.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListFailed, err)
	}

	report := &models.PruneReport{
		Deleted:  make([]string, 0),
		Retained: make([]string, 0),
	}
	var errs error

	for _, name := range names {
		if ctx.Err() != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err()))
			break
		}

		if !HasArchiveExt(name) {
			report.Skipped++
			continue
		}

		file, err := s.storage.Stat(ctx, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Debug("архив исчез до проверки", zap.String("archive", name))
				continue
			}
			err = fmt.Errorf("%w: %s: %v", ErrStatFailed, name, err)
			s.logger.Error("ошибка проверки архива", zap.String("archive", name), zap.Error(err))
			report.Errors = append(report.Errors, err.Error())
			errs = multierr.Append(errs, err)
			continue
		}

		if !file.Regular {
			report.Skipped++
			continue
		}
		report.Scanned++

		modified := file.ModTime.Unix()
		if modified > now {
			s.logger.Warn("время изменения архива в будущем, архив сохранен",
				zap.String("archive", name),
				zap.Int64("modified", modified),
				zap.Int64("now", now),
			)
			report.Retained = append(report.Retained, name)
			continue
		}

		if !Expired(now, modified, retention) {
			s.logger.Debug("архив сохранен",
				zap.String("archive", name),
				zap.Int64("age_seconds", now-modified),
			)
			report.Retained = append(report.Retained, name)
			continue
		}

		if err := s.storage.Remove(ctx, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Debug("архив уже удален", zap.String("archive", name))
				continue
			}
			err = fmt.Errorf("%w: %s: %v", ErrRemoveFailed, name, err)
			s.logger.Error("ошибка удаления архива", zap.String("archive", name), zap.Error(err))
			report.Errors = append(report.Errors, err.Error())
			errs = multierr.Append(errs, err)
			continue
		}

		s.logger.Info("устаревший архив удален",
			zap.String("archive", name),
			zap.Int64("age_seconds", now-modified),
		)
		report.Deleted = append(report.Deleted, name)
	}

	s.logger.Info("очистка архивов завершена",
		zap.String("dest", s.storage.Root()),
		zap.Uint64("retention_hours", uint64(s.cfg.RetentionPeriodHours)),
		zap.Int("scanned", report.Scanned),
		zap.Int("deleted", len(report.Deleted)),
		zap.Int("retained", len(report.Retained)),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", len(report.Errors)),
	)

	return report, errs
}

// ".gz" без имени считается скрытым файлом без расширения
func HasArchiveExt(name string) bool {
	ext := filepath.Ext(name)
	return ext == ArchiveExt && ext != name
}

// строго больше: архив ровно на границе сохраняется
func Expired(now, modified, retentionSeconds int64) bool {
	if modified > now {
		return false
	}
	return now-modified > retentionSeconds
}
