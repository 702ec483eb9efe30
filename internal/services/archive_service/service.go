package archive_service

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jmarhee/rs-archive-subdir/internal/config"
	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/infra"
	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/services"
	"github.com/jmarhee/rs-archive-subdir/models"
)

const (
	ArchivePrefix = "backup-"
	ArchiveSuffix = ".tar.gz"
)

var _ services.Archiver = (*archiveService)(nil)

type archiveService struct {
	storage infra.ArchiveStorage
	logger  *zap.Logger
	cfg     *config.Config
	now     func() time.Time
}

type treeStats struct {
	entries int
	bytes   int64
}

func New(log *zap.Logger, cfg *config.Config, storage infra.ArchiveStorage) services.Archiver {
	return &archiveService{
		storage: storage,
		logger:  log,
		cfg:     cfg,
		now:     time.Now,
	}
}

func ArchiveName(unixSeconds int64) string {
	return fmt.Sprintf("%s%d%s", ArchivePrefix, unixSeconds, ArchiveSuffix)
}

func (s *archiveService) CreateArchive(ctx context.Context) (*models.Archive, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	createdAt := s.now()
	name := ArchiveName(createdAt.Unix())

	srcRoot, err := s.checkSource()
	if err != nil {
		return nil, err
	}

	pending, err := s.storage.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveCreate, err)
	}

	stats, err := s.writeTarGz(ctx, pending, srcRoot)
	if err != nil {
		if abortErr := pending.Abort(); abortErr != nil {
			s.logger.Error("не удалось удалить незавершенный архив",
				zap.String("archive", name),
				zap.Error(abortErr),
			)
		}
		return nil, err
	}

	stored, err := pending.Commit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveCommit, err)
	}

	s.logger.Info("архив создан",
		zap.String("archive", stored.Name),
		zap.String("path", stored.Path),
		zap.String("source", s.cfg.SourceDir),
		zap.Int("entries", stats.entries),
		zap.Int64("bytes", stats.bytes),
		zap.Int64("size", stored.Size),
	)

	return &models.Archive{
		Name:      stored.Name,
		Path:      stored.Path,
		Size:      stored.Size,
		Entries:   stats.entries,
		Bytes:     stats.bytes,
		CreatedAt: createdAt,
	}, nil
}

func (s *archiveService) checkSource() (string, error) {
	info, err := os.Stat(s.cfg.SourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, s.cfg.SourceDir)
		}
		return "", fmt.Errorf("%w: %v", ErrSourceStat, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrSourceNotDir, s.cfg.SourceDir)
	}

	return realPath(s.cfg.SourceDir)
}

func (s *archiveService) writeTarGz(ctx context.Context, w io.Writer, srcRoot string) (treeStats, error) {
	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)

	stats, err := s.addTree(ctx, tw, srcRoot)
	if err != nil {
		return stats, err
	}

	if err := tw.Close(); err != nil {
		return stats, fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}
	if err := gw.Close(); err != nil {
		return stats, fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}

	return stats, nil
}

type treeWriter struct {
	logger  *zap.Logger
	tw      *tar.Writer
	destDir string
	stats   treeStats
}

// корень источника в архив не пишется, только содержимое
func (s *archiveService) addTree(ctx context.Context, tw *tar.Writer, srcRoot string) (treeStats, error) {
	destDir, err := realPath(s.cfg.DestDir)
	if err != nil {
		destDir = ""
	}

	w := &treeWriter{
		logger:  s.logger,
		tw:      tw,
		destDir: destDir,
	}
	err = w.walk(ctx, srcRoot, "", []string{srcRoot})
	return w.stats, err
}

func (w *treeWriter) walk(ctx context.Context, root, prefix string, chain []string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("%w: %v", ErrWalkFailed, walkErr)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
		default:
		}

		if path == root {
			return nil
		}

		if d.IsDir() && path == w.destDir {
			w.logger.Debug("директория назначения внутри источника пропущена", zap.String("path", path))
			return filepath.SkipDir
		}
		if filepath.Dir(path) == w.destDir && isOwnOutput(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWalkFailed, err)
		}
		name := filepath.ToSlash(filepath.Join(prefix, rel))

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWalkFailed, err)
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			return w.addLink(ctx, path, name, chain)
		}
		return w.addEntry(path, name, info)
	})
}

// ссылки разыменовываются: файл пишется содержимым цели, директория обходится
func (w *treeWriter) addLink(ctx context.Context, path, name string, chain []string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.logger.Warn("битая символьная ссылка пропущена", zap.String("path", path), zap.Error(err))
		return nil
	}
	info, err := os.Stat(target)
	if err != nil {
		w.logger.Warn("битая символьная ссылка пропущена", zap.String("path", path), zap.Error(err))
		return nil
	}

	if !info.IsDir() {
		return w.addEntry(target, name, info)
	}

	if target == w.destDir {
		w.logger.Debug("ссылка на директорию назначения пропущена", zap.String("path", path))
		return nil
	}
	for _, dir := range append([]string{filepath.Dir(path)}, chain...) {
		if within(target, dir) {
			w.logger.Warn("циклическая символьная ссылка пропущена",
				zap.String("path", path),
				zap.String("target", target),
			)
			return nil
		}
	}

	if err := w.addEntry(target, name, info); err != nil {
		return err
	}

	next := append(append(make([]string, 0, len(chain)+1), chain...), target)
	return w.walk(ctx, target, name, next)
}

func (w *treeWriter) addEntry(path, name string, info fs.FileInfo) error {
	mode := info.Mode()
	if !mode.IsRegular() && !mode.IsDir() {
		w.logger.Debug("неподдерживаемый тип файла пропущен",
			zap.String("path", path),
			zap.String("mode", mode.String()),
		)
		return nil
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHeaderFailed, err)
	}
	hdr.Name = name
	if mode.IsDir() {
		hdr.Name += "/"
	}

	if err := w.tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("%w: %v", ErrHeaderFailed, err)
	}
	w.stats.entries++

	if mode.IsRegular() {
		n, err := copyFile(w.tw, path)
		w.stats.bytes += n
		if err != nil {
			return err
		}
	}

	return nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceStat, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// within: child совпадает с parent или лежит внутри него
func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func isOwnOutput(name string) bool {
	if strings.HasPrefix(name, ArchivePrefix) && strings.HasSuffix(name, ArchiveSuffix) {
		return true
	}
	return strings.HasPrefix(name, "."+ArchivePrefix) && strings.HasSuffix(name, ".tmp")
}

func copyFile(w io.Writer, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFileOpenFailed, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, fmt.Errorf("%w: %s: %v", ErrFileCopyFailed, path, err)
	}
	return n, nil
}
