package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/infra"
	"github.com/jmarhee/rs-archive-subdir/models"
)

const tempPrefix = ".backup-"
const tempSuffix = ".tmp"

var _ infra.ArchiveStorage = (*localFS)(nil)

type localFS struct {
	logger *zap.Logger
	root   string
}

func New(log *zap.Logger, root string) infra.ArchiveStorage {
	return &localFS{
		logger: log,
		root:   root,
	}
}

func (s *localFS) Root() string {
	return s.root
}

// временное имя не оканчивается на .gz, очистка его не трогает
func (s *localFS) Create(ctx context.Context, name string) (infra.PendingArchive, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if err := validName(name); err != nil {
		return nil, err
	}

	tmpPath := filepath.Join(s.root, tempPrefix+uuid.New().String()+tempSuffix)
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	s.logger.Debug("временный файл архива создан",
		zap.String("tmp_path", tmpPath),
		zap.String("name", name),
	)

	return &pendingArchive{
		logger:    s.logger,
		file:      f,
		tmpPath:   tmpPath,
		finalPath: filepath.Join(s.root, name),
		name:      name,
	}, nil
}

// без рекурсии
func (s *localFS) List(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDirFailed, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}

func (s *localFS) Stat(ctx context.Context, name string) (*models.StoredFile, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if err := validName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(s.root, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrStatFailed, err)
	}

	return &models.StoredFile{
		Name:    name,
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Regular: info.Mode().IsRegular(),
	}, nil
}

func (s *localFS) Remove(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrContextDone, ctx.Err())
	default:
	}

	if err := validName(name); err != nil {
		return err
	}

	path := filepath.Join(s.root, name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return fmt.Errorf("%w: %v", ErrRemoveFailed, err)
	}

	s.logger.Debug("файл удален", zap.String("path", path))
	return nil
}

func validName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %s", ErrNameInvalid, name)
	}
	return nil
}

type pendingArchive struct {
	logger    *zap.Logger
	file      *os.File
	tmpPath   string
	finalPath string
	name      string
	done      bool
}

func (p *pendingArchive) Write(b []byte) (int, error) {
	if p.done {
		return 0, ErrAlreadyClosed
	}
	n, err := p.file.Write(b)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return n, nil
}

// финальное имя не перезаписывается
func (p *pendingArchive) Commit() (*models.StoredFile, error) {
	if p.done {
		return nil, ErrAlreadyClosed
	}
	p.done = true

	if err := p.file.Sync(); err != nil {
		p.discard()
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	info, err := p.file.Stat()
	if err != nil {
		p.discard()
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	if err := p.file.Close(); err != nil {
		p.removeTemp()
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	if _, err := os.Lstat(p.finalPath); err == nil {
		p.removeTemp()
		return nil, fmt.Errorf("%w: %s", ErrFileExists, p.name)
	}

	if err := os.Rename(p.tmpPath, p.finalPath); err != nil {
		p.removeTemp()
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	return &models.StoredFile{
		Name:    p.name,
		Path:    p.finalPath,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Regular: info.Mode().IsRegular(),
	}, nil
}

func (p *pendingArchive) Abort() error {
	if p.done {
		return nil
	}
	p.done = true
	return p.discard()
}

func (p *pendingArchive) discard() error {
	closeErr := p.file.Close()
	if err := p.removeTemp(); err != nil {
		return err
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		p.logger.Warn("не удалось закрыть временный файл", zap.String("tmp_path", p.tmpPath), zap.Error(closeErr))
	}
	return nil
}

func (p *pendingArchive) removeTemp() error {
	if err := os.Remove(p.tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.logger.Error("не удалось удалить временный файл",
			zap.String("tmp_path", p.tmpPath),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrRemoveFailed, err)
	}
	return nil
}
