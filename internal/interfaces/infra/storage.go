package infra

import (
	"context"
	"io"

	"github.com/jmarhee/rs-archive-subdir/models"
)

type PendingArchive interface {
	io.Writer
	Commit() (*models.StoredFile, error)
	Abort() error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=ArchiveStorage --output=../../../mocks
type ArchiveStorage interface {
	Root() string
	Create(ctx context.Context, name string) (PendingArchive, error)
	List(ctx context.Context) ([]string, error)
	Stat(ctx context.Context, name string) (*models.StoredFile, error)
	Remove(ctx context.Context, name string) error
}
