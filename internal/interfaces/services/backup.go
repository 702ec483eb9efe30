package services

import (
	"context"

	"github.com/jmarhee/rs-archive-subdir/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=Archiver --output=../../../mocks
type Archiver interface {
	CreateArchive(ctx context.Context) (*models.Archive, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.2 --name=Pruner --output=../../../mocks
type Pruner interface {
	Prune(ctx context.Context) (*models.PruneReport, error)
}
