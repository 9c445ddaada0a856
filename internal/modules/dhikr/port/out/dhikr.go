package out

import (
	"context"

	"mihrab/internal/modules/dhikr/domain"
)

type CatalogSource interface {
	Catalog() (domain.Catalog, error)
}

type ProgressStore interface {
	Load(ctx context.Context) domain.Snapshot
	Save(ctx context.Context, progress domain.Progress) error
}
