package out

import (
	"context"

	"mihrab/internal/modules/tasbih/domain"
)

type CounterStore interface {
	Load(ctx context.Context, phrase domain.Phrase) domain.Counter
	Save(ctx context.Context, phrase domain.Phrase, counter domain.Counter) error
}
