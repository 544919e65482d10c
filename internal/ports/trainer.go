package ports

import (
	"context"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// Trainer builds a new G2P model from a merged lexicon. The model is written
// to modelPath; when corpusPath is non-empty the aligned training corpus is
// written there as well.
type Trainer interface {
	Train(ctx context.Context, lexicon domain.Lexicon, modelPath, corpusPath string) error
}
