package ports

import (
	"context"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// Predictor guesses up to nbest pronunciations per word using a trained
// model.
type Predictor interface {
	Predict(ctx context.Context, words []string, modelPath string, nbest int) ([]domain.Guess, error)
}
