package tui

import (
	"log/slog"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// Deps are the collaborators the interactive prompt needs. Guess resolves
// one word to its pronunciations (lexicon lookup or model prediction).
type Deps struct {
	Guess            func(word string) ([]domain.Guess, error)
	PhonemeSeparator string
	Logger           *slog.Logger
}
