package ports

import "github.com/rhasspy/phonetisaurus-go/internal/domain"

// LexiconLoader loads a lexicon file from a source (e.g., filesystem).
// When into is non-nil, entries are merged into it and the same map is
// returned.
type LexiconLoader interface {
	LoadLexicon(path string, into domain.Lexicon) (domain.Lexicon, error)
}
