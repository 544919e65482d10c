package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/ports"
)

// Predict looks words up in optional lexicons first and only sends the
// misses to the external tool.
type Predict struct {
	lexicons ports.LexiconLoader
	guesser  ports.Predictor
	log      *slog.Logger

	// Loaded lexicons are cached so batched calls (stdin --empty-line,
	// interactive mode) parse the files once.
	mu        sync.Mutex
	cached    domain.Lexicon
	cachedKey string
}

type PredictOption func(*Predict)

func WithPredictLogger(log *slog.Logger) PredictOption {
	return func(uc *Predict) { uc.log = log }
}

func NewPredict(lexicons ports.LexiconLoader, guesser ports.Predictor, opts ...PredictOption) *Predict {
	uc := &Predict{
		lexicons: lexicons,
		guesser:  guesser,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type PredictRequest struct {
	Words        []string
	ModelPath    string
	LexiconPaths []string
	NBest        int
	Casing       domain.Casing
}

// Execute returns pronunciations for the requested words: lexicon hits
// first (in input order, capped at NBest), then guesses from the model in
// the tool's output order.
func (uc *Predict) Execute(ctx context.Context, req PredictRequest) ([]domain.Guess, error) {
	lexicon, err := uc.loadLexicons(ctx, req.LexiconPaths)
	if err != nil {
		return nil, err
	}

	nbest := req.NBest
	if nbest < 1 {
		nbest = 1
	}

	var out []domain.Guess
	var toGuess []string

	for _, word := range req.Words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		word = req.Casing.Apply(word)

		if prons := lexicon.Lookup(word, nbest); prons != nil {
			for _, pron := range prons {
				out = append(out, domain.Guess{Word: word, Phonemes: pron})
			}
			continue
		}
		toGuess = append(toGuess, word)
	}

	if len(toGuess) > 0 {
		uc.log.Debug("predict.guessing", "words", len(toGuess), "total", len(req.Words))

		guesses, err := uc.guesser.Predict(ctx, toGuess, req.ModelPath, nbest)
		if err != nil {
			return nil, err
		}
		out = append(out, guesses...)
	}

	return out, nil
}

// loadLexicons loads all lexicon files concurrently, then merges them in
// argument order so duplicate words keep a deterministic pronunciation
// order.
func (uc *Predict) loadLexicons(ctx context.Context, paths []string) (domain.Lexicon, error) {
	key := strings.Join(paths, "\x00")

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cached != nil && uc.cachedKey == key {
		return uc.cached, nil
	}

	merged, err := loadLexicons(ctx, uc.lexicons, uc.log, paths)
	if err != nil {
		return nil, err
	}

	uc.cached = merged
	uc.cachedKey = key
	return merged, nil
}

func loadLexicons(ctx context.Context, loader ports.LexiconLoader, log *slog.Logger, paths []string) (domain.Lexicon, error) {
	merged := domain.Lexicon{}
	if len(paths) == 0 {
		return merged, nil
	}

	results := make([]domain.Lexicon, len(paths))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			lex, err := loader.LoadLexicon(path, nil)
			if err != nil {
				return err
			}
			results[i] = lex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, lex := range results {
		log.Debug("lexicon.loaded", "path", paths[i], "words", len(lex))
		merged.MergeFrom(lex)
	}
	return merged, nil
}
