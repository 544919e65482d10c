package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/ports"
)

// Train merges one or more lexicons and hands them to the external
// trainer, which writes the model (and optionally the aligned corpus).
type Train struct {
	lexicons ports.LexiconLoader
	trainer  ports.Trainer
	log      *slog.Logger
}

type TrainOption func(*Train)

func WithTrainLogger(log *slog.Logger) TrainOption {
	return func(uc *Train) { uc.log = log }
}

func NewTrain(lexicons ports.LexiconLoader, trainer ports.Trainer, opts ...TrainOption) *Train {
	uc := &Train{
		lexicons: lexicons,
		trainer:  trainer,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type TrainRequest struct {
	LexiconPaths []string
	ModelPath    string
	CorpusPath   string
}

func (uc *Train) Execute(ctx context.Context, req TrainRequest) error {
	lexicon, err := loadLexicons(ctx, uc.lexicons, uc.log, req.LexiconPaths)
	if err != nil {
		return err
	}

	if len(lexicon) == 0 {
		return &domain.OpError{
			Op:   "usecase.train",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("no lexicon entries to train on"),
		}
	}

	uc.log.Debug("train.started", "words", len(lexicon), "model", req.ModelPath)
	start := time.Now()

	if err := uc.trainer.Train(ctx, lexicon, req.ModelPath, req.CorpusPath); err != nil {
		return err
	}

	uc.log.Debug("train.finished", "duration", time.Since(start).String())
	return nil
}
