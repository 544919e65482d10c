package cli

import (
	"github.com/spf13/cobra"

	"github.com/rhasspy/phonetisaurus-go/internal/infra/g2pexec"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/logger"
	"github.com/rhasspy/phonetisaurus-go/internal/usecase"
)

func trainCmd() *cobra.Command {
	var shared sharedFlags
	var corpus string

	c := &cobra.Command{
		Use:   "train [flags] LEXICON...",
		Short: "Train a new model from one or more lexicons (phonetic dictionaries)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDefaults()
			if err != nil {
				return err
			}

			model, err := resolveModel(shared.model, cfg)
			if err != nil {
				return err
			}

			env, err := toolEnv(shared.machine)
			if err != nil {
				return err
			}

			loader, err := lexiconLoader(shared, cfg)
			if err != nil {
				return err
			}

			trainer := g2pexec.NewTrainer(env, g2pexec.WithTrainerLogger(logger.L()))
			uc := usecase.NewTrain(loader, trainer, usecase.WithTrainLogger(logger.L()))

			return uc.Execute(cmd.Context(), usecase.TrainRequest{
				LexiconPaths: args,
				ModelPath:    model,
				CorpusPath:   corpus,
			})
		},
	}

	addSharedFlags(c, &shared)
	c.Flags().StringVar(&corpus, "corpus", "", "Path to write the aligned g2p training corpus (optional)")
	return c
}
