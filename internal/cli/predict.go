package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/g2pexec"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/logger"
	"github.com/rhasspy/phonetisaurus-go/internal/ui/tui"
	"github.com/rhasspy/phonetisaurus-go/internal/usecase"
)

func predictCmd() *cobra.Command {
	var shared sharedFlags
	var lexicons []string
	var nbest int
	var wordSep string
	var phonemeSep string
	var emptyLine bool
	var format string
	var interactive bool

	c := &cobra.Command{
		Use:   "predict [flags] [WORD...]",
		Short: "Predict one or more pronunciations from words",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDefaults()
			if err != nil {
				return err
			}

			model, err := resolveModel(shared.model, cfg)
			if err != nil {
				return err
			}

			casing, err := resolveCasing(shared.casing, cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("nbest") {
				nbest = cfg.NBest
			}
			if !cmd.Flags().Changed("word-separator") {
				wordSep = cfg.Output.WordSeparator
			}
			if !cmd.Flags().Changed("phoneme-separator") {
				phonemeSep = cfg.Output.PhonemeSeparator
			}

			env, err := toolEnv(shared.machine)
			if err != nil {
				return err
			}

			loader, err := lexiconLoader(shared, cfg)
			if err != nil {
				return err
			}

			predictor := g2pexec.NewPredictor(env, g2pexec.WithPredictorLogger(logger.L()))
			uc := usecase.NewPredict(loader, predictor, usecase.WithPredictLogger(logger.L()))

			req := usecase.PredictRequest{
				ModelPath:    model,
				LexiconPaths: lexicons,
				NBest:        nbest,
				Casing:       casing,
			}

			printer, err := newGuessPrinter(cmd.OutOrStdout(), format, wordSep, phonemeSep)
			if err != nil {
				return err
			}

			if interactive {
				return tui.Run(tui.Deps{
					Guess: func(word string) ([]domain.Guess, error) {
						r := req
						r.Words = []string{word}
						return uc.Execute(cmd.Context(), r)
					},
					PhonemeSeparator: phonemeSep,
					Logger:           logger.L(),
				})
			}

			run := func(words []string) error {
				r := req
				r.Words = words
				guesses, err := uc.Execute(cmd.Context(), r)
				if err != nil {
					return err
				}
				return printer.Print(guesses)
			}

			if len(args) > 0 {
				return run(args)
			}

			// No words on the command line: read them from stdin.
			if isatty.IsTerminal(os.Stdin.Fd()) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Reading words from stdin. CTRL+D to end.")
			}

			if emptyLine {
				return forEachBatch(cmd.InOrStdin(), run)
			}

			words, err := readWords(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return run(words)
		},
	}

	addSharedFlags(c, &shared)
	c.Flags().StringArrayVar(&lexicons, "lexicon", nil, "Optional lexicon(s) to consult before guessing pronunciation(s)")
	c.Flags().IntVar(&nbest, "nbest", 1, "Number of pronunciations to predict per word")
	c.Flags().StringVar(&wordSep, "word-separator", " ", "Separator between words and phonemes in output")
	c.Flags().StringVar(&phonemeSep, "phoneme-separator", " ", "Separator between phonemes in output")
	c.Flags().BoolVar(&emptyLine, "empty-line", false, "Predict pronunciations of words so far every time a blank line is read")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&interactive, "interactive", false, "Look up words interactively")
	return c
}
