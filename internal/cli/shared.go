package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/config"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/lexfile"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/logger"
	"github.com/rhasspy/phonetisaurus-go/internal/infra/platform"
)

// sharedFlags are accepted by both train and predict.
type sharedFlags struct {
	model      string
	casing     string
	machine    string
	lexWordSep string
	lexPhonSep string
}

func addSharedFlags(c *cobra.Command, f *sharedFlags) {
	c.Flags().StringVar(&f.model, "model", "", "Path to g2p model (required unless set in phonetisaurus.yaml)")
	c.Flags().StringVar(&f.casing, "casing", "", "Case transformation to apply to words: lower|upper|ignore")
	c.Flags().StringVar(&f.machine, "machine", "", "Override detected machine type: x86_64|armv6l|armv7l|armv8")
	c.Flags().StringVar(&f.lexWordSep, "lexicon-word-separator", "", `Separator regex between words and pronunciations in lexicons (default \s+)`)
	c.Flags().StringVar(&f.lexPhonSep, "lexicon-phoneme-separator", "", `Separator regex between phonemes in each lexicon entry (default \s+)`)
}

// loadDefaults reads phonetisaurus.yaml from the working directory.
func loadDefaults() (domain.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.Load(wd)
}

// resolveModel applies flag > config precedence for the model path.
func resolveModel(flagValue string, cfg domain.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Model != "" {
		return cfg.Model, nil
	}
	return "", &domain.OpError{
		Op:   "cli.model",
		Kind: domain.KindInvalidConfig,
		Err:  errors.New("--model is required (or set model in phonetisaurus.yaml)"),
	}
}

func resolveCasing(flagValue string, cfg domain.Config) (domain.Casing, error) {
	if flagValue == "" {
		return cfg.Casing, nil
	}
	return domain.ParseCasing(flagValue)
}

// toolEnv builds the bundled-binary environment, honoring the --machine
// flag and PHONETISAURUS_MACHINE.
func toolEnv(machineFlag string) (*platform.Env, error) {
	root, err := platform.DefaultRoot()
	if err != nil {
		return nil, err
	}

	machine := machineFlag
	if machine == "" {
		machine = os.Getenv("PHONETISAURUS_MACHINE")
	}

	var opts []platform.Option
	if machine != "" {
		opts = append(opts, platform.WithMachine(machine))
	}
	return platform.NewEnv(root, opts...)
}

// lexiconLoader builds the lexicon file loader with flag > config
// separator precedence.
func lexiconLoader(f sharedFlags, cfg domain.Config) (*lexfile.Loader, error) {
	wordSep := f.lexWordSep
	if wordSep == "" {
		wordSep = cfg.Lexicon.WordSeparator
	}
	phonSep := f.lexPhonSep
	if phonSep == "" {
		phonSep = cfg.Lexicon.PhonemeSeparator
	}

	return lexfile.NewLoader(
		lexfile.WithWordSeparator(wordSep),
		lexfile.WithPhonemeSeparator(phonSep),
		lexfile.WithLogger(logger.L()),
	)
}
