package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rhasspy/phonetisaurus-go/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:           "phonetisaurus",
		Short:         "Phonetisaurus — train and apply grapheme-to-phoneme models",
		Long:          "Wrapper around the bundled phonetisaurus binaries: train G2P models from phonetic dictionaries and predict pronunciations for new words.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cleanup, _ = logger.Setup(logger.Config{Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to ~/.phonetisaurus/logs/phonetisaurus.log")

	cmd.AddCommand(trainCmd())
	cmd.AddCommand(predictCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
