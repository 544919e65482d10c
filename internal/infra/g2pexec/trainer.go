// Package g2pexec shells out to the bundled phonetisaurus binaries. It owns
// the argv construction, temp-file choreography, and the external tool's
// text output parsing; the G2P work itself happens entirely in the child
// process.
package g2pexec

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/ports"
)

const (
	trainCommand = "phonetisaurus-train"
	applyCommand = "phonetisaurus-apply"
)

// Trainer runs phonetisaurus-train in a scratch directory and copies the
// resulting artifacts out.
type Trainer struct {
	env    ports.ToolEnvironment
	log    *slog.Logger
	output io.Writer
}

type TrainerOption func(*Trainer)

// WithTrainerLogger sets the logger used for debug traces.
func WithTrainerLogger(log *slog.Logger) TrainerOption {
	return func(t *Trainer) { t.log = log }
}

// WithTrainerOutput redirects the external tool's progress output
// (default: stderr, keeping stdout free for results).
func WithTrainerOutput(w io.Writer) TrainerOption {
	return func(t *Trainer) { t.output = w }
}

func NewTrainer(env ports.ToolEnvironment, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		env:    env,
		log:    slog.Default(),
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ ports.Trainer = (*Trainer)(nil)

func (t *Trainer) Train(ctx context.Context, lexicon domain.Lexicon, modelPath, corpusPath string) error {
	if err := os.MkdirAll(filepath.Dir(modelPath), 0o755); err != nil {
		return &domain.OpError{
			Op:   "g2pexec.train",
			Kind: domain.KindExecution,
			Path: modelPath,
			Err:  err,
		}
	}
	if corpusPath != "" {
		if err := os.MkdirAll(filepath.Dir(corpusPath), 0o755); err != nil {
			return &domain.OpError{
				Op:   "g2pexec.train",
				Kind: domain.KindExecution,
				Path: corpusPath,
				Err:  err,
			}
		}
	}

	workDir, err := os.MkdirTemp("", "phonetisaurus-train-")
	if err != nil {
		return &domain.OpError{Op: "g2pexec.train", Kind: domain.KindExecution, Err: err}
	}
	defer os.RemoveAll(workDir)

	lexiconPath := filepath.Join(workDir, "lexicon.txt")
	if err := writeTrainingLexicon(lexiconPath, lexicon); err != nil {
		return err
	}

	bin, err := t.env.Resolve(trainCommand)
	if err != nil {
		return err
	}

	argv := []string{"--lexicon", lexiconPath, "--seq2_del", "--verbose"}
	t.log.Debug("g2pexec.train", "cmd", bin, "args", argv)

	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Dir = workDir
	cmd.Env = t.env.Environ()
	cmd.Stdout = t.output
	cmd.Stderr = t.output

	if err := cmd.Run(); err != nil {
		return &domain.OpError{
			Op:   "g2pexec.train",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if err := copyFile(filepath.Join(workDir, "train", "model.fst"), modelPath); err != nil {
		return err
	}
	if corpusPath != "" {
		if err := copyFile(filepath.Join(workDir, "train", "model.corpus"), corpusPath); err != nil {
			return err
		}
	}
	return nil
}

// The external tool reserves '_' and '|' as alignment symbols; 0xA0 slips
// into downloaded dictionaries and breaks its tokenizer.
func skipTrainingLine(line string) bool {
	return strings.ContainsAny(line, "_| ")
}

func writeTrainingLexicon(path string, lexicon domain.Lexicon) error {
	f, err := os.Create(path)
	if err != nil {
		return &domain.OpError{
			Op:   "g2pexec.write_lexicon",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	words := make([]string, 0, len(lexicon))
	for word := range lexicon {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		for _, pron := range lexicon[word] {
			line := fmt.Sprintf("%s\t%s", word, strings.Join(pron, " "))
			if skipTrainingLine(line) {
				continue
			}
			if _, err := fmt.Fprintln(f, line); err != nil {
				return &domain.OpError{
					Op:   "g2pexec.write_lexicon",
					Kind: domain.KindExecution,
					Path: path,
					Err:  err,
				}
			}
		}
	}

	return f.Sync()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &domain.OpError{
			Op:   "g2pexec.copy_artifact",
			Kind: domain.KindNotFound,
			Path: src,
			Err:  err,
		}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return &domain.OpError{
			Op:   "g2pexec.copy_artifact",
			Kind: domain.KindExecution,
			Path: dst,
			Err:  err,
		}
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &domain.OpError{
			Op:   "g2pexec.copy_artifact",
			Kind: domain.KindExecution,
			Path: dst,
			Err:  err,
		}
	}
	return out.Close()
}
