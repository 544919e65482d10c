package g2pexec

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/ports"
)

// Predictor runs phonetisaurus-apply over a word list and parses its
// stdout, one "word phoneme phoneme ..." line per guess.
type Predictor struct {
	env ports.ToolEnvironment
	log *slog.Logger
}

type PredictorOption func(*Predictor)

func WithPredictorLogger(log *slog.Logger) PredictorOption {
	return func(p *Predictor) { p.log = log }
}

func NewPredictor(env ports.ToolEnvironment, opts ...PredictorOption) *Predictor {
	p := &Predictor{
		env: env,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.Predictor = (*Predictor)(nil)

func (p *Predictor) Predict(ctx context.Context, words []string, modelPath string, nbest int) ([]domain.Guess, error) {
	if len(words) == 0 {
		return nil, nil
	}
	if nbest < 1 {
		nbest = 1
	}

	// The tool reads FSTs directly; gzipped models are extracted first.
	modelPath, cleanup, err := MaterializeModel(modelPath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	wordList, err := writeWordList(words)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wordList)

	bin, err := p.env.Resolve(applyCommand)
	if err != nil {
		return nil, err
	}

	argv := []string{
		"--model", modelPath,
		"--word_list", wordList,
		"--nbest", strconv.Itoa(nbest),
	}
	p.log.Debug("g2pexec.predict", "cmd", bin, "args", argv, "words", len(words))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Env = p.env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		runErr := err
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			runErr = fmt.Errorf("%s: %w", msg, err)
		}
		return nil, &domain.OpError{
			Op:   "g2pexec.predict",
			Kind: domain.KindExecution,
			Err:  runErr,
		}
	}

	return parseGuesses(&stdout)
}

func writeWordList(words []string) (string, error) {
	f, err := os.CreateTemp("", "phonetisaurus-words-*.txt")
	if err != nil {
		return "", &domain.OpError{Op: "g2pexec.word_list", Kind: domain.KindExecution, Err: err}
	}

	for _, word := range words {
		if _, err := fmt.Fprintln(f, word); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return "", &domain.OpError{
				Op:   "g2pexec.word_list",
				Kind: domain.KindExecution,
				Path: f.Name(),
				Err:  err,
			}
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", &domain.OpError{Op: "g2pexec.word_list", Kind: domain.KindExecution, Err: err}
	}
	return f.Name(), nil
}

func parseGuesses(r *bytes.Buffer) ([]domain.Guess, error) {
	var guesses []domain.Guess

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := outputFields.Split(line, -1)
		if len(fields) < 2 {
			continue
		}
		guesses = append(guesses, domain.Guess{
			Word:     fields[0],
			Phonemes: domain.Pronunciation(fields[1:]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, &domain.OpError{Op: "g2pexec.parse", Kind: domain.KindExecution, Err: err}
	}
	return guesses, nil
}

// outputFields matches the field separator in phonetisaurus-apply output.
var outputFields = regexp.MustCompile(`[ \t]+`)
