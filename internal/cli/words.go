package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// readWords collects all non-blank lines from r.
func readWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.OpError{Op: "cli.read_words", Kind: domain.KindExecution, Err: err}
	}
	return words, nil
}

// forEachBatch reads lines from r and calls fn with the words accumulated
// so far at every blank line, and once more at EOF for any remainder.
func forEachBatch(r io.Reader, fn func(words []string) error) error {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
			continue
		}
		if len(words) == 0 {
			continue
		}
		if err := fn(words); err != nil {
			return err
		}
		words = nil
	}
	if err := scanner.Err(); err != nil {
		return &domain.OpError{Op: "cli.read_words", Kind: domain.KindExecution, Err: err}
	}

	if len(words) > 0 {
		return fn(words)
	}
	return nil
}
