package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// guessPrinter writes pronunciation results in the selected format.
type guessPrinter struct {
	w          io.Writer
	json       bool
	wordSep    string
	phonemeSep string
}

func newGuessPrinter(w io.Writer, format, wordSep, phonemeSep string) (*guessPrinter, error) {
	p := &guessPrinter{
		w:          w,
		wordSep:    wordSep,
		phonemeSep: phonemeSep,
	}

	switch format {
	case "json":
		p.json = true
	case "pretty", "":
	default:
		return nil, fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
	return p, nil
}

func (p *guessPrinter) Print(guesses []domain.Guess) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"pronunciations": guesses,
		}
		return enc.Encode(payload)
	}

	for _, g := range guesses {
		if _, err := fmt.Fprintf(p.w, "%s%s%s\n", g.Word, p.wordSep, strings.Join(g.Phonemes, p.phonemeSep)); err != nil {
			return err
		}
	}
	return nil
}
