package lexfile

import (
	"bufio"
	"log/slog"
	"regexp"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/ports"
)

// Excludes 0xA0, which shows up in some downloaded dictionaries.
var whitespace = regexp.MustCompile(`[ \t]+`)

// Strips the disambiguation index from CMU-style "word(2)" entries.
var wordWithNumber = regexp.MustCompile(`^([^(]+)(\(\d+\))$`)

// Loader reads CMU-style lexicon files (word + pronunciation per line),
// transparently decompressing .gz files.
type Loader struct {
	wordSep    *regexp.Regexp
	phonemeSep *regexp.Regexp
	log        *slog.Logger
}

type Option func(*options)

type options struct {
	wordSep    string
	phonemeSep string
	log        *slog.Logger
}

// WithWordSeparator sets the regex splitting a word from its pronunciation.
func WithWordSeparator(pattern string) Option {
	return func(o *options) { o.wordSep = pattern }
}

// WithPhonemeSeparator sets the regex splitting phonemes from each other.
func WithPhonemeSeparator(pattern string) Option {
	return func(o *options) { o.phonemeSep = pattern }
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

func NewLoader(opts ...Option) (*Loader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l := &Loader{
		wordSep:    whitespace,
		phonemeSep: whitespace,
		log:        o.log,
	}
	if l.log == nil {
		l.log = slog.Default()
	}

	if o.wordSep != "" {
		re, err := regexp.Compile(o.wordSep)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "lexfile.word_separator",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
		l.wordSep = re
	}
	if o.phonemeSep != "" {
		re, err := regexp.Compile(o.phonemeSep)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "lexfile.phoneme_separator",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
		l.phonemeSep = re
	}

	return l, nil
}

var _ ports.LexiconLoader = (*Loader)(nil)

// LoadLexicon parses path into a lexicon. When into is non-nil, entries are
// merged into it; repeated words accumulate pronunciations in file order.
// Malformed lines are logged and skipped.
func (l *Loader) LoadLexicon(path string, into domain.Lexicon) (domain.Lexicon, error) {
	if into == nil {
		into = domain.Lexicon{}
	}

	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := l.wordSep.Split(line, 2)
		if len(parts) < 2 || parts[0] == "" || strings.TrimSpace(parts[1]) == "" {
			l.log.Warn("lexfile.skip_line", "path", path, "line", lineNum)
			continue
		}

		word := parts[0]
		if m := wordWithNumber.FindStringSubmatch(word); m != nil {
			word = m[1]
		}

		phonemes := l.phonemeSep.Split(strings.TrimSpace(parts[1]), -1)
		into.Add(word, domain.Pronunciation(phonemes))
	}

	if err := scanner.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "lexfile.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return into, nil
}
