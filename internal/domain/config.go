package domain

// Config represents the optional defaults loaded from phonetisaurus.yaml.
// Flags override config; config overrides these defaults.
type Config struct {
	Model   string
	NBest   int
	Casing  Casing
	Output  OutputConfig
	Lexicon LexiconConfig
}

// OutputConfig controls the printed pronunciation lines.
type OutputConfig struct {
	WordSeparator    string
	PhonemeSeparator string
}

// LexiconConfig holds the separator regexes used when parsing lexicon files.
type LexiconConfig struct {
	WordSeparator    string
	PhonemeSeparator string
}

// DefaultConfig provides sane defaults if phonetisaurus.yaml is partially
// missing.
func DefaultConfig() Config {
	return Config{
		NBest:  1,
		Casing: CasingIgnore,
		Output: OutputConfig{
			WordSeparator:    " ",
			PhonemeSeparator: " ",
		},
		Lexicon: LexiconConfig{
			WordSeparator:    `\s+`,
			PhonemeSeparator: `\s+`,
		},
	}
}
