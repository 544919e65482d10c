// Package config loads optional defaults from phonetisaurus.yaml. Flags
// override config values; missing files or fields fall back to
// domain.DefaultConfig.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

const DefaultFileName = "phonetisaurus.yaml"

type yamlSeparators struct {
	WordSeparator    string `yaml:"word_separator"`
	PhonemeSeparator string `yaml:"phoneme_separator"`
}

type yamlConfig struct {
	Model   string         `yaml:"model"`
	NBest   *int           `yaml:"nbest"`
	Casing  string         `yaml:"casing"`
	Output  yamlSeparators `yaml:"output"`
	Lexicon yamlSeparators `yaml:"lexicon"`
}

// Load reads phonetisaurus.yaml from dir. A missing file is not an error;
// defaults are returned.
func Load(dir string) (domain.Config, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return LoadFile(path)
}

// LoadFile reads an explicit config file path and merges it over defaults.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, dto)
}

func mapConfig(path string, dto yamlConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if dto.Model != "" {
		cfg.Model = dto.Model
	}
	if dto.NBest != nil {
		cfg.NBest = *dto.NBest
	}
	if dto.Casing != "" {
		casing, err := domain.ParseCasing(dto.Casing)
		if err != nil {
			return domain.Config{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Casing = casing
	}
	if dto.Output.WordSeparator != "" {
		cfg.Output.WordSeparator = dto.Output.WordSeparator
	}
	if dto.Output.PhonemeSeparator != "" {
		cfg.Output.PhonemeSeparator = dto.Output.PhonemeSeparator
	}
	if dto.Lexicon.WordSeparator != "" {
		cfg.Lexicon.WordSeparator = dto.Lexicon.WordSeparator
	}
	if dto.Lexicon.PhonemeSeparator != "" {
		cfg.Lexicon.PhonemeSeparator = dto.Lexicon.PhonemeSeparator
	}

	return cfg, nil
}
