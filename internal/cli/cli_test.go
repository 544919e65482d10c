package cli

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

func TestReadWords_SkipsBlanks(t *testing.T) {
	in := strings.NewReader("test\n\n  word  \n\n")
	words, err := readWords(in)
	if err != nil {
		t.Fatalf("readWords error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"test", "word"}) {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestReadWords_Empty(t *testing.T) {
	words, err := readWords(strings.NewReader(""))
	if err != nil {
		t.Fatalf("readWords error: %v", err)
	}
	if words != nil {
		t.Fatalf("expected no words, got %v", words)
	}
}

func TestForEachBatch_SplitsOnBlankLines(t *testing.T) {
	var batches [][]string
	err := forEachBatch(strings.NewReader("a\nb\n\nc\n\n\nd\ne\n"), func(words []string) error {
		batch := make([]string, len(words))
		copy(batch, words)
		batches = append(batches, batch)
		return nil
	})
	if err != nil {
		t.Fatalf("forEachBatch error: %v", err)
	}

	want := [][]string{{"a", "b"}, {"c"}, {"d", "e"}}
	if !reflect.DeepEqual(batches, want) {
		t.Fatalf("unexpected batches: %v", batches)
	}
}

func TestForEachBatch_NoTrailingEmptyBatch(t *testing.T) {
	calls := 0
	err := forEachBatch(strings.NewReader("a\n\n"), func(words []string) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("forEachBatch error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one batch, got %d", calls)
	}
}

func TestGuessPrinter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	p, err := newGuessPrinter(&buf, "pretty", " ", " ")
	if err != nil {
		t.Fatalf("newGuessPrinter error: %v", err)
	}

	err = p.Print([]domain.Guess{
		{Word: "test", Phonemes: domain.Pronunciation{"T", "EH", "S", "T"}},
	})
	if err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if buf.String() != "test T EH S T\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestGuessPrinter_CustomSeparators(t *testing.T) {
	var buf bytes.Buffer
	p, err := newGuessPrinter(&buf, "pretty", "\t", "-")
	if err != nil {
		t.Fatalf("newGuessPrinter error: %v", err)
	}

	err = p.Print([]domain.Guess{
		{Word: "test", Phonemes: domain.Pronunciation{"T", "EH", "S", "T"}},
	})
	if err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if buf.String() != "test\tT-EH-S-T\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestGuessPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := newGuessPrinter(&buf, "json", " ", " ")
	if err != nil {
		t.Fatalf("newGuessPrinter error: %v", err)
	}

	err = p.Print([]domain.Guess{
		{Word: "test", Phonemes: domain.Pronunciation{"T", "EH", "S", "T"}},
	})
	if err != nil {
		t.Fatalf("Print error: %v", err)
	}

	var payload struct {
		Pronunciations []domain.Guess `json:"pronunciations"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if len(payload.Pronunciations) != 1 || payload.Pronunciations[0].Word != "test" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestGuessPrinter_UnsupportedFormat(t *testing.T) {
	_, err := newGuessPrinter(&bytes.Buffer{}, "xml", " ", " ")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestResolveModel_Precedence(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Model = "/from/config.fst"

	got, err := resolveModel("/from/flag.fst", cfg)
	if err != nil || got != "/from/flag.fst" {
		t.Fatalf("flag should win: got=%q err=%v", got, err)
	}

	got, err = resolveModel("", cfg)
	if err != nil || got != "/from/config.fst" {
		t.Fatalf("config should be fallback: got=%q err=%v", got, err)
	}

	_, err = resolveModel("", domain.DefaultConfig())
	if err == nil {
		t.Fatal("expected error when model is nowhere configured")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestResolveCasing_Precedence(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Casing = domain.CasingUpper

	got, err := resolveCasing("", cfg)
	if err != nil || got != domain.CasingUpper {
		t.Fatalf("config casing should apply: got=%q err=%v", got, err)
	}

	got, err = resolveCasing("lower", cfg)
	if err != nil || got != domain.CasingLower {
		t.Fatalf("flag casing should win: got=%q err=%v", got, err)
	}

	if _, err := resolveCasing("title", cfg); err == nil {
		t.Fatal("expected error for bad casing flag")
	}
}
