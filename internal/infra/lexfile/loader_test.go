package lexfile

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

func writeLexicon(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}
	return path
}

func TestLoadLexicon_Basic(t *testing.T) {
	path := writeLexicon(t, "dict.txt", "test\tT EH S T\nword\tW ER D\n")

	l, err := NewLoader()
	if err != nil {
		t.Fatalf("NewLoader error: %v", err)
	}

	lex, err := l.LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon error: %v", err)
	}

	if !reflect.DeepEqual(lex["test"], []domain.Pronunciation{{"T", "EH", "S", "T"}}) {
		t.Fatalf("unexpected pronunciation for test: %v", lex["test"])
	}
	if len(lex) != 2 {
		t.Fatalf("expected 2 words, got %d", len(lex))
	}
}

func TestLoadLexicon_StripsWordNumber(t *testing.T) {
	path := writeLexicon(t, "dict.txt", "read\tR EH D\nread(2)\tR IY D\n")

	l, _ := NewLoader()
	lex, err := l.LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon error: %v", err)
	}

	if len(lex) != 1 {
		t.Fatalf("expected read(2) to merge under read, got words: %v", lex)
	}
	if len(lex["read"]) != 2 {
		t.Fatalf("expected 2 pronunciations for read, got %d", len(lex["read"]))
	}
}

func TestLoadLexicon_SkipsBlankAndMalformed(t *testing.T) {
	path := writeLexicon(t, "dict.txt", "\nonlyword\n\ntest\tT EH S T\n   \n")

	l, _ := NewLoader()
	lex, err := l.LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon error: %v", err)
	}

	if len(lex) != 1 {
		t.Fatalf("expected only the valid line to load, got %v", lex)
	}
}

func TestLoadLexicon_MergesInto(t *testing.T) {
	first := writeLexicon(t, "a.txt", "test\tT EH S T\n")
	second := writeLexicon(t, "b.txt", "test\tT EH S\nword\tW ER D\n")

	l, _ := NewLoader()
	lex, err := l.LoadLexicon(first, nil)
	if err != nil {
		t.Fatalf("load first: %v", err)
	}
	lex, err = l.LoadLexicon(second, lex)
	if err != nil {
		t.Fatalf("load second: %v", err)
	}

	if len(lex["test"]) != 2 {
		t.Fatalf("expected pronunciations to accumulate, got %d", len(lex["test"]))
	}
	if !reflect.DeepEqual(lex["test"][0], domain.Pronunciation{"T", "EH", "S", "T"}) {
		t.Fatalf("first file's pronunciation should come first: %v", lex["test"][0])
	}
}

func TestLoadLexicon_CustomSeparators(t *testing.T) {
	path := writeLexicon(t, "dict.csv", "test,T|EH|S|T\n")

	l, err := NewLoader(WithWordSeparator(","), WithPhonemeSeparator(`\|`))
	if err != nil {
		t.Fatalf("NewLoader error: %v", err)
	}

	lex, err := l.LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon error: %v", err)
	}
	if !reflect.DeepEqual(lex["test"], []domain.Pronunciation{{"T", "EH", "S", "T"}}) {
		t.Fatalf("unexpected pronunciation: %v", lex["test"])
	}
}

func TestNewLoader_BadSeparator(t *testing.T) {
	_, err := NewLoader(WithWordSeparator("["))
	if err == nil {
		t.Fatal("expected error for invalid regex")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestLoadLexicon_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("test\tT EH S T\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	l, _ := NewLoader()
	lex, err := l.LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon error: %v", err)
	}
	if len(lex["test"]) != 1 {
		t.Fatalf("expected gzip lexicon to load, got %v", lex)
	}
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	l, _ := NewLoader()
	_, err := l.LoadLexicon(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}
