package g2pexec

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

func TestMaterializeModel_PlainPassthrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.fst")
	got, cleanup, err := MaterializeModel(path)
	if err != nil {
		t.Fatalf("MaterializeModel error: %v", err)
	}
	defer cleanup()

	if got != path {
		t.Fatalf("expected plain path unchanged, got %q", got)
	}
}

func TestMaterializeModel_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.fst.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("fst-bytes")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	got, cleanup, err := MaterializeModel(path)
	if err != nil {
		t.Fatalf("MaterializeModel error: %v", err)
	}

	if !strings.HasSuffix(got, ".fst") {
		t.Fatalf("expected temp .fst path, got %q", got)
	}
	b, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("read extracted model: %v", err)
	}
	if string(b) != "fst-bytes" {
		t.Fatalf("unexpected extracted content: %q", string(b))
	}

	cleanup()
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Fatalf("expected cleanup to remove temp model, stat err=%v", err)
	}
}

func TestMaterializeModel_MissingGzip(t *testing.T) {
	_, _, err := MaterializeModel(filepath.Join(t.TempDir(), "nope.fst.gz"))
	if err == nil {
		t.Fatal("expected error for missing model")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}
