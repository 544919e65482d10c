package lexfile

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipReadCloser) Close() error {
	gerr := g.gz.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// Open opens path for reading, decompressing transparently when it has a
// .gz extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "lexfile.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, &domain.OpError{
			Op:   "lexfile.open",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return &gzipReadCloser{gz: gz, file: f}, nil
}
