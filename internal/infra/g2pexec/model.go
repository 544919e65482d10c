package g2pexec

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// MaterializeModel returns a model path the external tool can read
// directly. A .gz model is decompressed to a temp .fst file; cleanup
// removes it. For plain models the original path is returned and cleanup
// is a no-op.
func MaterializeModel(path string) (string, func(), error) {
	if !strings.HasSuffix(path, ".gz") {
		return path, func() {}, nil
	}

	in, err := os.Open(path)
	if err != nil {
		return "", nil, &domain.OpError{
			Op:   "g2pexec.model",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return "", nil, &domain.OpError{
			Op:   "g2pexec.model",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	defer gz.Close()

	out, err := os.CreateTemp("", "phonetisaurus-model-*.fst")
	if err != nil {
		return "", nil, &domain.OpError{Op: "g2pexec.model", Kind: domain.KindExecution, Err: err}
	}

	if _, err := io.Copy(out, gz); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return "", nil, &domain.OpError{
			Op:   "g2pexec.model",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(out.Name())
		return "", nil, &domain.OpError{Op: "g2pexec.model", Kind: domain.KindExecution, Err: err}
	}

	name := out.Name()
	return name, func() { _ = os.Remove(name) }, nil
}
