package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
	"github.com/rhasspy/phonetisaurus-go/internal/ports"
)

// Env points child processes at the bundled binaries for one machine type.
type Env struct {
	rootDir string
	machine string
	base    []string
}

type Option func(*Env)

// WithMachine overrides machine detection (the --machine flag).
func WithMachine(machine string) Option {
	return func(e *Env) { e.machine = machine }
}

// WithBaseEnviron is useful for tests.
func WithBaseEnviron(environ []string) Option {
	return func(e *Env) { e.base = environ }
}

// NewEnv builds a tool environment rooted at rootDir, which must contain
// bin/<machine> with the external tool commands.
func NewEnv(rootDir string, opts ...Option) (*Env, error) {
	e := &Env{rootDir: filepath.Clean(rootDir)}
	for _, opt := range opts {
		opt(e)
	}

	if e.base == nil {
		e.base = os.Environ()
	}

	if e.machine == "" {
		machine, err := DetectMachine()
		if err != nil {
			return nil, err
		}
		e.machine = machine
	} else {
		machine, err := NormalizeMachine(e.machine)
		if err != nil {
			return nil, err
		}
		e.machine = machine
	}

	if info, err := os.Stat(e.binDir()); err != nil || !info.IsDir() {
		return nil, &domain.OpError{
			Op:   "platform.env",
			Kind: domain.KindUnsupportedPlatform,
			Path: e.binDir(),
			Err:  fmt.Errorf("no binaries bundled for %s: %w", e.machine, domain.ErrUnsupportedPlatform),
		}
	}

	return e, nil
}

var _ ports.ToolEnvironment = (*Env)(nil)

func (e *Env) Machine() string { return e.machine }

func (e *Env) binDir() string { return filepath.Join(e.rootDir, "bin", e.machine) }
func (e *Env) libDir() string { return filepath.Join(e.rootDir, "lib", e.machine) }

// Resolve returns the absolute path of a bundled command.
func (e *Env) Resolve(name string) (string, error) {
	path := filepath.Join(e.binDir(), name)
	if _, err := os.Stat(path); err != nil {
		return "", &domain.OpError{
			Op:   "platform.resolve",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return path, nil
}

// Environ returns the base environment with PATH and LD_LIBRARY_PATH
// prepended with the bundled bin/ and lib/ directories, so the external
// tool's own scripts find their sibling binaries and shared libraries.
func (e *Env) Environ() []string {
	out := make([]string, 0, len(e.base)+2)
	var sawPath, sawLib bool

	for _, kv := range e.base {
		switch {
		case strings.HasPrefix(kv, "PATH="):
			out = append(out, "PATH="+e.binDir()+":"+strings.TrimPrefix(kv, "PATH="))
			sawPath = true
		case strings.HasPrefix(kv, "LD_LIBRARY_PATH="):
			out = append(out, "LD_LIBRARY_PATH="+e.libDir()+":"+strings.TrimPrefix(kv, "LD_LIBRARY_PATH="))
			sawLib = true
		default:
			out = append(out, kv)
		}
	}

	if !sawPath {
		out = append(out, "PATH="+e.binDir())
	}
	if !sawLib {
		out = append(out, "LD_LIBRARY_PATH="+e.libDir())
	}
	return out
}

// DefaultRoot locates the directory holding the bundled bin/ and lib/
// trees: PHONETISAURUS_DIR when set, otherwise the executable's directory.
func DefaultRoot() (string, error) {
	if dir := os.Getenv("PHONETISAURUS_DIR"); dir != "" {
		return filepath.Clean(dir), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", &domain.OpError{
			Op:   "platform.root",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return filepath.Dir(exe), nil
}
