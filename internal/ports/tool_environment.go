package ports

// ToolEnvironment resolves the bundled external tool commands and the
// environment their processes run with.
type ToolEnvironment interface {
	// Resolve returns the absolute path of a bundled command (e.g.
	// "phonetisaurus-train") for the selected machine.
	Resolve(name string) (string, error)

	// Environ returns the full child-process environment, with PATH and
	// LD_LIBRARY_PATH pointing at the bundled bin/ and lib/ directories.
	Environ() []string
}
