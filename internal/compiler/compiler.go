// Package compiler defines the contract of the external utility-CSS
// compiler. The scanner treats the compiler as a black box: it hands
// over the raw stylesheet, the scan configuration, and a stylesheet
// loader, and calls Build on the result with the candidate set.
package compiler

import (
	"context"

	"classcan/internal/config"
)

// LoadStylesheetFunc resolves an import specifier encountered by the
// compiler to the contents of a stylesheet. `from` is the path of the
// importing file and may be empty.
type LoadStylesheetFunc func(ctx context.Context, specifier, from string) (string, error)

// Options carries the context of a single compilation.
type Options struct {
	// Config is the normalized scan configuration.
	Config *config.Config

	// From is the path of the input stylesheet.
	From string

	// LoadStylesheet is invoked for every import the compiler needs
	// inlined. Calls are issued sequentially, one import at a time.
	LoadStylesheet LoadStylesheetFunc
}

// Compiled is a compilation ready to be built against a candidate set.
type Compiled interface {
	// Build produces the final CSS text for the given candidate class
	// names.
	Build(candidates []string) (string, error)
}

// Compiler produces final CSS from a raw stylesheet and a candidate
// set.
type Compiler interface {
	Compile(ctx context.Context, css string, opts Options) (Compiled, error)
}
