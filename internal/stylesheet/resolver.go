// Package stylesheet resolves import specifiers appearing in input
// stylesheets to the contents of exactly one file, so third-party and
// local style partials can be inlined before compilation.
package stylesheet

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extension appended when trying specifier variants.
const cssExt = ".css"

// basePackage is the compiler's own package name. A bare reference to
// it resolves to the package's base stylesheet; references below it
// resolve to named sub-stylesheets.
const basePackage = "tailwindcss"

// baseStylesheet is the base stylesheet file inside basePackage.
const baseStylesheet = "index.css"

// moduleDir is the directory searched during node-style package
// resolution.
const moduleDir = "node_modules"

// ResolutionError reports a specifier that resolved through none of
// the strategies, naming every path variant attempted.
type ResolutionError struct {
	Specifier string
	Attempted []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve stylesheet import %q (tried %s)",
		e.Specifier, strings.Join(e.Attempted, ", "))
}

// Resolver loads imported stylesheets from the filesystem.
type Resolver struct {
	// WorkDir anchors package resolution when the importing file is
	// unknown. Defaults to the process working directory.
	WorkDir string

	Logger *slog.Logger
}

// NewResolver creates a Resolver rooted at the process working
// directory.
func NewResolver() *Resolver {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Resolver{WorkDir: wd, Logger: slog.Default()}
}

// Load resolves specifier to the contents of exactly one file. The
// `from` argument is the path of the importing file and may be empty.
// Resolution order: the compiler's base stylesheet, its named
// sub-stylesheets, relative/absolute paths against the importing file,
// then node-style package resolution. Failure to resolve is fatal and
// names every attempted variant.
func (r *Resolver) Load(ctx context.Context, specifier, from string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("stylesheet load canceled: %w", err)
	}

	var attempted []string

	for _, path := range r.variants(specifier, from) {
		attempted = append(attempted, path)

		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		r.logger().Debug("resolved stylesheet import", "specifier", specifier, "path", path)

		return string(content), nil
	}

	return "", &ResolutionError{Specifier: specifier, Attempted: attempted}
}

// variants lists the candidate paths for a specifier in resolution
// order.
func (r *Resolver) variants(specifier, from string) []string {
	dir := r.WorkDir
	if from != "" {
		dir = filepath.Dir(from)
	}

	// Compiler base stylesheet.
	if specifier == basePackage {
		return r.packagePaths(dir, filepath.Join(basePackage, baseStylesheet))
	}

	// Named sub-stylesheet of the compiler package.
	if rest, ok := strings.CutPrefix(specifier, basePackage+"/"); ok {
		return r.packagePaths(dir, filepath.Join(basePackage, withCSSExt(rest)))
	}

	// Relative or absolute specifier: as-is, then with the stylesheet
	// extension appended.
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") || filepath.IsAbs(specifier) {
		path := specifier
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}

		if strings.HasSuffix(path, cssExt) {
			return []string{path}
		}

		return []string{path, path + cssExt}
	}

	// Any other bare specifier: general module resolution.
	var paths []string

	rel := filepath.FromSlash(specifier)
	paths = append(paths, r.packagePaths(dir, rel)...)

	if !strings.HasSuffix(rel, cssExt) {
		paths = append(paths, r.packagePaths(dir, rel+cssExt)...)
	}

	return paths
}

// packagePaths walks node_modules directories upward from dir, joining
// each with rel.
func (r *Resolver) packagePaths(dir, rel string) []string {
	var paths []string

	for {
		paths = append(paths, filepath.Join(dir, moduleDir, rel))

		parent := filepath.Dir(dir)
		if parent == dir {
			return paths
		}

		dir = parent
	}
}

func withCSSExt(name string) string {
	if strings.HasSuffix(name, cssExt) {
		return name
	}

	return name + cssExt
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}
