package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// recursiveMarker is the wildcard form shared by every non-literal
// pattern shape this resolver supports.
const recursiveMarker = "**"

// Resolver expands content patterns into concrete absolute file paths.
// Supported shapes: a literal path, "dir/**", "dir/**/*", "dir/**/*.ext"
// and "dir/**/*.{ext1,ext2}". Anything else contributes nothing unless
// the pattern string happens to exist verbatim as a file.
type Resolver struct {
	walker *Walker
	logger *slog.Logger
}

// NewResolver creates a Resolver walking with the given Walker. A nil
// walker gets the default.
func NewResolver(walker *Walker) *Resolver {
	if walker == nil {
		walker = NewWalker()
	}

	return &Resolver{walker: walker, logger: slog.Default()}
}

// Resolve expands every pattern independently and returns the union as
// a set of absolute file paths. Resolution is deterministic and
// idempotent for a fixed filesystem state, and it never fails: patterns
// that match nothing, point at missing directories, or use unsupported
// shapes simply contribute no files.
func (r *Resolver) Resolve(patterns []string) map[string]struct{} {
	files := make(map[string]struct{})

	for _, pattern := range patterns {
		for _, path := range r.resolveOne(pattern) {
			files[path] = struct{}{}
		}
	}

	return files
}

func (r *Resolver) resolveOne(pattern string) []string {
	if !strings.Contains(pattern, "*") {
		return literalFile(pattern)
	}

	base, suffix, ok := splitRecursive(pattern)
	if ok {
		switch {
		case suffix == "" || suffix == "/*" || suffix == "/":
			return r.walker.Walk(base, nil)
		case strings.HasPrefix(suffix, "/*."):
			if exts := parseExtensions(suffix[len("/*."):]); exts != nil {
				return r.walker.Walk(base, exts)
			}
		}
	}

	// Unsupported wildcard shape: honor it only if the path exists
	// verbatim, otherwise it is a logged no-op.
	if files := literalFile(pattern); files != nil {
		return files
	}

	r.logger.Debug("unsupported pattern shape, skipping", "pattern", pattern)

	return nil
}

// splitRecursive splits a pattern around its "**" marker, returning the
// base directory and the remaining suffix.
func splitRecursive(pattern string) (base, suffix string, ok bool) {
	idx := strings.Index(pattern, recursiveMarker)
	if idx < 0 {
		return "", "", false
	}

	base = strings.TrimSuffix(pattern[:idx], "/")
	if base == "" {
		base = "."
	}

	return base, pattern[idx+len(recursiveMarker):], true
}

// parseExtensions parses the extension portion of a "/*.ext" or
// "/*.{ext1,ext2}" suffix. Returns nil for shapes outside the supported
// single-level brace alternation.
func parseExtensions(spec string) map[string]struct{} {
	exts := make(map[string]struct{})

	if strings.HasPrefix(spec, "{") {
		if !strings.HasSuffix(spec, "}") {
			return nil
		}

		for _, ext := range strings.Split(spec[1:len(spec)-1], ",") {
			ext = strings.TrimSpace(ext)
			if ext == "" || strings.ContainsAny(ext, "*{}") {
				return nil
			}

			exts[ext] = struct{}{}
		}

		if len(exts) == 0 {
			return nil
		}

		return exts
	}

	if spec == "" || strings.ContainsAny(spec, "*{}/") {
		return nil
	}

	exts[spec] = struct{}{}

	return exts
}

// literalFile returns the absolute path of pattern when it names an
// existing regular file, or nil.
func literalFile(pattern string) []string {
	info, err := os.Stat(pattern)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}

	abs, absErr := filepath.Abs(pattern)
	if absErr != nil {
		return nil
	}

	return []string{abs}
}
