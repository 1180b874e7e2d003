// Package scan resolves content patterns to concrete source files. It
// implements the restricted wildcard syntax of the scan configuration
// with a purpose-built matcher; full glob syntax is out of scope.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"
)

// Walker performs recursive directory traversal, returning regular
// files only. The walk is iterative over an explicit directory stack so
// deep trees cannot exhaust the call stack.
type Walker struct {
	// SkipVendored prunes directories that enry classifies as vendored
	// (node_modules, .git, build output and the like).
	SkipVendored bool

	Logger *slog.Logger
}

// NewWalker returns a Walker with vendored-directory pruning enabled.
func NewWalker() *Walker {
	return &Walker{SkipVendored: true, Logger: slog.Default()}
}

// Walk traverses root recursively and returns the absolute paths of
// every regular file found. When exts is non-empty, only files whose
// extension (without the leading dot, case-sensitive) is in the set are
// returned. A missing or unreadable root yields no files, not an error:
// a misconfigured pattern must not abort the whole scan.
func (w *Walker) Walk(root string, exts map[string]struct{}) []string {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil
	}

	info, statErr := os.Stat(absRoot)
	if statErr != nil || !info.IsDir() {
		w.logger().Debug("walk root unavailable", "root", root)

		return nil
	}

	var files []string

	stack := []string{absRoot}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			w.logger().Debug("skipping unreadable directory", "dir", dir, "err", readErr)

			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				if w.skip(absRoot, path) {
					continue
				}

				stack = append(stack, path)

				continue
			}

			if !entry.Type().IsRegular() {
				continue
			}

			if len(exts) > 0 {
				ext := extension(entry.Name())
				if _, ok := exts[ext]; !ok {
					continue
				}
			}

			files = append(files, path)
		}
	}

	return files
}

// skip reports whether a directory below the walk root should be
// pruned: hidden directories and anything enry classifies as vendored.
// The root itself is never tested, so pointing a pattern at a vendored
// tree directly still works.
func (w *Walker) skip(root, dir string) bool {
	if !w.SkipVendored {
		return false
	}

	if strings.HasPrefix(filepath.Base(dir), ".") {
		return true
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}

	return enry.IsVendor(filepath.ToSlash(rel) + "/")
}

func (w *Walker) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}

	return slog.Default()
}

// extension returns the file extension without the leading dot, or the
// empty string when the name has none.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}

	return ext[1:]
}
