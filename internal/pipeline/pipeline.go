// Package pipeline composes the scanner: it turns a scan configuration
// and an input stylesheet into compiled CSS via the external compiler.
// It runs once per compilation event and holds no state across runs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"classcan/internal/candidate"
	"classcan/internal/compiler"
	"classcan/internal/config"
	"classcan/internal/cssdoc"
	"classcan/internal/extract"
	"classcan/internal/scan"
	"classcan/internal/stylesheet"
)

var errNoCompiler = errors.New("no compiler configured")

// Options configures a pipeline run. Zero-value fields fall back to
// the defaults noted on each.
type Options struct {
	// ConfigPath is the scan configuration file. Empty means the
	// default search in the working directory.
	ConfigPath string

	// LoadConfig loads the scan configuration; defaults to config.Load.
	// Called fresh on every run.
	LoadConfig func(path string) (*config.Config, error)

	// Compiler is the external utility-CSS compiler. Required.
	Compiler compiler.Compiler

	// Resolver loads imported stylesheets for the compiler; defaults to
	// a resolver rooted at the working directory.
	Resolver *stylesheet.Resolver

	Logger *slog.Logger
}

// Run executes one compilation: it loads the config, resolves content
// patterns, extracts candidates from every resolved file and from the
// input stylesheet itself, unions in the safelist, invokes the
// compiler, and replaces the document body with the compiled CSS. A run
// either completes with one compiled stylesheet or fails atomically;
// the document is never left partially updated.
func Run(ctx context.Context, doc *cssdoc.Document, opts Options) error {
	if opts.Compiler == nil {
		return errNoCompiler
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loadConfig := opts.LoadConfig
	if loadConfig == nil {
		loadConfig = config.Load
	}

	cfg, cfgErr := loadConfig(opts.ConfigPath)
	if cfgErr != nil {
		return fmt.Errorf("loading scan config: %w", cfgErr)
	}

	candidates, scanErr := Scan(cfg, logger)
	if scanErr != nil {
		return scanErr
	}

	// The input stylesheet may itself contain composition directives.
	extractor := extract.New(cfg.HelperSet())
	if err := extractor.Extract([]byte(doc.Text()), extract.KindStylesheet, candidates); err != nil {
		return fmt.Errorf("extracting from input stylesheet: %w", err)
	}

	// Safelist entries bypass validation.
	for _, token := range cfg.Safelist {
		candidates.Add(token)
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = stylesheet.NewResolver()
	}

	compiled, compileErr := opts.Compiler.Compile(ctx, doc.Text(), compiler.Options{
		Config:         cfg,
		From:           doc.Path(),
		LoadStylesheet: resolver.Load,
	})
	if compileErr != nil {
		return fmt.Errorf("compiling stylesheet: %w", compileErr)
	}

	css, buildErr := compiled.Build(candidates.Sorted())
	if buildErr != nil {
		return fmt.Errorf("building stylesheet: %w", buildErr)
	}

	if err := doc.ReplaceWith(css); err != nil {
		return err
	}

	logger.Debug("stylesheet compiled",
		"from", doc.Path(), "candidates", candidates.Len())

	return nil
}

// Scan resolves the config's content patterns and extracts candidates
// from every resolved file. File read failures are fatal: an incomplete
// candidate set would produce a stylesheet missing required classes.
func Scan(cfg *config.Config, logger *slog.Logger) (*candidate.Set, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolver := scan.NewResolver(scan.NewWalker())
	files := resolver.Resolve(cfg.Patterns)

	extractor := extract.New(cfg.HelperSet())
	candidates := candidate.NewSet()

	for _, path := range sortedPaths(files) {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("reading source file: %w", readErr)
		}

		if err := extractor.ExtractFile(path, content, candidates); err != nil {
			return nil, fmt.Errorf("extracting from %s: %w", path, err)
		}
	}

	logger.Debug("content scan complete",
		"files", len(files), "candidates", candidates.Len())

	return candidates, nil
}

func sortedPaths(files map[string]struct{}) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}
