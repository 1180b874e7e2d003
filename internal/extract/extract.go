// Package extract pulls utility-class candidates out of markup,
// stylesheet, and script sources. Markup and stylesheets are scanned
// textually; scripts are parsed into tree-sitter syntax trees and
// walked conservatively, so every branch of a conditional contributes
// its candidates.
package extract

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"classcan/internal/candidate"
)

// Kind tags the extraction strategy for a source file.
type Kind int

// Source kinds, dispatched by file type.
const (
	KindUnknown Kind = iota
	KindMarkup
	KindStylesheet
	KindScript
)

// Extractor accumulates candidate tokens into a caller-owned set.
// Extracted tokens are filtered through the plausibility heuristic;
// safelist entries bypass the extractor entirely.
type Extractor struct {
	helpers map[string]struct{}
	logger  *slog.Logger

	parsers parserCache
}

// New creates an Extractor recognizing the given helper-call allowlist
// during script extraction.
func New(helpers map[string]struct{}) *Extractor {
	return &Extractor{
		helpers: helpers,
		logger:  slog.Default(),
	}
}

// ExtractFile dispatches content to the arm matching the file's kind
// and accumulates candidates into sink. Files of unknown kind and
// binary files contribute nothing.
func (e *Extractor) ExtractFile(path string, content []byte, sink *candidate.Set) error {
	if enry.IsBinary(content) {
		return nil
	}

	kind, grammar := Detect(path, content)
	if kind == KindUnknown {
		e.logger.Debug("skipping file of unknown kind", "path", path)

		return nil
	}

	return e.extract(content, kind, grammar, sink)
}

// Extract accumulates candidates from content of the given kind into
// sink. Script content is parsed with the tsx grammar, which covers
// JavaScript, JSX, and most TypeScript.
func (e *Extractor) Extract(content []byte, kind Kind, sink *candidate.Set) error {
	return e.extract(content, kind, grammarTSX, sink)
}

func (e *Extractor) extract(content []byte, kind Kind, grammar string, sink *candidate.Set) error {
	switch kind {
	case KindMarkup:
		extractMarkup(string(content), sink)
	case KindStylesheet:
		extractStylesheet(string(content), sink)
	case KindScript:
		return e.extractScript(content, grammar, sink)
	case KindUnknown:
	}

	return nil
}

// Detect classifies a file into a source kind and, for scripts, picks
// the grammar to parse it with. Language detection runs through enry
// with an extension fallback for the dialects enry does not know.
func Detect(path string, content []byte) (Kind, string) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	switch lang := enry.GetLanguage(filepath.Base(path), content); lang {
	case "HTML", "Vue", "Svelte", "PHP", "Blade", "Twig", "Liquid", "HTML+ERB", "Handlebars", "Markdown", "MDX":
		return KindMarkup, ""
	case "CSS", "SCSS", "Sass", "Less", "PostCSS":
		return KindStylesheet, ""
	case "JavaScript", "TypeScript", "TSX", "JSX":
		return KindScript, grammarFor(ext)
	}

	switch ext {
	case "html", "htm", "vue", "svelte", "astro", "md", "mdx", "php", "erb", "twig", "njk", "liquid", "hbs", "heex":
		return KindMarkup, ""
	case "css", "scss", "sass", "less", "pcss", "postcss":
		return KindStylesheet, ""
	case "js", "jsx", "mjs", "cjs", "ts", "tsx", "mts", "cts":
		return KindScript, grammarFor(ext)
	}

	return KindUnknown, ""
}

// addTokens splits text on whitespace and adds every plausible token.
func addTokens(text string, sink *candidate.Set) {
	for _, token := range strings.Fields(text) {
		if candidate.Plausible(token) {
			sink.Add(token)
		}
	}
}
