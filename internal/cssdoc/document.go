// Package cssdoc models the stylesheet document the pipeline operates
// on: the parsed input handed in by the host build tool, later replaced
// wholesale with the compiled output.
package cssdoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexaandru/go-sitter-forest/css"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Sentinel errors for document operations.
var (
	errMalformedCSS = errors.New("malformed stylesheet")
	errEmptyParse   = errors.New("stylesheet parse produced no root node")
)

var cssLanguage = sitter.NewLanguage(css.GetLanguage())

// Document is a stylesheet body paired with its origin path. Replacing
// its content stands in for replacing the host tool's stylesheet AST.
type Document struct {
	path string
	text string
}

// New creates a Document for the stylesheet at path with the given
// body.
func New(path, text string) *Document {
	return &Document{path: path, text: text}
}

// Path returns the origin file path of the stylesheet.
func (d *Document) Path() string {
	return d.path
}

// Text returns the current stylesheet body.
func (d *Document) Text() string {
	return d.text
}

// ReplaceWith parses css text and swaps the entire document body for
// it. The parse guards against splicing a malformed compiler result
// into the output.
func (d *Document) ReplaceWith(cssText string) error {
	if err := validate(cssText); err != nil {
		return err
	}

	d.text = cssText

	return nil
}

// validate runs the text through the CSS grammar and rejects trees
// containing parse errors.
func validate(cssText string) error {
	parser := sitter.NewParser()
	parser.SetLanguage(cssLanguage)

	tree, err := parser.ParseString(context.Background(), nil, []byte(cssText))
	if err != nil {
		return fmt.Errorf("parsing compiled stylesheet: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return errEmptyParse
	}

	if node, found := findError(root); found {
		return fmt.Errorf("%w at byte %d", errMalformedCSS, node.StartByte())
	}

	return nil
}

// findError locates the first ERROR node in the tree, if any.
func findError(n sitter.Node) (sitter.Node, bool) {
	if n.Type() == "ERROR" {
		return n, true
	}

	for idx := range n.NamedChildCount() {
		if errNode, found := findError(n.NamedChild(idx)); found {
			return errNode, true
		}
	}

	return sitter.Node{}, false
}
