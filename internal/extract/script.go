package extract

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"classcan/internal/candidate"
)

// Sentinel errors for script extraction.
var (
	errLanguageNotAvailable = errors.New("tree-sitter language not available")
	errNoRootNode           = errors.New("script parse produced no root node")
)

// Syntax-tree node types the walk reacts to. These are the tree-sitter
// javascript/typescript/tsx grammar names.
const (
	nodeJSXAttribute   = "jsx_attribute"
	nodeJSXExpression  = "jsx_expression"
	nodeCallExpression = "call_expression"
	nodeMemberExpr     = "member_expression"
	nodeString         = "string"
	nodeTemplateString = "template_string"
	nodeStringFragment = "string_fragment"
	nodeTemplateSubst  = "template_substitution"
	nodeBinaryExpr     = "binary_expression"
	nodeTernaryExpr    = "ternary_expression"
	nodeParenExpr      = "parenthesized_expression"
	nodeArray          = "array"
	nodeObject         = "object"
	nodePair           = "pair"
	nodeMethodDef      = "method_definition"
	nodeIdentifier     = "identifier"
	nodePropertyIdent  = "property_identifier"
)

// parserCache reuses one tree-sitter parser per grammar. A single
// extraction pass is sequential, so a mutex-guarded map is enough.
type parserCache struct {
	mu      sync.Mutex
	parsers map[string]*sitter.Parser
}

func (c *parserCache) get(name string) (*sitter.Parser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if parser, ok := c.parsers[name]; ok {
		return parser, nil
	}

	lang := language(name)
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", errLanguageNotAvailable, name)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	if c.parsers == nil {
		c.parsers = make(map[string]*sitter.Parser)
	}

	c.parsers[name] = parser

	return parser, nil
}

// extractScript parses content with the named grammar and walks the
// resulting tree for class attributes and allowlisted helper calls.
func (e *Extractor) extractScript(content []byte, grammar string, sink *candidate.Set) error {
	parser, err := e.parsers.get(grammar)
	if err != nil {
		return err
	}

	tree, parseErr := parser.ParseString(context.Background(), nil, content)
	if parseErr != nil {
		return fmt.Errorf("parsing script: %w", parseErr)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return errNoRootNode
	}

	e.walkScript(root, content, sink)

	return nil
}

// walkScript visits every named node. Class attributes and helper calls
// feed the expression extractor; the walk itself never stops early, so
// constructs nested inside ignored expressions are still reached.
func (e *Extractor) walkScript(n sitter.Node, src []byte, sink *candidate.Set) {
	switch n.Type() {
	case nodeJSXAttribute:
		e.jsxAttribute(n, src, sink)
	case nodeCallExpression:
		e.helperCall(n, src, sink)
	}

	for idx := range n.NamedChildCount() {
		e.walkScript(n.NamedChild(idx), src, sink)
	}
}

// jsxAttribute handles a markup attribute node. Only class/className
// attributes contribute; string values extract directly, expression
// values recurse through the expression rules.
func (e *Extractor) jsxAttribute(n sitter.Node, src []byte, sink *candidate.Set) {
	if n.NamedChildCount() < 2 {
		return
	}

	name := n.NamedChild(0)
	if name.Type() != nodePropertyIdent {
		return
	}

	if attr := name.Content(src); attr != attrClass && attr != attrClassComponent {
		return
	}

	e.expression(n.NamedChild(1), src, sink)
}

// helperCall recurses into every argument of a call whose callee name
// is in the helper allowlist.
func (e *Extractor) helperCall(n sitter.Node, src []byte, sink *candidate.Set) {
	callee := n.ChildByFieldName("function")
	if callee.IsNull() {
		return
	}

	if _, ok := e.helpers[calleeName(callee, src)]; !ok {
		return
	}

	args := n.ChildByFieldName("arguments")
	if args.IsNull() {
		return
	}

	for idx := range args.NamedChildCount() {
		e.expression(args.NamedChild(idx), src, sink)
	}
}

// calleeName resolves the name a call is made under: a bare identifier,
// or the property of a member access (styles.cn → cn).
func calleeName(callee sitter.Node, src []byte) string {
	switch callee.Type() {
	case nodeIdentifier:
		return callee.Content(src)
	case nodeMemberExpr:
		property := callee.ChildByFieldName("property")
		if !property.IsNull() {
			return property.Content(src)
		}
	}

	return ""
}

// expression applies the conservative extraction rules of §4.2 to an
// expression node: every branch contributes, nothing is evaluated.
func (e *Extractor) expression(n sitter.Node, src []byte, sink *candidate.Set) {
	if n.IsNull() {
		return
	}

	switch n.Type() {
	case nodeString:
		addTokens(stringText(n, src), sink)
	case nodeTemplateString:
		e.templateString(n, src, sink)
	case nodeBinaryExpr:
		e.concatenation(n, src, sink)
	case nodeArray:
		for idx := range n.NamedChildCount() {
			e.expression(n.NamedChild(idx), src, sink)
		}
	case nodeObject:
		e.objectLiteral(n, src, sink)
	case nodeTernaryExpr:
		e.expression(n.ChildByFieldName("consequence"), src, sink)
		e.expression(n.ChildByFieldName("alternative"), src, sink)
	case nodeParenExpr, nodeJSXExpression:
		for idx := range n.NamedChildCount() {
			e.expression(n.NamedChild(idx), src, sink)
		}
	case nodeCallExpression:
		e.helperCall(n, src, sink)
	}
}

// concatenation recurses into both operands of a `+` expression. Other
// binary operators contribute nothing.
func (e *Extractor) concatenation(n sitter.Node, src []byte, sink *candidate.Set) {
	operator := n.ChildByFieldName("operator")
	if operator.IsNull() || operator.Type() != "+" {
		return
	}

	e.expression(n.ChildByFieldName("left"), src, sink)
	e.expression(n.ChildByFieldName("right"), src, sink)
}

// templateString extracts the literal fragments of a template and walks
// every embedded substitution.
func (e *Extractor) templateString(n sitter.Node, src []byte, sink *candidate.Set) {
	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)

		switch child.Type() {
		case nodeStringFragment:
			addTokens(child.Content(src), sink)
		case nodeTemplateSubst:
			for sub := range child.NamedChildCount() {
				e.expression(child.NamedChild(sub), src, sink)
			}
		}
	}
}

// objectLiteral implements the object-as-class-map pattern: literal
// string/template keys are candidates themselves, plain-assignment
// values are recursed into, and method-style entries contribute their
// name.
func (e *Extractor) objectLiteral(n sitter.Node, src []byte, sink *candidate.Set) {
	for idx := range n.NamedChildCount() {
		entry := n.NamedChild(idx)

		switch entry.Type() {
		case nodePair:
			key := entry.ChildByFieldName("key")
			if !key.IsNull() {
				switch key.Type() {
				case nodeString:
					addTokens(stringText(key, src), sink)
				case nodeTemplateString:
					e.templateString(key, src, sink)
				}
			}

			e.expression(entry.ChildByFieldName("value"), src, sink)
		case nodeMethodDef:
			name := entry.ChildByFieldName("name")
			if name.IsNull() {
				continue
			}

			switch name.Type() {
			case nodePropertyIdent:
				addTokens(name.Content(src), sink)
			case nodeString:
				addTokens(stringText(name, src), sink)
			case nodeTemplateString:
				e.templateString(name, src, sink)
			}
		}
	}
}

// stringText returns the unquoted text of a string literal by joining
// its fragment children.
func stringText(n sitter.Node, src []byte) string {
	text := ""

	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)
		if child.Type() == nodeStringFragment {
			text += child.Content(src)
		}
	}

	return text
}
