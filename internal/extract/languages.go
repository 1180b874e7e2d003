package extract

import (
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Grammar names for script parsing. JSX-bearing sources go through the
// tsx grammar; plain TypeScript needs its own grammar because JSX and
// type assertions are ambiguous in a single parse.
const (
	grammarJavaScript = "javascript"
	grammarTypeScript = "typescript"
	grammarTSX        = "tsx"
)

var languageFuncs = map[string]func() unsafe.Pointer{
	grammarJavaScript: javascript.GetLanguage,
	grammarTypeScript: typescript.GetLanguage,
	grammarTSX:        tsx.GetLanguage,
}

var languageCache sync.Map

// language returns the tree-sitter Language for the given grammar name,
// or nil if not supported.
func language(name string) *sitter.Language {
	if cached, ok := languageCache.Load(name); ok {
		lang, castOK := cached.(*sitter.Language)
		if castOK {
			return lang
		}
	}

	fn, ok := languageFuncs[name]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	languageCache.Store(name, lang)

	return lang
}

// grammarFor maps a file extension (without dot) to the script grammar
// used to parse it.
func grammarFor(ext string) string {
	switch ext {
	case "ts", "mts", "cts":
		return grammarTypeScript
	case "js", "mjs", "cjs":
		return grammarJavaScript
	default:
		return grammarTSX
	}
}
