package extract

import (
	"strings"

	"classcan/internal/candidate"
)

// Attribute spellings recognized in markup. "class" must be checked
// after "className" since it is a prefix of it.
const (
	attrClass          = "class"
	attrClassComponent = "className"
)

// extractMarkup scans for class attribute assignments shaped `class="…"`
// or `className="…"` (single or double quoted) and adds every
// whitespace-separated token of the quoted value.
func extractMarkup(src string, sink *candidate.Set) {
	pos := 0

	for {
		idx := strings.Index(src[pos:], attrClass)
		if idx < 0 {
			return
		}

		cursor := pos + idx + len(attrClass)
		pos = cursor

		// Component-markup variant.
		if rest := src[cursor:]; strings.HasPrefix(rest, attrClassComponent[len(attrClass):]) {
			cursor += len(attrClassComponent) - len(attrClass)
		}

		value, ok := quotedValue(src[cursor:])
		if !ok {
			continue
		}

		addTokens(value, sink)
	}
}

// quotedValue reads `="…"` or `='…'` from the start of rest, returning
// the unquoted value.
func quotedValue(rest string) (string, bool) {
	if len(rest) < 2 || rest[0] != '=' {
		return "", false
	}

	quote := rest[1]
	if quote != '"' && quote != '\'' {
		return "", false
	}

	end := strings.IndexByte(rest[2:], quote)
	if end < 0 {
		return "", false
	}

	return rest[2 : 2+end], true
}
