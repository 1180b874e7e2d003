package extract

import (
	"strings"

	"classcan/internal/candidate"
)

// applyDirective is the stylesheet composition directive whose
// arguments name utility classes.
const applyDirective = "@apply"

// extractStylesheet scans for composition directives (`@apply a b c;`)
// and adds every whitespace-separated token up to the statement
// terminator.
func extractStylesheet(src string, sink *candidate.Set) {
	pos := 0

	for {
		idx := strings.Index(src[pos:], applyDirective)
		if idx < 0 {
			return
		}

		start := pos + idx + len(applyDirective)
		end := strings.IndexAny(src[start:], ";}")

		var args string

		if end < 0 {
			args = src[start:]
			pos = len(src)
		} else {
			args = src[start : start+end]
			pos = start + end + 1
		}

		addTokens(args, sink)
	}
}
