package candidate

import "strings"

// importantSuffix is the long form of the importance marker accepted at
// the end of a utility token.
const importantSuffix = "!important"

// keywordTokens are simple non-punctuated utility names admitted even
// though they carry none of the utility-shaped characters. Mostly layout
// primitives and single-word display utilities.
var keywordTokens = map[string]struct{}{
	"flex":        {},
	"grid":        {},
	"block":       {},
	"inline":      {},
	"hidden":      {},
	"contents":    {},
	"container":   {},
	"relative":    {},
	"absolute":    {},
	"fixed":       {},
	"sticky":      {},
	"static":      {},
	"grow":        {},
	"shrink":      {},
	"border":      {},
	"rounded":     {},
	"shadow":      {},
	"truncate":    {},
	"italic":      {},
	"underline":   {},
	"uppercase":   {},
	"lowercase":   {},
	"capitalize":  {},
	"transition":  {},
	"antialiased": {},
	"visible":     {},
	"invisible":   {},
	"isolate":     {},
}

// utilityShaped are the characters at least one of which must appear in
// a non-keyword token for it to look like a utility class rather than a
// prose word.
const utilityShaped = "0123456789:-[]/"

// allowedAlphabet is the full character set a token may be drawn from.
// Uppercase letters are deliberately absent; utility tokens are
// lowercase-only by convention.
const allowedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789@:_-[]/.#!%()"

// Plausible reports whether a token plausibly names a utility class.
// The heuristic trades recall for precision: it admits real utility
// tokens while rejecting ordinary prose words picked up incidentally
// from string literals. It is a pure function of the token's characters.
func Plausible(token string) bool {
	token = stripImportance(token)
	if token == "" {
		return false
	}

	if _, ok := keywordTokens[token]; ok {
		return true
	}

	shaped := false

	for _, r := range token {
		if !strings.ContainsRune(allowedAlphabet, r) {
			return false
		}

		if strings.ContainsRune(utilityShaped, r) {
			shaped = true
		}
	}

	return shaped
}

// stripImportance removes a trailing importance marker, either the bare
// "!" or the literal "!important" suffix.
func stripImportance(token string) string {
	if strings.HasSuffix(token, importantSuffix) {
		return strings.TrimSuffix(token, importantSuffix)
	}

	return strings.TrimSuffix(token, "!")
}
