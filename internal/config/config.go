// Package config loads and normalizes the scan configuration: the
// content patterns to resolve and the manual safelist.
package config

// DefaultHelpers is the default allowlist of call-expression names
// recognized as class-string combinators during script extraction.
var DefaultHelpers = []string{
	"clsx",
	"classnames",
	"classNames",
	"cn",
	"cva",
	"cx",
	"tw",
	"twJoin",
	"twMerge",
}

// Config is the normalized scan configuration. It is produced fresh on
// every Load; nothing is cached across invocations.
type Config struct {
	// Patterns is the ordered list of content patterns to resolve.
	Patterns []string

	// Safelist holds the literal safelist tokens. Pattern-typed
	// safelist entries are accepted syntactically but not expanded, so
	// they never appear here.
	Safelist []string

	// Helpers is the helper-call allowlist for script extraction. Empty
	// means DefaultHelpers.
	Helpers []string
}

// HelperSet returns the effective helper allowlist as a membership set.
func (c *Config) HelperSet() map[string]struct{} {
	helpers := c.Helpers
	if len(helpers) == 0 {
		helpers = DefaultHelpers
	}

	set := make(map[string]struct{}, len(helpers))
	for _, name := range helpers {
		set[name] = struct{}{}
	}

	return set
}
