package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// configName is the config file name searched when no explicit path is
// given.
const configName = "classcan"

// filesKey is the key of the canonical object form of the content
// declaration.
const filesKey = "files"

// rawConfig mirrors the on-disk shape before normalization. The content
// declaration historically comes in two forms, a bare pattern array and
// an object with a "files" field; both are accepted, the object form is
// canonical.
type rawConfig struct {
	Content  any      `mapstructure:"content"`
	Safelist []any    `mapstructure:"safelist"`
	Helpers  []string `mapstructure:"helpers"`
}

// Load reads the scan configuration from disk and normalizes it. Every
// call re-reads the file: there is no process-wide cache, so repeated
// calls observe config edits and are independently testable.
//
// If path is empty, a "classcan" config file (JSON or YAML) is searched
// in the working directory. A missing config file is not an error; an
// absent or malformed content declaration degrades to an empty pattern
// list rather than failing the build.
func Load(path string) (*Config, error) {
	viperCfg := viper.New()

	if path != "" {
		viperCfg.SetConfigFile(path)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(readErr, &notFound) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("read config: %w", readErr)
	}

	var raw rawConfig

	unmarshalErr := viperCfg.Unmarshal(&raw)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return normalize(&raw), nil
}

func normalize(raw *rawConfig) *Config {
	return &Config{
		Patterns: normalizeContent(raw.Content),
		Safelist: normalizeSafelist(raw.Safelist),
		Helpers:  raw.Helpers,
	}
}

// normalizeContent accepts both content forms. Anything else degrades
// to an empty pattern list.
func normalizeContent(content any) []string {
	switch value := content.(type) {
	case []any:
		return stringSlice(value)
	case map[string]any:
		if files, ok := value[filesKey].([]any); ok {
			return stringSlice(files)
		}
	}

	if content != nil {
		slog.Debug("malformed content declaration, scanning nothing")
	}

	return nil
}

// normalizeSafelist keeps literal string entries. Entries carrying a
// pattern or variants object are accepted but not expanded; that is a
// documented precision gap, not an error.
func normalizeSafelist(entries []any) []string {
	var safelist []string

	for _, entry := range entries {
		switch value := entry.(type) {
		case string:
			safelist = append(safelist, value)
		default:
			slog.Debug("skipping non-literal safelist entry", "entry", fmt.Sprintf("%v", entry))
		}
	}

	return safelist
}

func stringSlice(values []any) []string {
	var out []string

	for _, value := range values {
		if s, ok := value.(string); ok && s != "" {
			out = append(out, s)
		}
	}

	return out
}
