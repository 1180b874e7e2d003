// Package commands implements the classcan CLI subcommands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"classcan/internal/candidate"
	"classcan/internal/config"
	"classcan/internal/extract"
	"classcan/internal/scan"
)

// Output formats for scan results.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var errUnknownFormat = errors.New("unknown output format (want table, json, or yaml)")

// scanResult is the marshaled form of a completed scan.
type scanResult struct {
	Files      int      `json:"files" yaml:"files"`
	Bytes      uint64   `json:"bytes" yaml:"bytes"`
	Safelist   []string `json:"safelist,omitempty" yaml:"safelist,omitempty"`
	Candidates []string `json:"candidates" yaml:"candidates"`
}

// NewScanCommand creates the scan command: resolve content patterns,
// extract candidates from every resolved file, and print the set.
func NewScanCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Resolve content patterns and extract the candidate set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			return runScan(cmd.OutOrStdout(), configPath, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, or yaml")

	return cmd
}

func runScan(out io.Writer, configPath, format string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	result, err := collect(cfg)
	if err != nil {
		return err
	}

	switch format {
	case formatTable:
		renderTable(out, result)

		return nil
	case formatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	case formatYAML:
		data, marshalErr := yaml.Marshal(result)
		if marshalErr != nil {
			return fmt.Errorf("marshal scan result: %w", marshalErr)
		}

		_, writeErr := out.Write(data)

		return writeErr
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// collect runs the scan half of the pipeline: pattern resolution plus
// per-file extraction, with the safelist unioned in.
func collect(cfg *config.Config) (*scanResult, error) {
	resolver := scan.NewResolver(scan.NewWalker())
	files := resolver.Resolve(cfg.Patterns)

	extractor := extract.New(cfg.HelperSet())
	candidates := candidate.NewSet()

	var bytesScanned uint64

	for _, path := range sortedKeys(files) {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("reading source file: %w", readErr)
		}

		bytesScanned += uint64(len(content))

		if err := extractor.ExtractFile(path, content, candidates); err != nil {
			return nil, fmt.Errorf("extracting from %s: %w", path, err)
		}
	}

	for _, token := range cfg.Safelist {
		candidates.Add(token)
	}

	slog.Debug("scan finished", "files", len(files), "candidates", candidates.Len())

	return &scanResult{
		Files:      len(files),
		Bytes:      bytesScanned,
		Safelist:   cfg.Safelist,
		Candidates: candidates.Sorted(),
	}, nil
}

func renderTable(out io.Writer, result *scanResult) {
	writer := table.NewWriter()
	writer.SetOutputMirror(out)
	writer.AppendHeader(table.Row{"Candidate"})

	for _, token := range result.Candidates {
		writer.AppendRow(table.Row{token})
	}

	writer.Render()

	color.New(color.FgGreen).Fprintf(out, "%d candidates from %d files (%s scanned)\n",
		len(result.Candidates), result.Files, humanize.Bytes(result.Bytes))
}

func sortedKeys(files map[string]struct{}) []string {
	keys := make([]string, 0, len(files))
	for key := range files {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
