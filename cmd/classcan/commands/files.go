package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"classcan/internal/config"
	"classcan/internal/scan"
)

// NewFilesCommand creates the files command, a debugging aid that shows
// which files each content pattern resolves to.
func NewFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "Show which files the content patterns resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			return runFiles(cmd.OutOrStdout(), configPath)
		},
	}
}

func runFiles(out io.Writer, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	resolver := scan.NewResolver(scan.NewWalker())

	writer := table.NewWriter()
	writer.SetOutputMirror(out)
	writer.AppendHeader(table.Row{"Pattern", "File"})

	total := 0

	for _, pattern := range cfg.Patterns {
		matches := resolver.Resolve([]string{pattern})
		total += len(matches)

		if len(matches) == 0 {
			writer.AppendRow(table.Row{pattern, color.YellowString("(no matches)")})

			continue
		}

		for _, path := range sortedKeys(matches) {
			writer.AppendRow(table.Row{pattern, path})
		}
	}

	writer.Render()

	color.New(color.FgGreen).Fprintf(out, "%d files from %d patterns\n", total, len(cfg.Patterns))

	return nil
}
