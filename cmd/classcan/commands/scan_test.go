package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classcan/cmd/classcan/commands"
)

func newRoot(children ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "classcan", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("config", "c", "", "path to scan config file")
	root.AddCommand(children...)

	return root
}

func fixtureConfig(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte(`<div class="flex p-4">`), 0o644))

	configPath := filepath.Join(root, "classcan.json")
	configJSON := `{"content": ["` + filepath.ToSlash(src) + `/**"], "safelist": ["sr-only"]}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0o644))

	return configPath
}

func TestScanCommand_JSON(t *testing.T) {
	t.Parallel()

	configPath := fixtureConfig(t)

	var out bytes.Buffer

	root := newRoot(commands.NewScanCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"scan", "--config", configPath, "--format", "json"})

	require.NoError(t, root.Execute())

	var result struct {
		Files      int      `json:"files"`
		Candidates []string `json:"candidates"`
	}

	require.NoError(t, json.Unmarshal(out.Bytes(), &result))

	assert.Equal(t, 1, result.Files)
	assert.Equal(t, []string{"flex", "p-4", "sr-only"}, result.Candidates)
}

func TestScanCommand_UnknownFormat(t *testing.T) {
	t.Parallel()

	configPath := fixtureConfig(t)

	root := newRoot(commands.NewScanCommand())
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"scan", "--config", configPath, "--format", "csv"})

	assert.Error(t, root.Execute())
}

func TestFilesCommand(t *testing.T) {
	t.Parallel()

	configPath := fixtureConfig(t)

	var out bytes.Buffer

	root := newRoot(commands.NewFilesCommand())
	root.SetOut(&out)
	root.SetArgs([]string{"files", "--config", configPath})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "index.html")
}
