package stylesheet_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classcan/internal/stylesheet"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newResolver(workDir string) *stylesheet.Resolver {
	resolver := stylesheet.NewResolver()
	resolver.WorkDir = workDir

	return resolver
}

func TestLoad_BaseStylesheet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "tailwindcss", "index.css"), "@base;")

	content, err := newResolver(root).Load(context.Background(), "tailwindcss", "")
	require.NoError(t, err)

	assert.Equal(t, "@base;", content)
}

func TestLoad_NamedSubStylesheet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "tailwindcss", "utilities.css"), "@utilities;")

	content, err := newResolver(root).Load(context.Background(), "tailwindcss/utilities", "")
	require.NoError(t, err)

	assert.Equal(t, "@utilities;", content)
}

func TestLoad_RelativeToImportingFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "styles", "partial.css"), ".p{}")
	from := filepath.Join(root, "styles", "main.css")

	content, err := newResolver(root).Load(context.Background(), "./partial.css", from)
	require.NoError(t, err)
	assert.Equal(t, ".p{}", content)

	// Extension appended when omitted.
	content, err = newResolver(root).Load(context.Background(), "./partial", from)
	require.NoError(t, err)
	assert.Equal(t, ".p{}", content)
}

func TestLoad_ParentRelative(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shared.css"), ".s{}")
	from := filepath.Join(root, "styles", "main.css")

	content, err := newResolver(root).Load(context.Background(), "../shared", from)
	require.NoError(t, err)

	assert.Equal(t, ".s{}", content)
}

func TestLoad_BarePackageSpecifier(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "some-ui", "theme.css"), ".t{}")
	from := filepath.Join(root, "src", "main.css")

	content, err := newResolver(root).Load(context.Background(), "some-ui/theme.css", from)
	require.NoError(t, err)
	assert.Equal(t, ".t{}", content)

	content, err = newResolver(root).Load(context.Background(), "some-ui/theme", from)
	require.NoError(t, err)
	assert.Equal(t, ".t{}", content)
}

func TestLoad_PackageLookupWalksUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "kit", "base.css"), ".k{}")
	from := filepath.Join(root, "packages", "app", "src", "main.css")

	content, err := newResolver(root).Load(context.Background(), "kit/base", from)
	require.NoError(t, err)

	assert.Equal(t, ".k{}", content)
}

func TestLoad_FailureNamesEveryVariant(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	from := filepath.Join(root, "main.css")

	_, err := newResolver(root).Load(context.Background(), "./missing", from)
	require.Error(t, err)

	var resErr *stylesheet.ResolutionError
	require.ErrorAs(t, err, &resErr)

	assert.Equal(t, "./missing", resErr.Specifier)
	assert.Equal(t, []string{
		filepath.Join(root, "missing"),
		filepath.Join(root, "missing.css"),
	}, resErr.Attempted)
	assert.Contains(t, err.Error(), "./missing")
	assert.Contains(t, err.Error(), "missing.css")
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newResolver(t.TempDir()).Load(ctx, "tailwindcss", "")
	assert.True(t, errors.Is(err, context.Canceled))
}
