package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classcan/internal/candidate"
	"classcan/internal/config"
	"classcan/internal/extract"
)

func extractKind(t *testing.T, content string, kind extract.Kind) *candidate.Set {
	t.Helper()

	cfg := &config.Config{}
	extractor := extract.New(cfg.HelperSet())
	sink := candidate.NewSet()

	require.NoError(t, extractor.Extract([]byte(content), kind, sink))

	return sink
}

func TestMarkup_ClassAttribute(t *testing.T) {
	t.Parallel()

	sink := extractKind(t, `<div class="flex p-4 bg-white">hi</div>`, extract.KindMarkup)

	assert.Equal(t, []string{"bg-white", "flex", "p-4"}, sink.Sorted())
}

func TestMarkup_ClassNameAttribute(t *testing.T) {
	t.Parallel()

	sink := extractKind(t, `<Button className="mt-2 text-sm" />`, extract.KindMarkup)

	assert.Equal(t, []string{"mt-2", "text-sm"}, sink.Sorted())
}

func TestMarkup_SingleQuotes(t *testing.T) {
	t.Parallel()

	sink := extractKind(t, `<div class='grid gap-2'>`, extract.KindMarkup)

	assert.Equal(t, []string{"gap-2", "grid"}, sink.Sorted())
}

func TestMarkup_FiltersImplausibleTokens(t *testing.T) {
	t.Parallel()

	sink := extractKind(t, `<div class="Widget p-4 awesome">`, extract.KindMarkup)

	assert.Equal(t, []string{"p-4"}, sink.Sorted())
}

func TestMarkup_MultipleAttributes(t *testing.T) {
	t.Parallel()

	content := `<div class="p-1"><span class="p-2"></span><i className="p-3"></i></div>`
	sink := extractKind(t, content, extract.KindMarkup)

	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, sink.Sorted())
}

func TestMarkup_IgnoresUnquotedAndUnterminated(t *testing.T) {
	t.Parallel()

	sink := extractKind(t, `<div class=flex> <div class="p-4`, extract.KindMarkup)

	assert.Equal(t, 0, sink.Len())
}

func TestMarkup_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	content := `<div class="flex p-4"><span className="mt-2 flex"></span></div>`

	first := extractKind(t, content, extract.KindMarkup)
	second := extractKind(t, content, extract.KindMarkup)

	assert.True(t, first.Equal(second))
}
