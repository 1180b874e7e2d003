package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classcan/internal/candidate"
)

func TestPlausible_UtilityShapes(t *testing.T) {
	t.Parallel()

	accepted := []string{
		"p-4",
		"bg-white",
		"md:hover:bg-gray-50",
		"w-[32rem]",
		"grid-cols-12",
		"translate-x-1/2",
		"@sm:flex-row",
		"text-sm/6",
		"bg-[#bada55]",
		"w-1%",
	}

	for _, token := range accepted {
		assert.True(t, candidate.Plausible(token), "expected %q to be plausible", token)
	}
}

func TestPlausible_KeywordAllowlist(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"flex", "grid", "hidden", "container", "truncate"} {
		assert.True(t, candidate.Plausible(token), "expected keyword %q to be plausible", token)
	}
}

func TestPlausible_RejectsProse(t *testing.T) {
	t.Parallel()

	rejected := []string{
		"Hello",
		"The",
		"hello",
		"world",
		"BG-WHITE",
		"p-4,bg-white",
		"a b",
		"",
		"naïve",
	}

	for _, token := range rejected {
		assert.False(t, candidate.Plausible(token), "expected %q to be rejected", token)
	}
}

func TestPlausible_RejectsUppercase(t *testing.T) {
	t.Parallel()

	assert.False(t, candidate.Plausible("Bg-white"))
	assert.False(t, candidate.Plausible("md:Hover"))
}

func TestPlausible_StripsImportanceMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, candidate.Plausible("p-4!"))
	assert.True(t, candidate.Plausible("bg-white!important"))
	assert.False(t, candidate.Plausible("!"))
	assert.False(t, candidate.Plausible("!important"))
}
