package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classcan/internal/candidate"
)

func TestSet_NoDuplicates(t *testing.T) {
	t.Parallel()

	set := candidate.NewSet()
	set.Add("flex")
	set.Add("flex")
	set.Add("p-4")

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"flex", "p-4"}, set.Sorted())
}

func TestSet_IgnoresEmptyToken(t *testing.T) {
	t.Parallel()

	set := candidate.NewSet()
	set.Add("")

	assert.Equal(t, 0, set.Len())
}

func TestSet_Equal(t *testing.T) {
	t.Parallel()

	a := candidate.NewSet()
	b := candidate.NewSet()

	for _, token := range []string{"flex", "p-4", "bg-white"} {
		a.Add(token)
	}

	for _, token := range []string{"bg-white", "flex", "p-4"} {
		b.Add(token)
	}

	assert.True(t, a.Equal(b))

	b.Add("hidden")
	assert.False(t, a.Equal(b))
}
