package services

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedLetters(s string) string {
	r := []rune(strings.ToLower(s))
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

func TestJumble_SeededReproducible(t *testing.T) {
	const content = "This soup needs way more garlic"

	a := Jumble(content, rand.New(rand.NewSource(42)))
	b := Jumble(content, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)

	c := Jumble(content, rand.New(rand.NewSource(43)))
	assert.NotEqual(t, a, c)
}

func TestJumble_NeverMatchesOriginal(t *testing.T) {
	const content = "absolutely delicious recipe"

	// Across many seeds the output must never be the stored text.
	for seed := int64(0); seed < 50; seed++ {
		out := Jumble(content, rand.New(rand.NewSource(seed)))
		assert.NotEqual(t, content, out, "seed %d leaked the original", seed)
	}
}

func TestJumble_PreservesLettersAndShape(t *testing.T) {
	const content = "Way too much salt"

	out := Jumble(content, rand.New(rand.NewSource(7)))

	// Same multiset of letters, same word count, nothing invented.
	assert.Equal(t, sortedLetters(content), sortedLetters(out))
	assert.Len(t, strings.Split(out, " "), 4)

	// First rune uppercased, everything after it lowercase.
	require.NotEmpty(t, out)
	assert.Equal(t, strings.ToUpper(out[:1]), out[:1])
	assert.Equal(t, strings.ToLower(out[1:]), out[1:])
}

// Inputs whose capitalized identity permutation matches the original
// ("Ab", "1a 2b") must still come back changed: the shuffle is redrawn
// whenever it lands on the stored text.
func TestJumble_CollisionProneInput(t *testing.T) {
	for _, content := range []string{"Ab", "1a 2b", "Abc"} {
		for seed := int64(0); seed < 50; seed++ {
			out := Jumble(content, rand.New(rand.NewSource(seed)))
			assert.NotEqual(t, content, out, "seed %d leaked %q", seed, content)
			assert.Equal(t, sortedLetters(content), sortedLetters(out))
		}
	}
}

// Case-folding can collapse an input to a single reachable arrangement.
// That arrangement is returned as-is, without spinning on the redraw.
func TestJumble_SingleArrangement(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	assert.Equal(t, "Aa", Jumble("Aa", rnd))
	assert.Equal(t, "A a", Jumble("A a", rnd))
	assert.Equal(t, "Aaa aaa", Jumble("aaa AAA", rnd))
}

func TestJumble_Degenerate(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	assert.Equal(t, "", Jumble("", rnd))
	assert.Equal(t, "   ", Jumble("   ", rnd))
	// Single character has no other permutation; accepted edge case.
	assert.Equal(t, "A", Jumble("a", rnd))
}

func TestRenderableContent(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))

	visible := models.Comment{Content: "Lovely crust", IsHidden: false}
	assert.Equal(t, "Lovely crust", RenderableContent(visible, rnd))

	hidden := models.Comment{Content: "Lovely crust", IsHidden: true}
	for i := 0; i < 10; i++ {
		out := RenderableContent(hidden, rnd)
		assert.NotEqual(t, hidden.Content, out)
	}
	// Obfuscation is a view transform: the stored field is untouched.
	assert.Equal(t, "Lovely crust", hidden.Content)
}
