package braille_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/tactileworks/brailletutor/internal/braille"
)

// The full Grade-1 alphabet, written out dot by dot so the test is independent
// of how the table composes its masks.
var alphabetDots = []struct {
	letter string
	dots   []int
}{
	{"A", []int{1}},
	{"B", []int{1, 2}},
	{"C", []int{1, 4}},
	{"D", []int{1, 4, 5}},
	{"E", []int{1, 5}},
	{"F", []int{1, 2, 4}},
	{"G", []int{1, 2, 4, 5}},
	{"H", []int{1, 2, 5}},
	{"I", []int{2, 4}},
	{"J", []int{2, 4, 5}},
	{"K", []int{1, 3}},
	{"L", []int{1, 2, 3}},
	{"M", []int{1, 3, 4}},
	{"N", []int{1, 3, 4, 5}},
	{"O", []int{1, 3, 5}},
	{"P", []int{1, 2, 3, 4}},
	{"Q", []int{1, 2, 3, 4, 5}},
	{"R", []int{1, 2, 3, 5}},
	{"S", []int{2, 3, 4}},
	{"T", []int{2, 3, 4, 5}},
	{"U", []int{1, 3, 6}},
	{"V", []int{1, 2, 3, 6}},
	{"W", []int{2, 4, 5, 6}},
	{"X", []int{1, 3, 4, 6}},
	{"Y", []int{1, 3, 4, 5, 6}},
	{"Z", []int{1, 3, 5, 6}},
}

func TestPatternForFullAlphabet(t *testing.T) {
	for i, tc := range alphabetDots {
		t.Run(tc.letter, func(t *testing.T) {
			p, err := PatternFor(i + 1)
			require.NoError(t, err)

			var want Pattern
			for _, d := range tc.dots {
				want |= Dot(d)
			}
			assert.Equal(t, want, p, "wrong cell for %s", tc.letter)

			for n := 1; n <= NumDots; n++ {
				assert.Equal(t, contains(tc.dots, n), p.Has(Dot(n)),
					"%s dot %d", tc.letter, n)
			}
		})
	}
}

func TestPatternForOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 27, 100} {
		_, err := PatternFor(n)
		assert.Error(t, err, "letter %d should be rejected", n)
	}
}

func TestPatternString(t *testing.T) {
	p, err := PatternFor(15) // O
	require.NoError(t, err)
	assert.Equal(t, "dots 1-3-5", p.String())
	assert.Equal(t, "blank", Pattern(0).String())
}

func TestLetterNames(t *testing.T) {
	assert.Equal(t, "A", Letter(1))
	assert.Equal(t, "Z", Letter(26))
	assert.Equal(t, "?", Letter(0))
	assert.Equal(t, "?", Letter(27))
}

func contains(s []int, n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}
