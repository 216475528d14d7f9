package ranking

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

var smallDict = []string{"crane", "slate", "plane", "shine", "grape"}

func TestModelCounts(t *testing.T) {
	is := is.New(t)
	m := NewModel(smallDict)
	is.Equal(m.Count('e'), 5)
	is.Equal(m.Count('a'), 4)
	is.Equal(m.Count('n'), 3)
	is.Equal(m.Count('z'), 0)
	is.Equal(m.Count('?'), 0)
	// Equal counts keep the order the letters were first seen in.
	is.Equal(m.Letters(), "eanrslpcthig")
}

func TestModelTiers(t *testing.T) {
	m := NewModel(smallDict)
	assert.Equal(t, []string{"e", "a", "n", "rslp", "cthig", "", ""}, m.Tiers())
}

func TestTierBoundaryIsFloored(t *testing.T) {
	// 20 -> threshold 18, 18 -> threshold 16.
	word := strings.Repeat("a", 20) + strings.Repeat("b", 19) +
		strings.Repeat("c", 18) + strings.Repeat("d", 17) + strings.Repeat("e", 16)
	m := NewModel([]string{word})
	assert.Equal(t, []string{"ab", "cd", "e", "", "", "", ""}, m.Tiers())
}

func TestTiesShareATier(t *testing.T) {
	m := NewModel([]string{"ba", "ab"})
	assert.Equal(t, "ba", m.Tiers()[0])
}

func TestManyTiersClampWeight(t *testing.T) {
	is := is.New(t)
	counts := []int{100, 80, 60, 40, 30, 20, 10, 5, 2}
	var sb strings.Builder
	for i, n := range counts {
		sb.WriteString(strings.Repeat(string(rune('a'+i)), n))
	}
	m := NewModel([]string{sb.String()})
	tiers := m.Tiers()
	is.Equal(len(tiers), 9)
	is.Equal(tiers[8], "i")

	weights := []int{7, 6, 5, 4, 3, 2, 1, 1, 1, 1}
	for tier, w := range weights {
		is.Equal(Weight(tier), w)
	}
	// One of each letter: the distinct count, then one entry per tier.
	is.Equal(m.Score("abcdefghi"), []int{72, 7, 6, 5, 4, 3, 2, 1, 1, 1})
}

func TestScore(t *testing.T) {
	m := NewModel(smallDict)
	assert.Equal(t, []int{40, 7, 6, 5, 4, 0, 0, 0, 3, 0, 0, 0, 0}, m.Score("crane"))
	assert.Equal(t, []int{40, 7, 0, 5, 0, 4, 0, 0, 0, 0, 3, 3, 0}, m.Score("shine"))
	// Repeated letters count twice but only once towards distinct.
	assert.Equal(t, []int{16, 14, 0, 0, 0, 12, 0, 0, 0, 0, 0, 0, 0}, m.Score("esses"))
}

func TestRank(t *testing.T) {
	is := is.New(t)
	input := append([]string{}, smallDict...)
	is.Equal(Rank(input), []string{"crane", "plane", "grape", "slate", "shine"})
	is.Equal(input, smallDict)
}

func TestDistinctLettersComeFirst(t *testing.T) {
	is := is.New(t)
	is.Equal(Rank([]string{"eeeee", "abcde"}), []string{"abcde", "eeeee"})
	is.Equal(Rank([]string{"esses", "eerie", "rinse"}), []string{"rinse", "eerie", "esses"})
}

func TestRankIsStable(t *testing.T) {
	is := is.New(t)
	is.Equal(Rank([]string{"ba", "ab"}), []string{"ba", "ab"})
	is.Equal(Rank([]string{"ab", "ba"}), []string{"ab", "ba"})
}

func TestRankEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Rank(nil)), 0)
}
