// Package ranking orders candidate words by a letter frequency heuristic.
//
// Letters are counted over all candidates and grouped into tiers: walking the
// letters from most to least frequent, a new tier starts whenever a count
// drops to 90% (floored) of the count that opened the current tier. Tier 0 is
// weighted 7, tier 1 is weighted 6 and so on down to a floor of 1.
//
// A word's score is a vector compared lexicographically: the number of
// distinct letters times 8, then for every tiered letter in order, the
// letter's count in the word times its tier weight.
package ranking

import (
	"slices"
)

const (
	// MinTiers is the number of tier buckets always reported, even when the
	// counts produce fewer tiers.
	MinTiers = 7

	DistinctWeight = 8
	TopTierWeight  = 7
	tierStep       = 0.9
)

// Model is the letter frequency model of one candidate list.
type Model struct {
	counts [26]int
	order  []byte
	tiers  [][]byte
}

// NewModel counts the letters of words and groups them into tiers.
func NewModel(words []string) *Model {
	m := &Model{}
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			c := w[i]
			if c < 'a' || c > 'z' {
				continue
			}
			if m.counts[c-'a'] == 0 {
				m.order = append(m.order, c)
			}
			m.counts[c-'a']++
		}
	}
	// Most frequent first; equal counts keep first appearance order.
	slices.SortStableFunc(m.order, func(a, b byte) int {
		return m.counts[b-'a'] - m.counts[a-'a']
	})

	m.tiers = make([][]byte, MinTiers)
	tier, anchor := 0, 0
	for _, c := range m.order {
		count := m.counts[c-'a']
		if anchor == 0 {
			anchor = count
		}
		if count <= int(tierStep*float64(anchor)) {
			tier++
			anchor = count
		}
		for len(m.tiers) <= tier {
			m.tiers = append(m.tiers, nil)
		}
		m.tiers[tier] = append(m.tiers[tier], c)
	}
	return m
}

// Count returns how often c occurs across the candidates.
func (m *Model) Count(c byte) int {
	if c < 'a' || c > 'z' {
		return 0
	}
	return m.counts[c-'a']
}

// Letters returns the counted letters, most frequent first.
func (m *Model) Letters() string { return string(m.order) }

// Tiers returns the letters of each tier. There are at least MinTiers
// entries; trailing ones may be empty.
func (m *Model) Tiers() []string {
	out := make([]string, len(m.tiers))
	for i, t := range m.tiers {
		out[i] = string(t)
	}
	return out
}

// Weight returns the weight of a tier.
func Weight(tier int) int {
	return max(TopTierWeight-tier, 1)
}

// Score returns the ranking vector of w.
func (m *Model) Score(w string) []int {
	var inWord [26]int
	distinct := 0
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			continue
		}
		if inWord[c-'a'] == 0 {
			distinct++
		}
		inWord[c-'a']++
	}
	score := make([]int, 1, 1+len(m.order))
	score[0] = distinct * DistinctWeight
	for tier, letters := range m.tiers {
		weight := Weight(tier)
		for _, c := range letters {
			score = append(score, inWord[c-'a']*weight)
		}
	}
	return score
}

type scored struct {
	word  string
	score []int
}

// Rank returns words sorted by descending score. Ties keep their input
// order. The input slice is left untouched.
func Rank(words []string) []string {
	return NewModel(words).Rank(words)
}

// Rank sorts words by this model's scores.
func (m *Model) Rank(words []string) []string {
	items := make([]scored, len(words))
	for i, w := range words {
		items[i] = scored{word: w, score: m.Score(w)}
	}
	slices.SortStableFunc(items, func(a, b scored) int {
		return slices.Compare(b.score, a.score)
	})
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].word
	}
	return out
}
