// Package constraints keeps track of what feedback has revealed about the
// secret word and turns that knowledge into a search pattern over the
// dictionary.
package constraints

import (
	"strings"
)

// letterSet is a bitmask over a-z.
type letterSet uint32

func (s letterSet) has(c byte) bool {
	return c >= 'a' && c <= 'z' && s&(1<<(c-'a')) != 0
}

func (s *letterSet) add(c byte) {
	if c >= 'a' && c <= 'z' {
		*s |= 1 << (c - 'a')
	}
}

func (s *letterSet) addString(letters string) {
	for i := 0; i < len(letters); i++ {
		s.add(letters[i])
	}
}

func (s letterSet) String() string {
	var sb strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if s.has(c) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Set is the accumulated knowledge about the secret word: fixed letters per
// position, letters known to be present but not at a given position, and
// letters known to be absent everywhere (the blackout). It is only ever
// refined, never relaxed.
type Set struct {
	fixed    []byte
	present  []letterSet
	blackout letterSet
}

// NewSet returns an empty constraint set for words of the given length.
func NewSet(length int) *Set {
	return &Set{
		fixed:   make([]byte, length),
		present: make([]letterSet, length),
	}
}

func (s *Set) Length() int { return len(s.fixed) }

// Fix records that position pos holds letter c.
func (s *Set) Fix(pos int, c byte) {
	if c >= 'a' && c <= 'z' {
		s.fixed[pos] = c
	}
}

// Exclude records letters that are in the word but not at position pos.
func (s *Set) Exclude(pos int, letters string) {
	s.present[pos].addString(letters)
}

// Blackout records letters that do not occur in the word.
func (s *Set) Blackout(letters string) {
	s.blackout.addString(letters)
}

// Apply folds the feedback for one guess into the set.
func (s *Set) Apply(guess string, marks []Mark) {
	for i, m := range marks {
		if i >= len(s.fixed) || i >= len(guess) {
			break
		}
		c := guess[i]
		switch m {
		case Exact:
			s.Fix(i, c)
		case Present:
			s.present[i].add(c)
		default:
			s.blackout.add(c)
		}
	}
}

// Fixed returns the known letter at pos, or 0.
func (s *Set) Fixed(pos int) byte { return s.fixed[pos] }

// Excluded returns the present-elsewhere letters recorded for pos.
func (s *Set) Excluded(pos int) string { return s.present[pos].String() }

// BlackedOut returns the globally absent letters in alphabetical order.
func (s *Set) BlackedOut() string { return s.blackout.String() }

// Required returns every letter known to be somewhere in the word.
func (s *Set) Required() string { return s.required().String() }

func (s *Set) required() letterSet {
	var r letterSet
	for _, p := range s.present {
		r |= p
	}
	return r
}

// Empty reports whether nothing is known yet.
func (s *Set) Empty() bool {
	if s.blackout != 0 {
		return false
	}
	for i := range s.fixed {
		if s.fixed[i] != 0 || s.present[i] != 0 {
			return false
		}
	}
	return true
}

// Hints exports the set in the solver's hint notation: the fixed letter,
// "!" followed by the present-elsewhere letters, or "" when nothing is
// known about a position. The blackout is returned as the dud string.
func (s *Set) Hints() (hints []string, duds string) {
	hints = make([]string, len(s.fixed))
	for i := range s.fixed {
		switch {
		case s.fixed[i] != 0:
			hints[i] = string(s.fixed[i])
			// Present-elsewhere letters seen at a fixed position still
			// count as required.
			if s.present[i] != 0 {
				hints[i] += "!" + s.present[i].String()
			}
		case s.present[i] != 0:
			hints[i] = "!" + s.present[i].String()
		}
	}
	return hints, s.blackout.String()
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{
		fixed:    make([]byte, len(s.fixed)),
		present:  make([]letterSet, len(s.present)),
		blackout: s.blackout,
	}
	copy(c.fixed, s.fixed)
	copy(c.present, s.present)
	return c
}
