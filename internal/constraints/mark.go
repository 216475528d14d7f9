package constraints

import "strings"

// Mark is the feedback for one letter of a guess.
type Mark int

const (
	Absent Mark = iota
	Present
	Exact
)

func (m Mark) String() string {
	switch m {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Classify compares guess against secret position by position.
//
// Each position is judged on its own: a letter is Exact if it matches the
// secret at that position, Present if it occurs anywhere else in the secret,
// Absent otherwise. Repeated letters are not accounted for, so a letter that
// is Exact in one slot and typed again elsewhere is Present there too.
func Classify(guess, secret string) []Mark {
	marks := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		switch {
		case i < len(secret) && secret[i] == c:
			marks[i] = Exact
		case strings.IndexByte(secret, c) >= 0:
			marks[i] = Present
		default:
			marks[i] = Absent
		}
	}
	return marks
}

// Solved reports whether every mark is Exact.
func Solved(marks []Mark) bool {
	for _, m := range marks {
		if m != Exact {
			return false
		}
	}
	return len(marks) > 0
}
