package constraints

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Slot is the condition one position of a word has to satisfy.
type Slot interface {
	Match(c byte) bool
	// String renders the slot as a regular expression fragment.
	String() string
}

type anySlot struct{}

func (anySlot) Match(c byte) bool { return c >= 'a' && c <= 'z' }
func (anySlot) String() string    { return "[a-z]" }

type fixedSlot byte

func (f fixedSlot) Match(c byte) bool { return c == byte(f) }
func (f fixedSlot) String() string    { return string(byte(f)) }

// exceptSlot matches any letter outside the set.
type exceptSlot letterSet

func (e exceptSlot) Match(c byte) bool {
	return c >= 'a' && c <= 'z' && !letterSet(e).has(c)
}

func (e exceptSlot) String() string {
	return "(?:(?![" + letterSet(e).String() + "])[a-z])"
}

// Pattern is a compiled constraint set: one slot per position plus letters
// that must occur somewhere in the word.
type Pattern struct {
	Slots    []Slot
	required letterSet
}

// Compile turns the set into a search pattern.
//
// A fixed position matches only its letter. Any other position rejects the
// letters recorded as present-elsewhere for it plus the blackout. Letters
// that are fixed somewhere or required are never treated as blacked out.
func (s *Set) Compile() *Pattern {
	required := s.required()
	var fixed letterSet
	for _, c := range s.fixed {
		fixed.add(c)
	}
	blackout := s.blackout &^ (fixed | required)

	p := &Pattern{
		Slots:    make([]Slot, len(s.fixed)),
		required: required,
	}
	for i := range s.fixed {
		switch {
		case s.fixed[i] != 0:
			p.Slots[i] = fixedSlot(s.fixed[i])
		case s.present[i] == 0 && blackout == 0:
			p.Slots[i] = anySlot{}
		default:
			p.Slots[i] = exceptSlot(s.present[i] | blackout)
		}
	}
	log.Debug().Stringer("pattern", p).Msg("compiled")
	return p
}

// Required returns the letters every match must contain.
func (p *Pattern) Required() string { return p.required.String() }

// Match reports whether w satisfies every slot and contains every required
// letter.
func (p *Pattern) Match(w string) bool {
	if len(w) != len(p.Slots) {
		return false
	}
	var seen letterSet
	for i := 0; i < len(w); i++ {
		if !p.Slots[i].Match(w[i]) {
			return false
		}
		seen.add(w[i])
	}
	return p.required&^seen == 0
}

// String renders the pattern as an equivalent regular expression, with a
// look-ahead per required letter.
func (p *Pattern) String() string {
	var sb strings.Builder
	if p.required != 0 {
		sb.WriteString("(?:")
		for _, c := range p.required.String() {
			sb.WriteString("(?=.*")
			sb.WriteRune(c)
			sb.WriteString(")")
		}
		sb.WriteString(")")
	}
	sb.WriteString("^")
	for _, slot := range p.Slots {
		sb.WriteString(slot.String())
	}
	sb.WriteString("$")
	return sb.String()
}

// Filter returns the words that match p, in their original order.
func Filter(words []string, p *Pattern) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if p.Match(w) {
			out = append(out, w)
		}
	}
	return out
}
