package domain

import (
	"fmt"
	"strings"

	apperrors "mihrab/internal/platform/errors"
)

const Target = 33

type Phrase string

const (
	SubhanAllah   Phrase = "subhanAllah"
	Alhamdulillah Phrase = "alhamdulillah"
	AllahuAkbar   Phrase = "allahuAkbar"
)

// Phrases is the fixed display and storage order.
var Phrases = [...]Phrase{SubhanAllah, Alhamdulillah, AllahuAkbar}

type PhraseInfo struct {
	Title   string
	Arabic  string
	Meaning string
}

var phraseInfo = map[Phrase]PhraseInfo{
	SubhanAllah:   {Title: "Subhan Allah", Arabic: "سبحان الله", Meaning: "Glory be to Allah"},
	Alhamdulillah: {Title: "Alhamdulillah", Arabic: "الحمد لله", Meaning: "All praise is due to Allah"},
	AllahuAkbar:   {Title: "Allahu Akbar", Arabic: "الله أكبر", Meaning: "Allah is the Greatest"},
}

func (p Phrase) Info() PhraseInfo { return phraseInfo[p] }

// ParsePhrase accepts the storage key in any case, or its 1-based position.
func ParsePhrase(raw string) (Phrase, error) {
	raw = strings.TrimSpace(raw)
	for i, p := range Phrases {
		if strings.EqualFold(raw, string(p)) || raw == fmt.Sprint(i+1) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown phrase %q", apperrors.ErrInvalidInput, raw)
}

// Counter is a bounded tally. Completed holds exactly when Count reached
// Target, after which Increment is a no-op.
type Counter struct {
	Count     int  `json:"count"`
	Completed bool `json:"completed"`
}

func (c Counter) Increment() (Counter, bool) {
	if c.Completed {
		return c, false
	}
	next := c.Count + 1
	return Counter{Count: next, Completed: next >= Target}, true
}

// Normalize repairs a rehydrated counter so the completion invariant holds.
func (c Counter) Normalize() Counter {
	if c.Count < 0 {
		c.Count = 0
	}
	if c.Count > Target {
		c.Count = Target
	}
	c.Completed = c.Count >= Target
	return c
}

type Set struct {
	counters [len(Phrases)]Counter
}

func NewSet(subhanAllah, alhamdulillah, allahuAkbar Counter) Set {
	return Set{counters: [len(Phrases)]Counter{subhanAllah.Normalize(), alhamdulillah.Normalize(), allahuAkbar.Normalize()}}
}

func index(p Phrase) int {
	for i, candidate := range Phrases {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (s Set) Get(p Phrase) Counter {
	if i := index(p); i >= 0 {
		return s.counters[i]
	}
	return Counter{}
}

// Increment advances one counter and leaves the others untouched.
func (s Set) Increment(p Phrase) (Set, bool, error) {
	i := index(p)
	if i < 0 {
		return s, false, fmt.Errorf("%w: unknown phrase %q", apperrors.ErrInvalidInput, p)
	}
	next, changed := s.counters[i].Increment()
	s.counters[i] = next
	return s, changed, nil
}

// ResetAll returns every counter to zero at once.
func (s Set) ResetAll() Set {
	return Set{}
}

func (s Set) AllCompleted() bool {
	for _, c := range s.counters {
		if !c.Completed {
			return false
		}
	}
	return true
}

func (s Set) Total() int {
	total := 0
	for _, c := range s.counters {
		total += c.Count
	}
	return total
}
