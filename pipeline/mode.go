package pipeline

import (
	"fmt"
	"strings"
)

// Mode is a user-selectable content filter. Active modes compose by
// logical AND; absent modes impose no constraint.
type Mode int

// Processing modes.
const (
	// ModeMerica keeps domestic and untagged records and drops
	// foreign-tagged ones, subject to per-account override rules.
	ModeMerica Mode = iota

	// ModeSports keeps records matching the sports-content predicate.
	ModeSports

	// ModeAllEnglish keeps records classified as English-language.
	ModeAllEnglish
)

func (m Mode) String() string {
	switch m {
	case ModeMerica:
		return "merica"
	case ModeSports:
		return "sports"
	case ModeAllEnglish:
		return "all-english"
	default:
		return "unknown"
	}
}

// ParseMode converts a config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "merica":
		return ModeMerica, nil
	case "sports":
		return ModeSports, nil
	case "all-english", "allenglish", "english":
		return ModeAllEnglish, nil
	default:
		return 0, fmt.Errorf("unknown processing mode %q", s)
	}
}

// ModeSet is the set of active processing modes.
type ModeSet map[Mode]struct{}

// NewModeSet builds a set from a list of modes.
func NewModeSet(modes ...Mode) ModeSet {
	s := make(ModeSet, len(modes))
	for _, m := range modes {
		s[m] = struct{}{}
	}
	return s
}

// Has reports whether the mode is active.
func (s ModeSet) Has(m Mode) bool {
	_, ok := s[m]
	return ok
}

// Names returns the active mode names for logging.
func (s ModeSet) Names() []string {
	names := make([]string, 0, len(s))
	for m := range s {
		names = append(names, m.String())
	}
	return names
}
