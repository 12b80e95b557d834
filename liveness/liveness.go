package liveness

import (
	"regexp"
	"strings"
	"sync"
	"time"
)

// State is the derived live/upcoming/ended classification. It is computed
// from timestamps on every evaluation, never stored.
type State int

// Liveness states.
const (
	StateUpcoming State = iota
	StateLive
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateEnded:
		return "ended"
	default:
		return "upcoming"
	}
}

// Boundary constants for stale-event detection. Empirically chosen in
// production; keep them overridable rather than inferring new ones.
const (
	// DefaultOvertimeBuffer keeps an event live past its scheduled stop to
	// cover overtime and halftime drift.
	DefaultOvertimeBuffer = 30 * time.Minute

	// DefaultFallbackWindow bounds events with no known stop time.
	DefaultFallbackWindow = 4 * time.Hour
)

const fullTimeLayout = "2006-01-02 15:04:05"

// Resolver converts raw time fragments into absolute timestamps and
// derives liveness state. The zero buffer/window values are replaced with
// the defaults.
type Resolver struct {
	display        *time.Location
	OvertimeBuffer time.Duration
	FallbackWindow time.Duration

	mu        sync.Mutex
	locations map[string]*time.Location
}

// NewResolver creates a Resolver that interprets fragments in the named
// display timezone. An empty name means UTC.
func NewResolver(displayTimezone string) (*Resolver, error) {
	loc := time.UTC
	if displayTimezone != "" {
		var err error
		loc, err = time.LoadLocation(displayTimezone)
		if err != nil {
			return nil, err
		}
	}
	return &Resolver{
		display:        loc,
		OvertimeBuffer: DefaultOvertimeBuffer,
		FallbackWindow: DefaultFallbackWindow,
		locations:      make(map[string]*time.Location),
	}, nil
}

// Resolve parses start/stop fragments and derives the liveness state at
// now. Unparsable fragments yield nil timestamps and Upcoming-by-default
// liveness, never an error.
func (r *Resolver) Resolve(startFragment, stopFragment, providerTimezone string, now time.Time) (start, stop *time.Time, state State) {
	loc := r.location(providerTimezone)

	start = r.parseFragment(startFragment, loc, now)
	stop = r.parseFragment(stopFragment, loc, now)

	return start, stop, r.state(start, stop, now)
}

// state derives liveness from resolved timestamps.
func (r *Resolver) state(start, stop *time.Time, now time.Time) State {
	buffer := r.OvertimeBuffer
	if buffer == 0 {
		buffer = DefaultOvertimeBuffer
	}
	window := r.FallbackWindow
	if window == 0 {
		window = DefaultFallbackWindow
	}

	if stop != nil {
		if now.After(stop.Add(buffer)) {
			return StateEnded
		}
		// A known stop in the near past or future means the event is
		// underway unless the start is still ahead.
		if start == nil || !start.After(now) {
			return StateLive
		}
		return StateUpcoming
	}

	if start != nil {
		if now.After(start.Add(window)) {
			return StateEnded
		}
		if !start.After(now) {
			return StateLive
		}
	}
	return StateUpcoming
}

// parseFragment resolves a fragment as either a full provider-local
// date-time or a bare clock time occurring today-or-next-occurrence.
func (r *Resolver) parseFragment(fragment string, loc *time.Location, now time.Time) *time.Time {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil
	}

	if t, err := time.ParseInLocation(fullTimeLayout, fragment, loc); err == nil {
		utc := t.UTC()
		return &utc
	}

	return r.parseClock(fragment, loc, now)
}

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(?i:(am|pm))$`)

// parseClock resolves a bare "7:30 pm" fragment to today's occurrence in
// loc, rolled forward a day when it would sit more than 12 hours in the
// past (late-night listings published for the next day).
func (r *Resolver) parseClock(fragment string, loc *time.Location, now time.Time) *time.Time {
	m := clockRegex.FindStringSubmatch(fragment)
	if m == nil {
		return nil
	}

	parsed, err := time.Parse("3:04pm", m[1]+":"+m[2]+strings.ToLower(m[3]))
	if err != nil {
		return nil
	}

	local := now.In(loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, loc)

	if now.Sub(candidate) > 12*time.Hour {
		candidate = candidate.Add(24 * time.Hour)
	}

	utc := candidate.UTC()
	return &utc
}

// location resolves a provider timezone hint, falling back to the display
// timezone for unknown or empty hints. Lookups are cached.
func (r *Resolver) location(name string) *time.Location {
	if name == "" {
		return r.display
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if loc, ok := r.locations[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = r.display
	}
	r.locations[name] = loc
	return loc
}

var liveBadgeRegex = regexp.MustCompile(`(?i)(?:🔴\s*)?\bLIVE(?:\s+NOW)?\b[:\-]?\s*|🔴\s*`)

// ScrubLiveBadges strips "LIVE"-style badges from a display name so stale
// events don't visually claim to be live after they have Ended.
func ScrubLiveBadges(name string) string {
	cleaned := liveBadgeRegex.ReplaceAllString(name, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.TrimSpace(cleaned)
}
