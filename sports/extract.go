package sports

import (
	"regexp"
	"strings"

	"github.com/alorle/iptv-catalog/metrics"
	"github.com/alorle/iptv-catalog/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Event is an extracted home/away matchup embedded in a channel name.
// Both team names are always non-empty and never generic placeholder
// labels; a partial matchup is never surfaced.
type Event struct {
	HomeTeam     string
	HomeAbbr     string
	AwayTeam     string
	AwayAbbr     string
	RawStartTime string
	RawStopTime  string
}

var (
	// Provider boilerplate that poisons team-name capture when left in
	// place, e.g. "LIVE FOOTBALL 01 | Spurs (SAS) x Cavaliers (CLE)".
	boilerplateRegex = regexp.MustCompile(`(?i)^\s*(?:LIVE FOOTBALL|LIVE EVENT|NBA PACKAGE|NFL PACKAGE|MLB PACKAGE|NHL PACKAGE|NBA|NFL|MLB|NHL|MLS|UFC|EPL)\s*\d*\s*[:\-|]\s*`)

	// Leading "<channel name>: " prefix, e.g. "NBA 10 : " or "USA | NBA 03: ".
	// The space after the colon keeps clock times like "7:30PM" intact.
	channelPrefixRegex = regexp.MustCompile(`^[^:]{1,40}:\s+`)

	// Right-hand stop markers: trailing metadata must not be absorbed
	// into the second team's name.
	stopMarkerRegex = regexp.MustCompile(`\s*(?:start:|\[|\d{1,2}:\d{2}|/|\|)`)

	// Team separator. A bare dash only counts when surrounded by spaces so
	// hyphenated team names survive.
	separatorRegex = regexp.MustCompile(`\s+(?i:vs\.?|x|at|@|-)\s+`)

	// Optional trailing "(ABBR)" on a team name.
	abbrRegex = regexp.MustCompile(`^(.*\S)\s*\(([A-Za-z]{2,4})\)$`)

	startMarkerRegex = regexp.MustCompile(`start:\s*(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)
	stopMarkerTime   = regexp.MustCompile(`stop:\s*(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)
	clockTimeRegex   = regexp.MustCompile(`(\d{1,2}:\d{2}\s*(?i:am|pm))`)

	titleCaser = cases.Title(language.English)
)

// Extractor detects "Team A vs Team B"-style events in raw channel names.
type Extractor struct {
	rules rules.Interface
}

// NewExtractor creates an Extractor using the given rule set for
// generic-label rejection. A nil rule set uses the built-in defaults.
func NewExtractor(r rules.Interface) *Extractor {
	if r == nil {
		r = rules.Defaults()
	}
	return &Extractor{rules: r}
}

// Extract returns the matchup embedded in raw, or nil when no plausible
// matchup is present. If either captured side is a generic placeholder
// label the whole extraction is discarded rather than surfacing a
// misleading pairing.
func (e *Extractor) Extract(raw string) *Event {
	stripped := channelPrefixRegex.ReplaceAllString(raw, "")
	stripped = boilerplateRegex.ReplaceAllString(stripped, "")

	// Cut trailing metadata before looking for the separator.
	body := stripped
	if loc := stopMarkerRegex.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}

	sep := separatorRegex.FindStringIndex(body)
	if sep == nil {
		return nil
	}

	home, homeAbbr := splitAbbr(strings.TrimSpace(body[:sep[0]]))
	away := strings.TrimSpace(body[sep[1]:])

	// A second spaced dash bounds the away team ("... - extra info").
	if idx := strings.Index(away, " - "); idx != -1 {
		away = strings.TrimSpace(away[:idx])
	}
	away, awayAbbr := splitAbbr(away)

	if home == "" || away == "" {
		return nil
	}
	if e.rules.IsGenericLabel(home) || e.rules.IsGenericLabel(away) {
		metrics.RecordMatchupRejected()
		return nil
	}

	metrics.RecordMatchupExtracted()
	return &Event{
		HomeTeam:     home,
		HomeAbbr:     homeAbbr,
		AwayTeam:     away,
		AwayAbbr:     awayAbbr,
		RawStartTime: ExtractStartFragment(raw),
		RawStopTime:  ExtractStopFragment(raw),
	}
}

// ExtractStopFragment scans a raw name for an explicit "stop:" marker.
func ExtractStopFragment(raw string) string {
	if m := stopMarkerTime.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

// ExtractStartFragment scans a raw name for an embedded start time. An
// explicit "start:" marker wins over a trailing clock time. Absence yields
// an empty fragment, not an error.
func ExtractStartFragment(raw string) string {
	if m := startMarkerRegex.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := clockTimeRegex.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// Display renders the matchup for the list UI, title-cased so shouty
// provider names ("COWBOYS x COMMANDERS") read cleanly.
func (ev *Event) Display() string {
	home := titleCaser.String(strings.ToLower(ev.HomeTeam))
	away := titleCaser.String(strings.ToLower(ev.AwayTeam))

	var b strings.Builder
	b.WriteString(home)
	if ev.HomeAbbr != "" {
		b.WriteString(" (" + strings.ToUpper(ev.HomeAbbr) + ")")
	}
	b.WriteString(" vs ")
	b.WriteString(away)
	if ev.AwayAbbr != "" {
		b.WriteString(" (" + strings.ToUpper(ev.AwayAbbr) + ")")
	}
	return b.String()
}

// splitAbbr separates a trailing "(ABBR)" from a team name.
func splitAbbr(team string) (name, abbr string) {
	if m := abbrRegex.FindStringSubmatch(team); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return team, ""
}
