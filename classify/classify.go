package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alorle/iptv-catalog/rules"
	"github.com/alorle/iptv-catalog/sports"
)

// Quality is the detected stream quality tier, priority-ordered.
type Quality int

// Quality tiers. A later, lower-tier token never downgrades an earlier
// higher one.
const (
	QualityUnknown Quality = iota
	QualityHD
	QualityFHD
	QualityUHD4K
)

func (q Quality) String() string {
	switch q {
	case QualityHD:
		return "HD"
	case QualityFHD:
		return "FHD"
	case QualityUHD4K:
		return "4K"
	default:
		return ""
	}
}

// ContentType tags special content classes detected from tokens.
type ContentType int

// Content type values.
const (
	ContentTypeNone ContentType = iota
	ContentTypePPV
)

func (t ContentType) String() string {
	if t == ContentTypePPV {
		return "PPV"
	}
	return ""
}

// ParsedContent is the structured classification derived from a raw
// provider name. It is a pure function of (raw name, timezone): identical
// inputs always yield identical output, which is what makes caching safe.
type ParsedContent struct {
	Country     *Country
	Quality     Quality
	ContentType ContentType
	IsVIP       bool
	IsRaw       bool

	// DisplayName is the cleaned name with classification tokens stripped.
	DisplayName string
	// BaseName is the name after prefix/noise stripping but with content
	// tokens intact; the pipeline uses it for clean_name so searchable
	// tokens like codecs survive.
	BaseName string

	ChannelPrefix string
	Year          string
	Rating        string
	FPS           string
	HasMultiSub   bool
	IsSeparator   bool

	SportsEvent *sports.Event
}

func (p *ParsedContent) setQuality(q Quality) {
	if q > p.Quality {
		p.Quality = q
	}
}

// IsDomestic reports whether the record is tagged with a domestic region.
func (p *ParsedContent) IsDomestic() bool {
	return p.Country != nil && p.Country.Domestic
}

// IsEnglish reports whether the record is tagged as English-language.
func (p *ParsedContent) IsEnglish() bool {
	return p.Country != nil && p.Country.English
}

// IsForeign reports whether the record carries a non-domestic region tag.
// Untagged records are neutral, not foreign.
func (p *ParsedContent) IsForeign() bool {
	return p.Country != nil && !p.Country.Domestic
}

var (
	countryPrefixRegex = regexp.MustCompile(`^\s*([A-Za-z]+(?:[-][A-Za-z]+)*)\s*[|:]\s*`)
	channelPrefixRegex = regexp.MustCompile(`^\s*(\d{1,4})[.:)\-]?\s+`)
	letterDigitRegex   = regexp.MustCompile(`[\p{L}\p{N}]`)
	plausibleMatchup   = regexp.MustCompile(`\s(?i:vs\.?|x|at|@|-)\s`)
	spaceCollapseRegex = regexp.MustCompile(`\s{2,}`)
)

// Classifier turns raw, inconsistently formatted provider names into
// structured metadata. It never fails: absence of a signal yields the
// zero value, never an error.
type Classifier struct {
	extractor *sports.Extractor
}

// New creates a Classifier using the given rule set for sports
// generic-label rejection. A nil rule set uses the built-in defaults.
func New(r rules.Interface) *Classifier {
	if r == nil {
		r = rules.Defaults()
	}
	return &Classifier{extractor: sports.NewExtractor(r)}
}

// Classify parses a raw provider name. Unmatched tokens pass through into
// the cleaned name verbatim, in original order.
func (c *Classifier) Classify(raw string) ParsedContent {
	p := ParsedContent{}

	name := raw
	for _, rule := range stripRules {
		name = rule.pattern.ReplaceAllString(name, " ")
	}
	name = strings.TrimSpace(spaceCollapseRegex.ReplaceAllString(name, " "))

	// Rows that are pure decoration are non-selectable headings.
	if !letterDigitRegex.MatchString(name) {
		p.IsSeparator = true
		p.DisplayName = strings.TrimSpace(raw)
		p.BaseName = p.DisplayName
		return p
	}

	if m := channelPrefixRegex.FindStringSubmatch(name); m != nil {
		p.ChannelPrefix = m[1]
		name = name[len(m[0]):]
	}

	if m := countryPrefixRegex.FindStringSubmatch(name); m != nil {
		if country, ok := lookupCountry(m[1]); ok {
			p.Country = &country
			name = name[len(m[0]):]
		}
	}

	p.BaseName = strings.TrimSpace(name)
	p.DisplayName = c.classifyTokens(&p, p.BaseName)

	if plausibleMatchup.MatchString(raw) {
		p.SportsEvent = c.extractor.Extract(raw)
	}

	return p
}

// classifyTokens walks the name token by token, applying the ordered rule
// table. Matched tokens are dropped from the display name; everything else
// is passed through with its original spacing and slashes preserved.
func (c *Classifier) classifyTokens(p *ParsedContent, name string) string {
	var kept strings.Builder
	rest := name

	for rest != "" {
		sep, token, tail := nextToken(rest)
		rest = tail

		if token == "" {
			continue
		}
		if c.classifyToken(p, token) {
			continue
		}
		if kept.Len() > 0 {
			kept.WriteString(sep)
		}
		kept.WriteString(token)
	}

	return strings.TrimSpace(kept.String())
}

// nextToken splits off the leading separator run (whitespace and slashes)
// and the following token.
func nextToken(s string) (sep, token, rest string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '/') {
		i++
	}
	sep = s[:i]
	if sep == "" {
		sep = " "
	}

	j := i
	for j < len(s) && s[j] != ' ' && s[j] != '\t' && s[j] != '/' {
		j++
	}
	return sep, s[i:j], s[j:]
}

// classifyToken reports whether the token matched a classification rule
// and should be dropped from the display name.
func (c *Classifier) classifyToken(p *ParsedContent, token string) bool {
	// Bracketed or parenthesized 4-digit tokens are only years when they
	// parse as exactly 4 ASCII digits in a plausible range; identifiers
	// like "(1234)" stay ordinary text.
	if m := yearTokenRegex.FindStringSubmatch(token); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil && year >= 1900 && year <= 2100 {
			p.Year = m[1]
			return true
		}
		return false
	}
	if m := ratingTokenRegex.FindStringSubmatch(token); m != nil {
		p.Rating = m[1]
		return true
	}

	trimmed := strings.ToUpper(strings.Trim(token, ".,;:!()[]"))
	if trimmed == "" {
		return false
	}

	for _, rule := range tokenRules {
		if rule.match(trimmed) {
			rule.apply(p, trimmed)
			return true
		}
	}
	return false
}
