package classify

import (
	"regexp"
	"strings"
)

// Country describes a recognized leading region/language tag.
type Country struct {
	Code     string
	Domestic bool
	English  bool
}

// countryTable maps recognized leading tokens (upper-cased) to their
// region info. Providers are loose about codes, so common aliases are
// listed alongside the canonical ones.
var countryTable = map[string]Country{
	"US":     {Code: "US", Domestic: true, English: true},
	"USA":    {Code: "US", Domestic: true, English: true},
	"UK":     {Code: "UK", English: true},
	"GB":     {Code: "UK", English: true},
	"CA":     {Code: "CA", English: true},
	"AU":     {Code: "AU", English: true},
	"IE":     {Code: "IE", English: true},
	"NZ":     {Code: "NZ", English: true},
	"MX":     {Code: "MX"},
	"ES":     {Code: "ES"},
	"FR":     {Code: "FR"},
	"DE":     {Code: "DE"},
	"IT":     {Code: "IT"},
	"BR":     {Code: "BR"},
	"PT":     {Code: "PT"},
	"AR":     {Code: "AR"},
	"IN":     {Code: "IN"},
	"PK":     {Code: "PK"},
	"PL":     {Code: "PL"},
	"NL":     {Code: "NL"},
	"SE":     {Code: "SE"},
	"NO":     {Code: "NO"},
	"DK":     {Code: "DK"},
	"TR":     {Code: "TR"},
	"GR":     {Code: "GR"},
	"RO":     {Code: "RO"},
	"ARABE":  {Code: "ARABIC"},
	"ARABIC": {Code: "ARABIC"},
	"LATINO": {Code: "LATINO"},
	"EX-YU":  {Code: "EX-YU"},
}

// lookupCountry resolves a captured prefix like "US", "ARABE-SPORTS" or
// "UK SPORTS" to a table entry. Compound prefixes fall back to their first
// segment.
func lookupCountry(prefix string) (Country, bool) {
	upper := strings.ToUpper(strings.TrimSpace(prefix))
	if c, ok := countryTable[upper]; ok {
		return c, true
	}
	if idx := strings.IndexAny(upper, "- "); idx > 0 {
		if c, ok := countryTable[upper[:idx]]; ok {
			return c, true
		}
	}
	return Country{}, false
}

// stripRule removes provider boilerplate before tokenization. Rules are
// applied in order; order matters because rules can overlap.
type stripRule struct {
	name    string
	pattern *regexp.Regexp
}

var stripRules = []stripRule{
	{"decorative glyph runs", regexp.MustCompile(`[─━▬═■◆◄►•●★☆~]{2,}`)},
	{"provider boilerplate prefix", regexp.MustCompile(`(?i)^\s*(?:LIVE FOOTBALL|LIVE EVENT|LIVE SPORTS|NBA PACKAGE|NFL PACKAGE|MLB PACKAGE|NHL PACKAGE)\s*\d*\s*[:\-|]?\s*`)},
	{"bracketed noise tokens", regexp.MustCompile(`(?i)\[(?:SLOW|BACKUP|GEO|ADS|AUTO|B)\]`)},
}

// tokenRule classifies a single upper-cased, punctuation-trimmed token.
// Rules are evaluated in priority order; the first match wins and the
// token is dropped from the cleaned display name.
type tokenRule struct {
	name  string
	match func(token string) bool
	apply func(p *ParsedContent, token string)
}

var (
	fpsTokenRegex    = regexp.MustCompile(`^\d{2,3}FPS$`)
	yearTokenRegex   = regexp.MustCompile(`^[\[(](\d{4})[\])]$`)
	ratingTokenRegex = regexp.MustCompile(`^\((\d{1,2}(?:\.\d)?)\)$`)
)

func keywordMatch(keywords ...string) func(string) bool {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}
	return func(token string) bool {
		_, ok := set[token]
		return ok
	}
}

var tokenRules = []tokenRule{
	{
		name:  "multi-audio marker",
		match: keywordMatch("MULTI-AUDIO", "MULTIAUDIO", "MULTI-LANG", "DUAL-AUDIO"),
		apply: func(p *ParsedContent, _ string) {},
	},
	{
		name:  "multi-sub marker",
		match: keywordMatch("MULTI-SUB", "MULTISUB", "MULTI-SUBS"),
		apply: func(p *ParsedContent, _ string) { p.HasMultiSub = true },
	},
	{
		name:  "ppv",
		match: keywordMatch("PPV", "PPV1", "PPV2"),
		apply: func(p *ParsedContent, _ string) { p.ContentType = ContentTypePPV },
	},
	{
		name:  "vip",
		match: keywordMatch("VIP", "VIP+"),
		apply: func(p *ParsedContent, _ string) { p.IsVIP = true },
	},
	{
		name:  "raw",
		match: keywordMatch("RAW"),
		apply: func(p *ParsedContent, _ string) { p.IsRaw = true },
	},
	{
		name:  "quality 4k",
		match: keywordMatch("4K", "UHD", "2160P", "UHD4K", "4K-UHD", "HEVC"),
		apply: func(p *ParsedContent, _ string) { p.setQuality(QualityUHD4K) },
	},
	{
		name:  "quality fhd",
		match: keywordMatch("FHD", "1080P", "FULLHD", "FULL-HD"),
		apply: func(p *ParsedContent, _ string) { p.setQuality(QualityFHD) },
	},
	{
		name:  "quality hd",
		match: keywordMatch("HD", "720P"),
		apply: func(p *ParsedContent, _ string) { p.setQuality(QualityHD) },
	},
	{
		name:  "frame rate",
		match: fpsTokenRegex.MatchString,
		apply: func(p *ParsedContent, token string) { p.FPS = token },
	},
}

// sportsKeywords drive the Sports mode predicate and league detection in
// the pipeline's cosmetic prefixing.
var sportsKeywords = []string{
	"SPORT", "SPORTS", "NBA", "NFL", "MLB", "NHL", "MLS", "NCAA", "UFC",
	"MMA", "BOXING", "WWE", "GOLF", "TENNIS", "SOCCER", "FOOTBALL",
	"BASKETBALL", "BASEBALL", "HOCKEY", "RACING", "F1", "NASCAR", "ESPN",
	"BEIN", "DAZN", "FIGHT",
}

// HasSportsKeyword reports whether a name carries a sports-content signal.
func HasSportsKeyword(name string) bool {
	upper := strings.ToUpper(name)
	for _, kw := range sportsKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
