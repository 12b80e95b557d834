package classify

import (
	"reflect"
	"testing"
)

func TestClassifyCountry(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCode     string
		wantDomestic bool
		wantEnglish  bool
		wantBase     string
	}{
		{
			name:         "us pipe prefix",
			input:        "US | MSNBC HEVC",
			wantCode:     "US",
			wantDomestic: true,
			wantEnglish:  true,
			wantBase:     "MSNBC HEVC",
		},
		{
			name:        "uk pipe prefix",
			input:       "UK | BBC ONE",
			wantCode:    "UK",
			wantEnglish: true,
			wantBase:    "BBC ONE",
		},
		{
			name:     "compound foreign prefix",
			input:    "ARABE-SPORTS | BEIN 1",
			wantCode: "ARABIC",
			wantBase: "BEIN 1",
		},
		{
			name:     "colon delimiter",
			input:    "FR: TF1",
			wantCode: "FR",
			wantBase: "TF1",
		},
		{
			name:     "no recognized prefix",
			input:    "FIREPLACE TV",
			wantBase: "FIREPLACE TV",
		},
		{
			name:     "unrecognized prefix left intact",
			input:    "FOX NEWS: SPECIAL REPORT",
			wantBase: "FOX NEWS: SPECIAL REPORT",
		},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if tt.wantCode == "" {
				if got.Country != nil {
					t.Errorf("Classify(%q) country = %v, want none", tt.input, got.Country)
				}
			} else {
				if got.Country == nil {
					t.Fatalf("Classify(%q) country = nil, want %s", tt.input, tt.wantCode)
				}
				if got.Country.Code != tt.wantCode {
					t.Errorf("Classify(%q) country code = %s, want %s", tt.input, got.Country.Code, tt.wantCode)
				}
				if got.Country.Domestic != tt.wantDomestic {
					t.Errorf("Classify(%q) domestic = %v, want %v", tt.input, got.Country.Domestic, tt.wantDomestic)
				}
				if got.Country.English != tt.wantEnglish {
					t.Errorf("Classify(%q) english = %v, want %v", tt.input, got.Country.English, tt.wantEnglish)
				}
			}
			if got.BaseName != tt.wantBase {
				t.Errorf("Classify(%q) base name = %q, want %q", tt.input, got.BaseName, tt.wantBase)
			}
		})
	}
}

func TestClassifyTokens(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDisplay string
		check       func(t *testing.T, p ParsedContent)
	}{
		{
			name:        "quality hevc stripped from display",
			input:       "US | MSNBC HEVC",
			wantDisplay: "MSNBC",
			check: func(t *testing.T, p ParsedContent) {
				if p.Quality != QualityUHD4K {
					t.Errorf("quality = %v, want %v", p.Quality, QualityUHD4K)
				}
			},
		},
		{
			name:        "quality priority never downgrades",
			input:       "CINEMA 4K HD",
			wantDisplay: "CINEMA",
			check: func(t *testing.T, p ParsedContent) {
				if p.Quality != QualityUHD4K {
					t.Errorf("quality = %v, want %v", p.Quality, QualityUHD4K)
				}
			},
		},
		{
			name:        "fhd from 1080p",
			input:       "TNT 1080P",
			wantDisplay: "TNT",
			check: func(t *testing.T, p ParsedContent) {
				if p.Quality != QualityFHD {
					t.Errorf("quality = %v, want %v", p.Quality, QualityFHD)
				}
			},
		},
		{
			name:        "vip and ppv flags",
			input:       "VIP PPV UFC 300",
			wantDisplay: "UFC 300",
			check: func(t *testing.T, p ParsedContent) {
				if !p.IsVIP {
					t.Error("IsVIP = false, want true")
				}
				if p.ContentType != ContentTypePPV {
					t.Errorf("content type = %v, want PPV", p.ContentType)
				}
			},
		},
		{
			name:        "multi-sub dropped silently",
			input:       "SHOWTIME MULTI-SUB",
			wantDisplay: "SHOWTIME",
			check: func(t *testing.T, p ParsedContent) {
				if !p.HasMultiSub {
					t.Error("HasMultiSub = false, want true")
				}
			},
		},
		{
			name:        "fps token captured",
			input:       "ESPN 60FPS",
			wantDisplay: "ESPN",
			check: func(t *testing.T, p ParsedContent) {
				if p.FPS != "60FPS" {
					t.Errorf("fps = %q, want 60FPS", p.FPS)
				}
			},
		},
		{
			name:        "bracketed year captured",
			input:       "Heat [1995]",
			wantDisplay: "Heat",
			check: func(t *testing.T, p ParsedContent) {
				if p.Year != "1995" {
					t.Errorf("year = %q, want 1995", p.Year)
				}
			},
		},
		{
			name:        "implausible year left as text",
			input:       "Channel (1234)",
			wantDisplay: "Channel (1234)",
			check: func(t *testing.T, p ParsedContent) {
				if p.Year != "" {
					t.Errorf("year = %q, want empty", p.Year)
				}
			},
		},
		{
			name:        "rating token captured",
			input:       "Heat (8.3)",
			wantDisplay: "Heat",
			check: func(t *testing.T, p ParsedContent) {
				if p.Rating != "8.3" {
					t.Errorf("rating = %q, want 8.3", p.Rating)
				}
			},
		},
		{
			name:        "slashes preserved in passthrough tokens",
			input:       "24/7 Seinfeld",
			wantDisplay: "24/7 Seinfeld",
		},
		{
			name:        "unmatched tokens pass through in order",
			input:       "WILLOW CRICKET EXTRA HD",
			wantDisplay: "WILLOW CRICKET EXTRA",
		},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.DisplayName != tt.wantDisplay {
				t.Errorf("Classify(%q) display = %q, want %q", tt.input, got.DisplayName, tt.wantDisplay)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestClassifyChannelPrefix(t *testing.T) {
	c := New(nil)

	got := c.Classify("102. US | CNN HD")
	if got.ChannelPrefix != "102" {
		t.Errorf("channel prefix = %q, want 102", got.ChannelPrefix)
	}
	if got.Country == nil || got.Country.Code != "US" {
		t.Errorf("country = %v, want US", got.Country)
	}
	if got.DisplayName != "CNN" {
		t.Errorf("display = %q, want CNN", got.DisplayName)
	}
}

func TestClassifySeparatorRows(t *testing.T) {
	c := New(nil)

	tests := []struct {
		input string
		want  bool
	}{
		{"──────────", true},
		{"•••• ▬▬▬ ••••", true},
		{"SPORTS", false},
		{"── SPORTS ──", false},
	}

	for _, tt := range tests {
		got := c.Classify(tt.input)
		if got.IsSeparator != tt.want {
			t.Errorf("Classify(%q).IsSeparator = %v, want %v", tt.input, got.IsSeparator, tt.want)
		}
	}
}

func TestClassifySportsMatchup(t *testing.T) {
	c := New(nil)

	got := c.Classify("NBA 10 : Spurs (SAS) x Cavaliers (CLE) start:2025-12-30 00:50:00 stop:2025-12-30 04:50:00")
	if got.SportsEvent == nil {
		t.Fatal("SportsEvent = nil, want matchup")
	}
	if got.SportsEvent.HomeTeam != "Spurs" || got.SportsEvent.AwayTeam != "Cavaliers" {
		t.Errorf("teams = %q vs %q, want Spurs vs Cavaliers", got.SportsEvent.HomeTeam, got.SportsEvent.AwayTeam)
	}

	got = c.Classify("US | MSNBC HEVC")
	if got.SportsEvent != nil {
		t.Errorf("SportsEvent = %+v, want nil", got.SportsEvent)
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := New(nil)

	inputs := []string{
		"US | MSNBC HEVC",
		"NBA 10 : Spurs (SAS) x Cavaliers (CLE) start:2025-12-30 00:50:00",
		"ARABE-SPORTS | BEIN 1",
		"──────────",
		"",
	}

	for _, input := range inputs {
		first := c.Classify(input)
		second := c.Classify(input)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%q) not deterministic:\nfirst:  %+v\nsecond: %+v", input, first, second)
		}
	}
}
