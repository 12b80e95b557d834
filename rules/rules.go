package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/grafana/regexp"
	"gopkg.in/yaml.v3"
)

// Effect is the outcome of an account override lookup.
type Effect int

// Account override effects. EffectNone means no rule matched and the normal
// mode predicate decides.
const (
	EffectNone Effect = iota
	EffectInclude
	EffectExclude
)

func (e Effect) String() string {
	switch e {
	case EffectInclude:
		return "include"
	case EffectExclude:
		return "exclude"
	default:
		return "none"
	}
}

// AccountOverride is a hand-tuned exception for a specific provider account.
// When the connected account's display name contains AccountContains and a
// record name matches NameContains, the effect forces the record in or out
// regardless of the active mode predicates.
type AccountOverride struct {
	AccountContains string `yaml:"account_contains"`
	NameContains    string `yaml:"name_contains"`
	Effect          string `yaml:"effect"` // "include" or "exclude"
}

// RuleFile is the on-disk rule set shape.
type RuleFile struct {
	// GenericLabels are placeholder channel-name labels that must never be
	// treated as real team names, matched case-insensitively as exact or
	// substring matches.
	GenericLabels []string `yaml:"generic_labels"`

	// GenericPatterns are regular expressions matched against a whole
	// candidate team name, for numbered placeholders like "LIVE 01".
	GenericPatterns []string `yaml:"generic_patterns"`

	// AccountOverrides are per-account filter exceptions.
	AccountOverrides []AccountOverride `yaml:"account_overrides"`
}

// Interface defines the contract for rule set lookups.
type Interface interface {
	// IsGenericLabel reports whether a candidate team name is a known
	// placeholder label rather than a real team.
	IsGenericLabel(name string) bool

	// AccountEffect returns the forced filter effect for a record name
	// under the given provider account, or EffectNone.
	AccountEffect(accountName, recordName string) Effect
}

// Set is a compiled, thread-safe rule set.
type Set struct {
	mu        sync.RWMutex
	labels    []string
	patterns  []*regexp.Regexp
	overrides []AccountOverride
}

// defaultGenericLabels covers the placeholder labels US sports providers
// embed in channel names. Overridable via the rules file.
var defaultGenericLabels = []string{
	"MNF",
	"SNF",
	"TNF",
	"NFL LIVE",
	"NFL NETWORK",
	"LIVE NOW",
	"NBA TV",
	"NBA LIVE",
	"REDZONE",
	"RED ZONE",
	"ESPN",
	"SPORTSCENTER",
}

// defaultGenericPatterns rejects numbered placeholders like "LIVE 01" or
// "PACKAGE 3" that otherwise look like short team names.
var defaultGenericPatterns = []string{
	`^LIVE\s*\d*$`,
	`^PACKAGE\s*\d*$`,
	`^GAME\s*\d+$`,
	`^EVENT\s*\d+$`,
	`^CHANNEL\s*\d+$`,
}

// Defaults returns the built-in rule set.
func Defaults() *Set {
	s, err := compile(&RuleFile{
		GenericLabels:   defaultGenericLabels,
		GenericPatterns: defaultGenericPatterns,
	})
	if err != nil {
		// Built-in patterns are constants; a compile failure is a bug.
		panic(fmt.Sprintf("rules: invalid built-in pattern: %v", err))
	}
	return s
}

// Load reads a rule set from a YAML file. If the file does not exist the
// built-in defaults are returned, not an error. An explicit file replaces
// the defaults entirely so deployments can retarget new providers.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file RuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	set, err := compile(&file)
	if err != nil {
		return nil, err
	}
	return set, nil
}

func compile(file *RuleFile) (*Set, error) {
	s := &Set{
		overrides: file.AccountOverrides,
	}

	for _, label := range file.GenericLabels {
		label = strings.ToUpper(strings.TrimSpace(label))
		if label != "" {
			s.labels = append(s.labels, label)
		}
	}

	for _, pattern := range file.GenericPatterns {
		compiled, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile generic pattern %q: %w", pattern, err)
		}
		s.patterns = append(s.patterns, compiled)
	}

	for i, o := range s.overrides {
		switch o.Effect {
		case "include", "exclude":
		default:
			return nil, fmt.Errorf("account override %d: unknown effect %q", i, o.Effect)
		}
	}

	return s, nil
}

// IsGenericLabel reports whether name is a placeholder label. Labels match
// exactly or as a clear substring; patterns must match the whole name.
func (s *Set) IsGenericLabel(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return true
	}

	for _, label := range s.labels {
		if upper == label || strings.Contains(upper, label) {
			return true
		}
	}
	for _, pattern := range s.patterns {
		if pattern.MatchString(upper) {
			return true
		}
	}
	return false
}

// AccountEffect returns the first matching override's effect, or EffectNone.
// Rule order in the file is priority order.
func (s *Set) AccountEffect(accountName, recordName string) Effect {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account := strings.ToUpper(accountName)
	record := strings.ToUpper(recordName)

	for _, o := range s.overrides {
		if o.AccountContains != "" && !strings.Contains(account, strings.ToUpper(o.AccountContains)) {
			continue
		}
		if o.NameContains != "" && !strings.Contains(record, strings.ToUpper(o.NameContains)) {
			continue
		}
		if o.Effect == "include" {
			return EffectInclude
		}
		return EffectExclude
	}
	return EffectNone
}
