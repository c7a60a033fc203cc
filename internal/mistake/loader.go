package mistake

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for a catalog entry with an unsupported kind.
var ErrUnknownKind = errors.New("unknown rule kind")

// Rule kinds accepted in catalog files.
const (
	KindRule      = "rule"
	KindModalOf   = "modal_of"
	KindLooseLose = "loose_lose"
)

// catalogFile is the on-disk catalog layout.
type catalogFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

// ruleEntry is one catalog entry. Before and After are pointers so that an
// explicit empty string can be told apart from an absent key (default " ").
type ruleEntry struct {
	Kind        string   `yaml:"kind,omitempty"`
	Pattern     string   `yaml:"pattern,omitempty"`
	Before      *string  `yaml:"before,omitempty"`
	After       *string  `yaml:"after,omitempty"`
	Exceptions  []string `yaml:"exceptions,omitempty"`
	Correction  string   `yaml:"correction,omitempty"`
	Explanation string   `yaml:"explanation,omitempty"`
}

// LoadRules reads a YAML catalog file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes a YAML catalog, keeping entry order as priority order.
func ParseRules(data []byte) ([]Rule, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, entry := range file.Rules {
		r, err := entry.rule()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		rules = append(rules, r)
	}

	return rules, nil
}

func (e ruleEntry) rule() (Rule, error) {
	switch e.Kind {
	case KindModalOf:
		if e.Pattern == "" {
			return Rule{}, errors.New("modal_of entry needs a pattern")
		}
		return ModalOf(e.Pattern, e.Exceptions...), nil

	case KindLooseLose:
		if e.After == nil {
			return Rule{}, errors.New("loose_lose entry needs an after context")
		}
		return LooseLose(*e.After, e.Exceptions...), nil

	case KindRule, "":
		if e.Correction == "" {
			return Rule{}, fmt.Errorf("rule %q has no correction", e.Pattern)
		}
		opts := []Option{WithExceptions(e.Exceptions...)}
		if e.Before != nil {
			opts = append(opts, WithBefore(*e.Before))
		}
		if e.After != nil {
			opts = append(opts, WithAfter(*e.After))
		}
		if e.Explanation != "" {
			opts = append(opts, WithExplanation(e.Explanation))
		}
		return New(e.Pattern, e.Correction, opts...), nil

	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}

// MarshalRules encodes rules as a catalog file that ParseRules reads back.
// Every rule is written in its expanded form.
func MarshalRules(rules []Rule) ([]byte, error) {
	file := catalogFile{Rules: make([]ruleEntry, 0, len(rules))}
	for _, r := range rules {
		before, after := r.Before(), r.After()
		file.Rules = append(file.Rules, ruleEntry{
			Pattern:     r.Pattern(),
			Before:      &before,
			After:       &after,
			Exceptions:  r.Exceptions(),
			Correction:  r.Correction(),
			Explanation: r.Explanation(),
		})
	}
	return yaml.Marshal(file)
}
