package mistake

import "fmt"

// Match bundles what a caller needs to reply to a detected mistake.
type Match struct {
	Rule        Rule
	Key         string
	Correction  string
	Explanation string
	Context     string
}

// Checker applies an ordered catalog of rules to text.
//
// Catalog order is priority order: the first matching rule wins, so a
// specific idiom must come before a generic rule whose match string it
// contains. A Checker is never mutated after construction and is safe for
// concurrent use.
type Checker struct {
	rules []Rule
	index map[string]int
}

// NewChecker validates rules and builds a checker that evaluates them in order.
func NewChecker(rules []Rule) (*Checker, error) {
	c := &Checker{
		rules: make([]Rule, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	copy(c.rules, rules)

	for i, r := range c.rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, r.Pattern(), err)
		}
		// Lookup resolves duplicate keys to the first rule, which is the one FindMistake would report.
		if _, exists := c.index[r.Key()]; !exists {
			c.index[r.Key()] = i
		}
	}

	return c, nil
}

// DefaultChecker returns a checker over DefaultRules.
func DefaultChecker() *Checker {
	c, err := NewChecker(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("mistake: invalid built-in catalog: %v", err))
	}
	return c
}

// FindMistake returns the first rule that matches text.
func (c *Checker) FindMistake(text string) (Rule, bool) {
	if text == "" {
		return Rule{}, false
	}
	for _, r := range c.rules {
		if r.Matches(text) {
			return r, true
		}
	}
	return Rule{}, false
}

// Check is FindMistake plus the context and explanation of the match.
func (c *Checker) Check(text string) (Match, bool) {
	r, ok := c.FindMistake(text)
	if !ok {
		return Match{}, false
	}
	return Match{
		Rule:        r,
		Key:         r.Key(),
		Correction:  r.Correction(),
		Explanation: r.Explain(),
		Context:     r.FindContext(text),
	}, true
}

// Rules returns the catalog in priority order.
func (c *Checker) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Len returns the number of rules in the catalog.
func (c *Checker) Len() int {
	return len(c.rules)
}

// Lookup returns the first rule with the given key.
func (c *Checker) Lookup(key string) (Rule, bool) {
	i, ok := c.index[key]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Filter returns rules without those whose key is in disabled, preserving order.
func Filter(rules []Rule, disabled []string) []Rule {
	if len(disabled) == 0 {
		return append([]Rule(nil), rules...)
	}

	skip := make(map[string]bool, len(disabled))
	for _, key := range disabled {
		skip[key] = true
	}

	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !skip[r.Key()] {
			kept = append(kept, r)
		}
	}
	return kept
}
