package mistake

import (
	"errors"
	"strings"
)

// NoExplanation is returned by Explain when a rule has no explanation.
const NoExplanation = "No explanation available."

// ErrEmptyMatch is returned when a rule's match string is empty.
var ErrEmptyMatch = errors.New("rule has an empty match string")

// Rule is a single usage-mistake definition.
//
// A rule matches when before+pattern+after occurs in the text and none of its
// exceptions do. Input must already be lower-cased; the rule does no case
// folding of its own (see text.Prepare).
type Rule struct {
	pattern     string
	before      string
	after       string
	exceptions  []string
	correction  string
	explanation string
}

// Option configures a Rule at construction time.
type Option func(*Rule)

// WithBefore sets the literal context required in front of the pattern.
func WithBefore(before string) Option {
	return func(r *Rule) { r.before = before }
}

// WithAfter sets the literal context required after the pattern.
func WithAfter(after string) Option {
	return func(r *Rule) { r.after = after }
}

// WithExceptions sets substrings that suppress the rule when present anywhere in the text.
func WithExceptions(exceptions ...string) Option {
	return func(r *Rule) {
		r.exceptions = append([]string(nil), exceptions...)
	}
}

// WithExplanation sets the human-readable rationale.
func WithExplanation(explanation string) Option {
	return func(r *Rule) { r.explanation = explanation }
}

// New creates a rule for pattern with the given correction.
// Before and after context default to a single space.
func New(pattern, correction string, opts ...Option) Rule {
	r := Rule{
		pattern:    pattern,
		before:     " ",
		after:      " ",
		correction: correction,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Validate reports whether the rule can ever match.
func (r Rule) Validate() error {
	if r.MatchString() == "" {
		return ErrEmptyMatch
	}
	return nil
}

// MatchString returns before + pattern + after.
func (r Rule) MatchString() string {
	return r.before + r.pattern + r.after
}

// Key identifies the rule in listings, configuration and metrics.
func (r Rule) Key() string {
	return strings.TrimSpace(r.MatchString())
}

func (r Rule) Pattern() string     { return r.pattern }
func (r Rule) Before() string      { return r.before }
func (r Rule) After() string       { return r.after }
func (r Rule) Correction() string  { return r.correction }
func (r Rule) Explanation() string { return r.explanation }

// Exceptions returns a copy of the rule's exception substrings.
func (r Rule) Exceptions() []string {
	return append([]string(nil), r.exceptions...)
}

// HasExplanation reports whether an explanation was configured.
func (r Rule) HasExplanation() bool {
	return r.explanation != ""
}

// Matches reports whether text contains the mistake.
// An exception anywhere in text suppresses the match, not only one
// overlapping the matched region.
func (r Rule) Matches(text string) bool {
	match := r.MatchString()
	if match == "" || !strings.Contains(text, match) {
		return false
	}
	return !r.isException(text)
}

func (r Rule) isException(text string) bool {
	for _, exception := range r.exceptions {
		if strings.Contains(text, exception) {
			return true
		}
	}
	return false
}

// FindContext returns the words surrounding the first occurrence of the
// match string: from just after the nearest space before the match up to
// the nearest space after it, or the text edges when there is none.
// It returns "" when the match string does not occur, so callers should
// check Matches first.
func (r Rule) FindContext(text string) string {
	match := r.MatchString()
	if match == "" {
		return ""
	}

	index := strings.Index(text, match)
	if index < 0 {
		return ""
	}

	start := strings.LastIndexByte(text[:index], ' ') + 1

	end := index + len(match)
	if next := strings.IndexByte(text[end:], ' '); next >= 0 {
		end += next
	} else {
		end = len(text)
	}

	return text[start:end]
}

// Explain returns the labelled explanation, or NoExplanation.
func (r Rule) Explain() string {
	if r.explanation == "" {
		return NoExplanation
	}
	return "Explanation: " + r.explanation
}
