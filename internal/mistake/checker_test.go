package mistake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_FindMistake_Scenarios(t *testing.T) {
	checker := DefaultChecker()

	tests := []struct {
		name       string
		text       string
		correction string // empty means no match
	}{
		{"modal of", "I should of done that", "should have"},
		{"of course exception", "I should of course do that", ""},
		{"loose my", "I loose my mind", "lose"},
		{"could care less", "I could care less ", "couldn't care less"},
		{"gibberish", "adskjflkjaslkdjflkjlsjdf", ""},
		{"should often", "I should often", ""},
		{"any more exception", "If I don't like it any more then I will leave", ""},
		{"more then", "a lot more then that", "more than"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := checker.FindMistake(tt.text)
			if tt.correction == "" {
				assert.False(t, ok, "unexpected match %q", r.Key())
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.correction, r.Correction())
		})
	}
}

func TestChecker_Explanations(t *testing.T) {
	checker := DefaultChecker()

	r, ok := checker.FindMistake("I should of done that")
	require.True(t, ok)
	assert.Contains(t, r.Explain(), "should've")

	r, ok = checker.FindMistake("I loose my mind")
	require.True(t, ok)
	assert.Equal(t, "Explanation: Loose is an adjective meaning the opposite of tight, while lose is a verb.", r.Explain())

	r, ok = checker.FindMistake("I could care less ")
	require.True(t, ok)
	assert.Equal(t, "Explanation: If you could care less, you do care, which is the opposite of what you meant to say.", r.Explain())
}

func TestChecker_Check(t *testing.T) {
	checker := DefaultChecker()

	m, ok := checker.Check("I loose my mind")
	require.True(t, ok)
	assert.Equal(t, "loose my", m.Key)
	assert.Equal(t, "lose", m.Correction)
	assert.Equal(t, "I loose my mind", m.Context)
	assert.True(t, strings.HasPrefix(m.Explanation, "Explanation: "))

	_, ok = checker.Check("nothing wrong here")
	assert.False(t, ok)
}

func TestChecker_FirstMatchWins(t *testing.T) {
	specific := New("to many", "too many", WithBefore(" way "))
	generic := New("many", "lots")
	text := "that is way to many things"

	require.True(t, specific.Matches(text))
	require.True(t, generic.Matches(text))

	c, err := NewChecker([]Rule{specific, generic})
	require.NoError(t, err)
	r, ok := c.FindMistake(text)
	require.True(t, ok)
	assert.Equal(t, "too many", r.Correction())

	c, err = NewChecker([]Rule{generic, specific})
	require.NoError(t, err)
	r, ok = c.FindMistake(text)
	require.True(t, ok)
	assert.Equal(t, "lots", r.Correction())
}

func TestChecker_ExceptionFallsThroughToLaterRule(t *testing.T) {
	suppressed := New("to few", "too few", WithExceptions("available"))
	fallback := New("few", "a few")

	c, err := NewChecker([]Rule{suppressed, fallback})
	require.NoError(t, err)

	r, ok := c.FindMistake("available to few people")
	require.True(t, ok)
	assert.Equal(t, "a few", r.Correction())
}

func TestNewChecker_RejectsEmptyMatch(t *testing.T) {
	_, err := NewChecker([]Rule{
		New("payed", "paid"),
		New("", "nothing", WithBefore(""), WithAfter("")),
	})
	assert.ErrorIs(t, err, ErrEmptyMatch)
}

func TestNewChecker_CopiesRules(t *testing.T) {
	rules := []Rule{New("payed", "paid")}
	c, err := NewChecker(rules)
	require.NoError(t, err)

	rules[0] = New("chocking", "choking")
	_, ok := c.FindMistake("i payed him")
	assert.True(t, ok)
}

func TestChecker_Lookup(t *testing.T) {
	c := DefaultChecker()

	r, ok := c.Lookup("loose my")
	require.True(t, ok)
	assert.Equal(t, "lose", r.Correction())

	r, ok = c.Lookup("way to many")
	require.True(t, ok)
	assert.Equal(t, " way ", r.Before())

	_, ok = c.Lookup("no such rule")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	rules := DefaultRules()
	kept := Filter(rules, []string{"should of", "loose my", "unknown"})

	assert.Len(t, kept, len(rules)-2)
	for _, r := range kept {
		assert.NotEqual(t, "should of", r.Key())
		assert.NotEqual(t, "loose my", r.Key())
	}
	assert.Equal(t, rules[0].Key(), kept[0].Key())

	assert.Len(t, Filter(rules, nil), len(rules))
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 43)

	for i, r := range rules {
		require.NoError(t, r.Validate(), "rule %d", i)
		assert.NotEmpty(t, r.Correction(), "rule %d", i)
	}
	assert.Equal(t, "shouldn't of", rules[0].Key())
	assert.Equal(t, "chocking", rules[len(rules)-1].Key())
}

// Every rule matches its own match string wrapped in words, and the
// reported context contains the whole match string.
func TestDefaultRules_Properties(t *testing.T) {
	for _, r := range DefaultRules() {
		t.Run(r.Key(), func(t *testing.T) {
			text := "lead word" + r.MatchString() + "tail word"

			require.True(t, r.Matches(text))
			assert.Contains(t, text, r.MatchString())
			for _, exception := range r.Exceptions() {
				assert.NotContains(t, text, exception)
			}

			context := r.FindContext(text)
			assert.NotEmpty(t, context)
			assert.Contains(t, text, context)
			assert.Contains(t, context, r.MatchString())
			assert.False(t, strings.HasPrefix(context, " "), "leading bounding space excluded")
			assert.False(t, strings.HasSuffix(context, " "), "trailing bounding space excluded")

			for _, exception := range r.Exceptions() {
				assert.False(t, r.Matches(text+" "+exception), "exception %q must suppress", exception)
			}

			assert.False(t, r.Matches(""))
		})
	}
}
