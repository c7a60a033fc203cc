package mistake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
rules:
  - kind: modal_of
    pattern: should
  - kind: modal_of
    pattern: might
    exceptions: ["the might of"]
  - kind: loose_lose
    after: " my "
  - pattern: to many
    before: " way "
    correction: too many
  - pattern: payed
    correction: paid
    explanation: Paid means to give money.
  - kind: rule
    pattern: "-ish"
    before: ""
    correction: ish
`

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, rules, 6)

	assert.Equal(t, "should of", rules[0].Key())
	assert.Equal(t, []string{"of course"}, rules[0].Exceptions())
	assert.Equal(t, []string{"the might of"}, rules[1].Exceptions())
	assert.Equal(t, " loose my ", rules[2].MatchString())
	assert.Equal(t, " way to many ", rules[3].MatchString())

	assert.Equal(t, " payed ", rules[4].MatchString(), "absent before/after default to a space")
	assert.Equal(t, "Explanation: Paid means to give money.", rules[4].Explain())

	assert.Equal(t, "-ish ", rules[5].MatchString(), "explicit empty before is kept")
	assert.Equal(t, NoExplanation, rules[5].Explain())
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown kind", "rules:\n  - kind: regex\n    pattern: x\n    correction: y\n"},
		{"missing correction", "rules:\n  - pattern: payed\n"},
		{"modal without pattern", "rules:\n  - kind: modal_of\n"},
		{"loose without after", "rules:\n  - kind: loose_lose\n"},
		{"empty match", "rules:\n  - pattern: \"\"\n    before: \"\"\n    after: \"\"\n    correction: y\n"},
		{"bad yaml", "rules: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := ParseRules([]byte("rules:\n  - kind: regex\n    pattern: x\n    correction: y\n"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseRules([]byte("rules:\n  - pattern: \"\"\n    before: \"\"\n    after: \"\"\n    correction: y\n"))
	assert.ErrorIs(t, err, ErrEmptyMatch)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Len(t, rules, 6)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRules_DefaultCatalogBehavesTheSame(t *testing.T) {
	data, err := MarshalRules(DefaultRules())
	require.NoError(t, err)

	loaded, err := ParseRules(data)
	require.NoError(t, err)

	original := DefaultChecker()
	reloaded, err := NewChecker(loaded)
	require.NoError(t, err)

	for _, text := range []string{
		"i should of course do that",
		"you might of the same mind",
		"way to many cooks",
		"i could care less ",
		"it's a sneak peak of the show",
		"nothing wrong here",
	} {
		want, wantOK := original.FindMistake(text)
		got, gotOK := reloaded.FindMistake(text)
		assert.Equal(t, wantOK, gotOK, text)
		assert.Equal(t, want.Key(), got.Key(), text)
		assert.Equal(t, want.Explain(), got.Explain(), text)
	}
}
