package reply

import (
	"strings"
	"testing"

	"github.com/ppiankov/eggcorn/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	c := model.Correction{
		Context:     "i should of done",
		Correction:  "should have",
		Explanation: "Explanation: short for 'have'.",
	}

	got := Render(c, false)
	want := "> i should of done  \n\nDid you mean to say \"should have\"?  \nExplanation: short for 'have'.  \n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "^^")
}

func TestRender_Footer(t *testing.T) {
	got := Render(model.Correction{Context: "x", Correction: "y"}, true)

	assert.True(t, strings.HasSuffix(got, Footer+"\n"))
	assert.Contains(t, got, "STOP")
}

func TestRender_NoExplanationLine(t *testing.T) {
	got := Render(model.Correction{Context: "way to few", Correction: "too few"}, false)
	assert.Equal(t, "> way to few  \n\nDid you mean to say \"too few\"?  \n", got)
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		body string
		want Kind
	}{
		{"STOP", KindStop},
		{"please stop replying, bad bot", KindStop},
		{"don't stop, good bot", KindStop},
		{"unstoppable", KindStop},
		{"Good bot", KindGoodBot},
		{"bad bot!", KindBadBot},
		{"thanks for the tip", KindNone},
		{"", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMessage(tt.body))
		})
	}
}

func TestFeedbackReply(t *testing.T) {
	assert.Equal(t, "Thank you!  \nGood bot count: 3  \nBad bot count: 1", FeedbackReply(KindGoodBot, 3, 1))
	assert.True(t, strings.HasPrefix(FeedbackReply(KindBadBot, 3, 2), "Hey, that hurt my feelings :("))
	assert.Empty(t, FeedbackReply(KindStop, 1, 1))
}
