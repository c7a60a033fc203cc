package reply

import (
	"fmt"
	"strings"
)

// Kind classifies an inbox message
type Kind string

const (
	KindNone    Kind = ""
	KindStop    Kind = "stop"
	KindGoodBot Kind = "good_bot"
	KindBadBot  Kind = "bad_bot"
)

// Opt-out confirmation sent as a private message.
const (
	StopSubject = "Bot Stopped"
	StopBody    = "You will no longer receive corrections from the bot."
)

// BotReply answers messages from other bots.
const BotReply = "This is the superior bot."

// ClassifyMessage decides how to treat an inbox message. STOP wins over feedback.
// Any "stop" substring opts out, including "don't stop" or "unstoppable";
// this matches how existing users were told to opt out and is kept on purpose.
func ClassifyMessage(body string) Kind {
	lower := strings.ToLower(body)

	switch {
	case strings.Contains(lower, "stop"):
		return KindStop
	case strings.Contains(lower, "good bot"):
		return KindGoodBot
	case strings.Contains(lower, "bad bot"):
		return KindBadBot
	default:
		return KindNone
	}
}

// FeedbackReply answers good/bad bot feedback with the running tallies.
func FeedbackReply(kind Kind, good, bad int) string {
	var opener string
	switch kind {
	case KindGoodBot:
		opener = "Thank you!"
	case KindBadBot:
		opener = "Hey, that hurt my feelings :("
	default:
		return ""
	}
	return fmt.Sprintf("%s%sGood bot count: %d%sBad bot count: %d", opener, lineBreak, good, lineBreak, bad)
}
