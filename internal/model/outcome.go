package model

// Status classifies what happened to a comment
type Status string

const (
	StatusCorrected Status = "corrected" // Mistake found and reply published
	StatusClean     Status = "clean"     // No mistake found
	StatusSkipped   Status = "skipped"   // Not eligible for checking
	StatusFailed    Status = "failed"    // Mistake found but the reply could not be published
)

// SkipReason explains why a comment was not checked
type SkipReason string

const (
	SkipBot     SkipReason = "bot"     // Author looks like a bot or is missing
	SkipSaved   SkipReason = "saved"   // Comment already handled
	SkipOptOut  SkipReason = "opt_out" // Author replied STOP
	SkipSeen    SkipReason = "seen"    // Processed earlier in this or a previous run
	SkipNoText  SkipReason = "no_text" // Nothing left after preparation
	SkipInvalid SkipReason = "invalid" // Body could not be prepared
)

// Outcome is the result of processing one comment
type Outcome struct {
	CommentID  string      `json:"comment_id"`
	Status     Status      `json:"status"`
	Reason     SkipReason  `json:"reason,omitempty"`
	Correction *Correction `json:"correction,omitempty"`
	Reply      string      `json:"reply,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// MessageOutcome records how an inbox message was handled
type MessageOutcome struct {
	MessageID string `json:"message_id"`
	Kind      string `json:"kind,omitempty"` // stop, good_bot or bad_bot
	Reply     string `json:"reply,omitempty"`
	BotReply  bool   `json:"bot_reply,omitempty"` // Author was a bot and got the canned answer
	OptedOut  bool   `json:"opted_out,omitempty"`
}
