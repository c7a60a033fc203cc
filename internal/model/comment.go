package model

// Comment is one social-media comment handed to the bot for checking
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author,omitempty"`    // Empty when the account was deleted
	Subreddit string `json:"subreddit,omitempty"` // Community the comment was posted in
	Body      string `json:"body,omitempty"`      // Markdown body
	BodyHTML  string `json:"body_html,omitempty"` // Rendered body; used when Body is empty
	Saved     bool   `json:"saved,omitempty"`     // Already handled by the bot
}

// Message is a private message or comment reply from the bot's inbox
type Message struct {
	ID     string `json:"id"`
	Author string `json:"author,omitempty"`
	Body   string `json:"body"`
}

// Correction is a detected mistake ready to be published as a reply
type Correction struct {
	CommentID   string `json:"comment_id"`
	Subreddit   string `json:"subreddit,omitempty"`
	Rule        string `json:"rule"`        // Key of the rule that matched
	Context     string `json:"context"`     // Words surrounding the mistake
	Correction  string `json:"correction"`  // Suggested replacement phrase
	Explanation string `json:"explanation"` // Labelled explanation or fallback text
}
