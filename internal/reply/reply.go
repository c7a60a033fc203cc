// Package reply formats the messages the bot posts.
package reply

import (
	"fmt"
	"strings"

	"github.com/ppiankov/eggcorn/internal/model"
)

// Footer is appended to corrections when enabled. Each word carries the
// superscript marker so it renders small.
const Footer = "^^I'm ^^a ^^bot ^^that ^^corrects ^^grammar/spelling ^^mistakes.\n" +
	"^^PM ^^me ^^if ^^I'm ^^wrong ^^or ^^if ^^you ^^have ^^any ^^suggestions.  \n" +
	"^^Reply ^^STOP ^^to ^^this ^^comment ^^to ^^stop ^^receiving ^^corrections."

// lineBreak forces a markdown line break.
const lineBreak = "  \n"

// Render builds the reply body for a correction.
func Render(c model.Correction, footer bool) string {
	var b strings.Builder

	b.WriteString("> ")
	b.WriteString(c.Context)
	b.WriteString(lineBreak)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Did you mean to say \"%s\"?", c.Correction)
	b.WriteString(lineBreak)
	if c.Explanation != "" {
		b.WriteString(c.Explanation)
		b.WriteString(lineBreak)
	}

	if footer {
		b.WriteString("\n")
		b.WriteString(Footer)
		b.WriteString("\n")
	}

	return b.String()
}
