package mistake

const (
	modalOfExplanation = "You probably meant to say could've/should've/would've " +
		"which sounds like 'of' but is actually short for 'have'."
	looseLoseExplanation = "Loose is an adjective meaning the opposite of tight, while lose is a verb."
)

// ModalOf builds the "should of" family of rules for a modal verb.
// Without exceptions the rule is suppressed by "of course"; passing
// exceptions replaces that default.
func ModalOf(modal string, exceptions ...string) Rule {
	if len(exceptions) == 0 {
		exceptions = []string{"of course"}
	}
	return New(modal, modal+" have",
		WithAfter(" of "),
		WithExceptions(exceptions...),
		WithExplanation(modalOfExplanation),
	)
}

// LooseLose builds a "loose" -> "lose" rule that only fires when followed by after,
// e.g. " my " so that "loosely" and "loose change" are left alone.
func LooseLose(after string, exceptions ...string) Rule {
	return New("loose", "lose",
		WithAfter(after),
		WithExceptions(exceptions...),
		WithExplanation(looseLoseExplanation),
	)
}
