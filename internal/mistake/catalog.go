package mistake

const (
	affectEffect = "affect is a verb meaning to influence, while effect is a noun meaning a result."
	peakPique    = "Some people might have peaked in high school, but pique is a verb meaning to arouse interest."
	peakPeek     = "peak is the top of a mountain, while peek is a quick look."
)

// DefaultRules returns the built-in catalog in priority order.
// Contracted modals come before their bare forms, and multi-word idioms
// before the single words they contain.
func DefaultRules() []Rule {
	return []Rule{
		ModalOf("shouldn't"),
		ModalOf("couldn't"),
		ModalOf("wouldn't"),
		ModalOf("should"),
		ModalOf("would"),
		ModalOf("could"),
		ModalOf("must"),
		ModalOf("might", "the might of", "might of course", "might of the"),

		New("to many", "too many", WithBefore(" way ")),
		New("to many", "too many", WithBefore(" far ")),
		New("to few", "too few", WithExceptions("available to few")),
		New("to much", "too much", WithBefore(" way ")),
		New("more then", "more than",
			WithExceptions("any more", "some more"),
			WithExplanation("If you didn't mean 'more than' you might have forgotten a comma.")),
		New("less then", "less than",
			WithExceptions("any less"),
			WithExplanation("If you didn't mean 'less than' you might have forgotten a comma.")),
		New("payed", "paid",
			WithExplanation("Payed means to seal something with wax, while paid means to give money.")),

		LooseLose(" my "),
		LooseLose(" your "),
		LooseLose(" his "),
		LooseLose(" her "),
		LooseLose(" their "),
		LooseLose(" our "),
		LooseLose(" its "),

		New("could care less", "couldn't care less",
			WithExceptions("couldn't care less*", "couldn't*", "did you mean"),
			WithExplanation("If you could care less, you do care, which is the opposite of what you meant to say.")),
		New("loosing", "losing", WithExplanation(looseLoseExplanation)),
		New("looses", "loses", WithExplanation(looseLoseExplanation)),
		New("irregardless", "regardless", WithExplanation("irregardless is not a word.")),
		New("weary of", "wary of", WithBefore(" be "),
			WithExplanation("Weary means tired, while wary means cautious.")),
		New("can't breath", "can't breathe",
			WithExplanation("Breath is a noun, while breathe is a verb.")),
		New("intensive purposes", "intents and purposes",
			WithExplanation("This is likely due to mishearing of 'intents and purposes'.")),
		New("sneak peak", "sneak peek", WithExplanation(peakPeek)),
		New("sneak peaks", "sneak peek", WithExplanation(peakPeek)),
		New("unphased", "unfazed",
			WithExplanation("Phased means to change, while fazed means to be surprised.")),
		New("epitamy", "epitome", WithExplanation("Epitamy is not a word.")),
		New("no affect", "no effect", WithExplanation(affectEffect)),
		New("little affect", "little effect", WithExplanation(affectEffect)),
		New("peaked my interest", "piqued my interest", WithExplanation(peakPique)),
		New("peaked my curiosity", "piqued my curiosity", WithExplanation(peakPique)),
		New("apart of", "a part of",
			WithExplanation(`"apart" is an adverb meaning separately, while "a part" is a noun meaning a portion.`)),
		New("queue", "cue", WithAfter(" the "),
			WithExplanation("queue is a line, while cue is a signal.")),
		New("humanely possible", "humanly possible",
			WithExplanation("humane means kind, while human means relating to humans.")),
		New("intimated by", "intimidated by",
			WithExplanation(`intimate means "closely acquainted", while intimidate means to frighten.`)),
		New("per say", "per se",
			WithExplanation(`per se is latin for "by itself".`)),
		New("chocking", "choking",
			WithExplanation("chocking means to block a wheel, while choking means to suffocate.")),
	}
}
