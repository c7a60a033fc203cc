// Package mistake detects common English usage mistakes in comment text.
//
// A Rule is a literal pattern with required surrounding context, a list of
// exception substrings, a correction and an explanation. A Checker evaluates
// an ordered catalog of rules and reports the first match only:
//
//	checker := mistake.DefaultChecker()
//	if m, ok := checker.Check(text.Prepare(body)); ok {
//		fmt.Println(m.Context, "->", m.Correction)
//	}
//
// Matching is plain substring search over lower-cased input. The package
// performs no I/O and keeps no counters, so one Checker can serve any number
// of goroutines.
package mistake
