package prompt

import "strings"

// Answer is the classification of one input line.
type Answer int

const (
	Unrecognized Answer = iota
	Affirmative
	Negative
)

func (a Answer) String() string {
	switch a {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "unrecognized"
	}
}

// Normalize trims surrounding whitespace and lowercases the line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// Classify maps a raw input line to an Answer. Only exact matches after
// normalization count.
func Classify(line string) Answer {
	switch Normalize(line) {
	case "yes", "y":
		return Affirmative
	case "no", "n":
		return Negative
	default:
		return Unrecognized
	}
}
