package classifier

import (
	"regexp"
	"strings"
)

var (
	nonWordRuns = regexp.MustCompile(`\W+`)
	digitRuns   = regexp.MustCompile(`\d+`)
)

// NormalizeText prepares raw resume text for the role classifier: lower-case,
// collapse each run of non-word characters to a single space, delete digits,
// drop English stop-words, rejoin single-spaced. The step order is part of
// the contract. Pure and total; empty input yields empty output.
func NormalizeText(text string) string {
	text = nonWordRuns.ReplaceAllString(strings.ToLower(text), " ")
	text = digitRuns.ReplaceAllString(text, "")

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopWords[w]; !stop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
