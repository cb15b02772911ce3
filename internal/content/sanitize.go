package content

import "strings"

// displayStripper removes punctuation that renders badly when provider
// text is shown verbatim: double quotes (straight and typographic),
// asterisks, and backticks. Apostrophes survive so contractions keep
// their spelling.
var displayStripper = strings.NewReplacer(
	`"`, "",
	"*", "",
	"`", "",
	"“", "", // left double quote
	"”", "", // right double quote
)

// CleanText strips disallowed punctuation from provider text destined for
// direct display and trims surrounding whitespace. Applied uniformly to
// every displayed field; idempotent.
func CleanText(s string) string {
	return strings.TrimSpace(displayStripper.Replace(s))
}
