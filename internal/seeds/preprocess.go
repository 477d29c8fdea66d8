package seeds

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	parentheticalPattern = regexp.MustCompile(`\(.*?\)`)

	// Longer labels come first so "account number" wins over "account".
	// A label only counts when followed by a separator, whitespace or the end
	// of the line, so "Namesh" keeps its first four letters.
	labelPrefixPattern = regexp.MustCompile(`(?i)^(?:name|a/c\s*no\.?|account\s+number|account\s+no\.?|account|ifsc\s+code|ifsc|amount)(?:\s*[:\-]+\s*|\s+|$)`)
)

// line is one preprocessed line of a block.
type line struct {
	// labeled is the trimmed line with asides removed but any label kept;
	// extractors use it for label hints.
	labeled string
	// text is labeled with one leading field label stripped.
	text string
}

// preprocessLine normalises one raw line. It returns false when nothing is
// left after cleaning.
func preprocessLine(raw string) (line, bool) {
	s := norm.NFKC.String(raw)
	s = parentheticalPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return line{}, false
	}
	text := strings.TrimSpace(labelPrefixPattern.ReplaceAllString(s, ""))
	return line{labeled: s, text: text}, true
}
