package seeds

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifies one of the four extracted slots of a block.
type Field string

const (
	FieldAccount Field = "account number"
	FieldIFSC    Field = "IFSC"
	FieldAmount  Field = "amount"
	FieldName    Field = "name"
)

var (
	// Account number: a standalone run of 9-18 digits.
	accountRunPattern  = regexp.MustCompile(`(?:^|\D)(\d{9,18})(?:\D|$)`)
	accountBarePattern = regexp.MustCompile(`^\d{9,18}$`)
	accountHintPattern = regexp.MustCompile(`(?i)\b(?:account|acct|acc|ac\s*no)\b|\ba/c\b`)

	// "<digits><anything>:-<name>" single-line shorthand.
	compoundPattern = regexp.MustCompile(`^(\d{9,18})(?:\D.*)?:-`)

	// IFSC: 4 letters + 0 + 6 alphanumeric characters.
	ifscPattern     = regexp.MustCompile(`(?i)\b([A-Z]{4}0[A-Z0-9]{6})\b`)
	ifscBarePattern = regexp.MustCompile(`(?i)^[A-Z]{4}0[A-Z0-9]{6}$`)
	ifscHintPattern = regexp.MustCompile(`(?i)\bifsc\b`)

	// Amount hints and shapes.
	amountHintPattern      = regexp.MustCompile(`(?i)\b(?:amount|amt|inr|rs)\b|\b(?:inr|rs)\d|₹`)
	amountMagnitudePattern = regexp.MustCompile(`(?i)\d\s?(?:[kml]|lakhs?|lacs?)\b`)
	amountFallbackPattern  = regexp.MustCompile(`\d{2,}`)
	// The number (with its magnitude suffix) handed to NormalizeAmount.
	amountFragmentPattern = regexp.MustCompile(`(?i)\d[\d,]*(?:\.\d+)?(?:\s?(?:lakhs?|lacs?|[kml])\b)?(?:/-)?`)

	// Lines carrying a phone number never yield an account or amount by shape alone.
	phoneHintPattern = regexp.MustCompile(`(?i)\b(?:mobile|mob|phone|ph|contact|cell|whatsapp)\b`)

	// Name labels, longest first. A bare "beneficiary" label ranks below these.
	nameLabelPattern        = regexp.MustCompile(`(?i)^(?:beneficiary\s+name|customer\s+name|account\s+holder(?:\s+name)?|account\s+name|a/c\s+(?:holder\s+)?name|acc\s+name|holder\s+name|name)(?:\s*[:\-]+\s*|\s+)(.+)$`)
	beneficiaryLabelPattern = regexp.MustCompile(`(?i)^beneficiary(?:\s*[:\-]+\s*|\s+)(.+)$`)
	// A labeled name ends where another field's words or digits begin.
	nameStopPattern = regexp.MustCompile(`(?i)\b(?:ifsc|account|acct|acc|amount|amt|rs|inr|bank|branch|swift|mobile|mob|phone|ph|contact|cell|whatsapp|holder)\b|\ba/c\b|\d|₹`)
	reservedPattern  = regexp.MustCompile(`(?i)\b(?:ifsc|account|amount|rs|bank|branch|swift|mobile|acc|holder)\b|\ba/c\b`)
	numericPattern   = regexp.MustCompile(`^\d+$`)
	letterPattern    = regexp.MustCompile(`\pL`)
)

// rule is one ranked matcher for a field. match returns the field value the
// line yields, if any.
type rule struct {
	name  string
	match func(l line) (string, bool)
	// shared rules read the line as preprocessed, including text an earlier
	// field consumed.
	shared bool
	// fresh rules skip lines an earlier field consumed any text from.
	fresh bool
}

// extractor resolves one field from the lines of a block using its rules in
// rank order. consume removes the matched text from the line so later fields
// do not see it.
type extractor struct {
	field   Field
	rules   []rule
	consume func(l line, value string) line
}

// extractors run in this order; earlier fields consume text before later
// ones look at the line.
var extractors = []extractor{
	{field: FieldAccount, rules: accountRules, consume: cutToken},
	{field: FieldIFSC, rules: ifscRules, consume: cutToken},
	{field: FieldAmount, rules: amountRules, consume: cutAmount},
	{field: FieldName, rules: nameRules},
}

var accountRules = []rule{
	{name: "labeled", match: func(l line) (string, bool) {
		if !accountHintPattern.MatchString(l.labeled) {
			return "", false
		}
		return submatch(accountRunPattern, l.labeled)
	}},
	{name: "compound", match: func(l line) (string, bool) {
		return submatch(compoundPattern, l.text)
	}},
	{name: "bare", match: func(l line) (string, bool) {
		if accountBarePattern.MatchString(l.text) {
			return l.text, true
		}
		return "", false
	}},
	{name: "digit-run", match: func(l line) (string, bool) {
		if phoneHintPattern.MatchString(l.labeled) {
			return "", false
		}
		return submatch(accountRunPattern, l.text)
	}},
}

var ifscRules = []rule{
	{name: "labeled", match: func(l line) (string, bool) {
		if !ifscHintPattern.MatchString(l.labeled) {
			return "", false
		}
		return upper(submatch(ifscPattern, l.labeled))
	}},
	{name: "bare", match: func(l line) (string, bool) {
		if ifscBarePattern.MatchString(l.text) {
			return strings.ToUpper(l.text), true
		}
		return "", false
	}},
	{name: "pattern", match: func(l line) (string, bool) {
		return upper(submatch(ifscPattern, l.text))
	}},
}

var amountRules = []rule{
	{name: "labeled", match: func(l line) (string, bool) {
		if !amountHintPattern.MatchString(l.labeled) {
			return "", false
		}
		return amountFrom(l.text)
	}},
	{name: "magnitude", match: func(l line) (string, bool) {
		if !amountMagnitudePattern.MatchString(l.text) {
			return "", false
		}
		return amountFrom(l.text)
	}},
	{name: "digit-run", fresh: true, match: func(l line) (string, bool) {
		if phoneHintPattern.MatchString(l.labeled) || !amountFallbackPattern.MatchString(l.text) {
			return "", false
		}
		return amountFrom(l.text)
	}},
}

var nameRules = []rule{
	{name: "labeled", match: func(l line) (string, bool) {
		return labeledName(submatch(nameLabelPattern, l.labeled))
	}},
	{name: "beneficiary", match: func(l line) (string, bool) {
		return labeledName(submatch(beneficiaryLabelPattern, l.labeled))
	}},
	{name: "compound", shared: true, match: func(l line) (string, bool) {
		if !compoundPattern.MatchString(l.text) {
			return "", false
		}
		i := strings.LastIndex(l.text, ":-")
		return cleanName(l.text[i+2:], true)
	}},
	{name: "generic", fresh: true, match: func(l line) (string, bool) {
		t := l.text
		if !letterPattern.MatchString(t) || numericPattern.MatchString(t) {
			return "", false
		}
		if amountMagnitudePattern.MatchString(t) || reservedPattern.MatchString(t) || phoneHintPattern.MatchString(t) {
			return "", false
		}
		// Name-labeled lines are judged by the labeled rules only.
		if nameLabelPattern.MatchString(l.labeled) || beneficiaryLabelPattern.MatchString(l.labeled) {
			return "", false
		}
		return cleanName(t, true)
	}},
}

// extraction holds the candidate slots of one block. A slot is set once and
// never overwritten.
type extraction struct {
	values map[Field]string
	// matchedBy records the rule that resolved each field.
	matchedBy map[Field]string
}

func (e extraction) get(f Field) string { return e.values[f] }

// missing returns the fields that did not resolve, in extractor order.
func (e extraction) missing() []Field {
	var out []Field
	for _, ex := range extractors {
		if _, ok := e.values[ex.field]; !ok {
			out = append(out, ex.field)
		}
	}
	return out
}

// amount returns the resolved amount, or zero when unresolved.
func (e extraction) amount() decimal.Decimal {
	v, ok := e.values[FieldAmount]
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// extract runs every field extractor over the lines of one block.
func extract(lines []line) extraction {
	e := extraction{
		values:    make(map[Field]string, len(extractors)),
		matchedBy: make(map[Field]string, len(extractors)),
	}
	views := make([]line, len(lines))
	copy(views, lines)
	touched := make([]bool, len(lines))
	for _, ex := range extractors {
		value, ruleName, idx, ok := ex.resolve(lines, views, touched)
		if !ok {
			continue
		}
		e.values[ex.field] = value
		e.matchedBy[ex.field] = ruleName
		if ex.consume != nil {
			views[idx] = ex.consume(views[idx], value)
			touched[idx] = true
		}
	}
	return e
}

// resolve tries each rule across all lines before moving on to the next
// rule, so a higher-ranked rule wins regardless of line order. Rules see the
// views left by earlier fields unless they are shared.
func (ex extractor) resolve(lines, views []line, touched []bool) (value, ruleName string, idx int, ok bool) {
	for _, r := range ex.rules {
		for i := range views {
			if r.fresh && touched[i] {
				continue
			}
			l := views[i]
			if r.shared {
				l = lines[i]
			}
			if v, ok := r.match(l); ok {
				return v, r.name, i, true
			}
		}
	}
	return "", "", -1, false
}

// cutToken blanks the first standalone occurrence of value, ignoring case.
func cutToken(l line, value string) line {
	re := regexp.MustCompile(`(?i)(?:^|[^0-9a-z])(` + regexp.QuoteMeta(value) + `)(?:[^0-9a-z]|$)`)
	cut := func(s string) string {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		return s[:loc[2]] + " " + s[loc[3]:]
	}
	return line{labeled: cut(l.labeled), text: cut(l.text)}
}

// cutAmount blanks the number the amount rules read from the line.
func cutAmount(l line, _ string) line {
	frag := amountFragmentPattern.FindString(l.text)
	if frag == "" {
		return l
	}
	return line{
		labeled: strings.Replace(l.labeled, frag, " ", 1),
		text:    strings.Replace(l.text, frag, " ", 1),
	}
}

func submatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func upper(s string, ok bool) (string, bool) {
	return strings.ToUpper(s), ok
}

// amountFrom normalises the first number (and its suffix) on a line.
func amountFrom(text string) (string, bool) {
	frag := amountFragmentPattern.FindString(text)
	if frag == "" {
		return "", false
	}
	d, ok := NormalizeAmount(frag)
	if !ok {
		return "", false
	}
	return d.String(), true
}

// labeledName keeps the part of a labeled capture before any other field's
// words and rejects what remains if it is not a name.
func labeledName(s string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	if loc := nameStopPattern.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return cleanName(s, true)
}

func cleanName(s string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	s = strings.Trim(s, " \t:-,")
	if s == "" || !letterPattern.MatchString(s) {
		return "", false
	}
	return s, true
}
