package seeds

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

// ErrNoEntries is returned when a paste yields no complete record.
var ErrNoEntries = errors.New("could not auto-detect valid entries: make sure each block includes name, A/C, IFSC, and amount")

var (
	lineBreakPattern = regexp.MustCompile(`\r\n|\r`)
	// Two or more line breaks; whitespace-only lines count as blank.
	blockSeparator = regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*)+`)
)

// Defaults are the fixed columns merged into every assembled record.
type Defaults struct {
	TransferType string
	DebitAccount string
	Currency     string
}

// DefaultDefaults returns the transfer constants of the bulk payout sheet.
func DefaultDefaults() Defaults {
	return Defaults{
		TransferType: "NEFT",
		DebitAccount: "10225297219",
		Currency:     "INR",
	}
}

// DroppedBlock describes a block that did not produce a record.
type DroppedBlock struct {
	Index   int     // zero-based block position in the paste
	Missing []Field // fields that never resolved
	// ZeroAmount is set when every field resolved but the amount was zero.
	ZeroAmount bool
}

// Result is the outcome of parsing one paste.
type Result struct {
	Records []model.Record
	Blocks  int
	Dropped []DroppedBlock
}

// Parser turns pasted payment text into records.
type Parser struct {
	defaults Defaults
	now      func() time.Time
	logger   *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the clock used for the transfer date.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// WithLogger sets the logger used for per-block diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// New creates a Parser that fills constant columns from d.
func New(d Defaults, opts ...Option) *Parser {
	p := &Parser{
		defaults: d,
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits raw into blocks and assembles a record for every block in
// which all four fields resolved. Incomplete blocks are dropped.
func (p *Parser) Parse(raw string) Result {
	today := p.now()
	blocks := SplitBlocks(raw)

	res := Result{Blocks: len(blocks)}
	for i, block := range blocks {
		e := extract(preprocessBlock(block))

		missing := e.missing()
		amount := e.amount()
		if len(missing) > 0 || !amount.IsPositive() {
			d := DroppedBlock{Index: i, Missing: missing, ZeroAmount: len(missing) == 0}
			res.Dropped = append(res.Dropped, d)
			p.logger.Debug("dropped block", "block", i+1, "missing", missing, "zero_amount", d.ZeroAmount)
			continue
		}

		p.logger.Debug("parsed block", "block", i+1,
			"account", e.matchedBy[FieldAccount],
			"ifsc", e.matchedBy[FieldIFSC],
			"amount", e.matchedBy[FieldAmount],
			"name", e.matchedBy[FieldName])
		res.Records = append(res.Records, p.assemble(e, amount, today))
	}
	return res
}

func (p *Parser) assemble(e extraction, amount decimal.Decimal, today time.Time) model.Record {
	return model.Record{
		BeneficiaryName: e.get(FieldName),
		AccountNumber:   e.get(FieldAccount),
		IFSC:            e.get(FieldIFSC),
		TransferType:    p.defaults.TransferType,
		DebitAccount:    p.defaults.DebitAccount,
		TransferDate:    time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()),
		Amount:          amount,
		Currency:        p.defaults.Currency,
	}
}

// SplitBlocks splits raw text into blocks separated by blank lines. Each
// block is returned as its raw lines.
func SplitBlocks(raw string) [][]string {
	text := strings.TrimSpace(lineBreakPattern.ReplaceAllString(raw, "\n"))
	if text == "" {
		return nil
	}
	var blocks [][]string
	for _, b := range blockSeparator.Split(text, -1) {
		blocks = append(blocks, strings.Split(b, "\n"))
	}
	return blocks
}

func preprocessBlock(raw []string) []line {
	lines := make([]line, 0, len(raw))
	for _, r := range raw {
		if l, ok := preprocessLine(r); ok {
			lines = append(lines, l)
		}
	}
	return lines
}
