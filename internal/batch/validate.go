package batch

import (
	"fmt"
	"regexp"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

var (
	accountNumberPattern = regexp.MustCompile(`^\d{9,18}$`)
	ifscCodePattern      = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// ValidationError describes a single rule violation in a stored record.
type ValidationError struct {
	Row         int // 1-based position in the batch
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("record %d [%s]: %s", e.Row, e.Field, e.Description)
}

// ValidateRecords checks that every record still has the shape the parser
// produces. Edited batch files are the usual source of violations.
func ValidateRecords(records []model.Record) []ValidationError {
	var errs []ValidationError

	for i, rec := range records {
		row := i + 1
		add := func(field, desc string) {
			errs = append(errs, ValidationError{Row: row, Field: field, Description: desc})
		}

		if rec.BeneficiaryName == "" {
			add("Beneficiary Name", "missing beneficiary name")
		}
		if !accountNumberPattern.MatchString(rec.AccountNumber) {
			add("Beneficiary Account Number", fmt.Sprintf("account number %q is not 9-18 digits", rec.AccountNumber))
		}
		if !ifscCodePattern.MatchString(rec.IFSC) {
			add("IFSC", fmt.Sprintf("IFSC %q does not match AAAA0XXXXXX", rec.IFSC))
		}
		if !rec.Amount.IsPositive() {
			add("Amount", fmt.Sprintf("amount %s is not positive", rec.Amount))
		}
		if rec.TransferDate.IsZero() {
			add("Transaction Date", "missing transfer date")
		}
	}
	return errs
}
