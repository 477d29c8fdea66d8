package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day/month/year layout used for TransferDate everywhere
// it is rendered (batch file, workbook, listing).
const DateLayout = "02/01/2006"

// NumCustomHeaders is the number of blank custom header columns in a Record.
const NumCustomHeaders = 5

// Columns are the record column headers in export order.
var Columns = []string{
	"Beneficiary Name",
	"Beneficiary Account Number",
	"IFSC",
	"Transaction Type",
	"Debit Account Number",
	"Transaction Date",
	"Amount",
	"Currency",
	"Beneficiary Email ID",
	"Remarks",
	"Custom Header – 1",
	"Custom Header – 2",
	"Custom Header – 3",
	"Custom Header – 4",
	"Custom Header – 5",
}

// Record is one resolved payment instruction, ready for export.
type Record struct {
	BeneficiaryName  string
	AccountNumber    string // 9-18 digits
	IFSC             string // AAAA0XXXXXX, upper case
	TransferType     string
	DebitAccount     string
	TransferDate     time.Time
	Amount           decimal.Decimal
	Currency         string
	BeneficiaryEmail string
	Remarks          string
	CustomHeaders    [NumCustomHeaders]string
}

// Values returns the cell values of r in Columns order. Amount is returned as
// a decimal.Decimal so writers can choose a numeric representation.
func (r Record) Values() []any {
	vals := []any{
		r.BeneficiaryName,
		r.AccountNumber,
		r.IFSC,
		r.TransferType,
		r.DebitAccount,
		r.TransferDate.Format(DateLayout),
		r.Amount,
		r.Currency,
		r.BeneficiaryEmail,
		r.Remarks,
	}
	for _, h := range r.CustomHeaders {
		vals = append(vals, h)
	}
	return vals
}
