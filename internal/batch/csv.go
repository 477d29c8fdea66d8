package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

const (
	colName         = 0
	colAccount      = 1
	colIFSC         = 2
	colTransferType = 3
	colDebitAccount = 4
	colDate         = 5
	colAmount       = 6
	colCurrency     = 7
	colEmail        = 8
	colRemarks      = 9
	colCustomFirst  = 10
)

var numFields = len(model.Columns)

// ReadRecords reads all records from a batch.csv reader.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading batch CSV: %w", err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	// Skip header row.
	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records to a batch.csv writer (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colName] = rec.BeneficiaryName
	row[colAccount] = rec.AccountNumber
	row[colIFSC] = rec.IFSC
	row[colTransferType] = rec.TransferType
	row[colDebitAccount] = rec.DebitAccount
	row[colDate] = rec.TransferDate.Format(model.DateLayout)
	row[colAmount] = rec.Amount.String()
	row[colCurrency] = rec.Currency
	row[colEmail] = rec.BeneficiaryEmail
	row[colRemarks] = rec.Remarks
	for i, h := range rec.CustomHeaders {
		row[colCustomFirst+i] = h
	}
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := time.ParseInLocation(model.DateLayout, row[colDate], time.Local)
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	rec := model.Record{
		BeneficiaryName:  row[colName],
		AccountNumber:    row[colAccount],
		IFSC:             row[colIFSC],
		TransferType:     row[colTransferType],
		DebitAccount:     row[colDebitAccount],
		TransferDate:     date,
		Amount:           amount,
		Currency:         row[colCurrency],
		BeneficiaryEmail: row[colEmail],
		Remarks:          row[colRemarks],
	}
	copy(rec.CustomHeaders[:], row[colCustomFirst:])
	return rec, nil
}
