package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordValues(t *testing.T) {
	r := Record{
		BeneficiaryName: "Ravi Kumar",
		AccountNumber:   "123456789012",
		IFSC:            "HDFC0001234",
		TransferType:    "NEFT",
		DebitAccount:    "10225297219",
		TransferDate:    time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC),
		Amount:          decimal.RequireFromString("150000"),
		Currency:        "INR",
	}

	vals := r.Values()
	require.Len(t, vals, len(Columns))
	assert.Equal(t, "Ravi Kumar", vals[0])
	assert.Equal(t, "05/01/2025", vals[5])
	assert.True(t, vals[6].(decimal.Decimal).Equal(decimal.NewFromInt(150000)))
	for i := 8; i < len(vals); i++ {
		assert.Equal(t, "", vals[i], "column %q should be blank", Columns[i])
	}
}

func TestColumnsOrder(t *testing.T) {
	assert.Equal(t, "Beneficiary Name", Columns[0])
	assert.Equal(t, "IFSC", Columns[2])
	assert.Equal(t, "Amount", Columns[6])
	assert.Equal(t, "Custom Header – 5", Columns[len(Columns)-1])
}
