package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

func rec(name, amount string) model.Record {
	return model.Record{
		BeneficiaryName: name,
		AccountNumber:   "123456789012",
		IFSC:            "HDFC0001234",
		TransferType:    "NEFT",
		DebitAccount:    "10225297219",
		TransferDate:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local),
		Amount:          decimal.RequireFromString(amount),
		Currency:        "INR",
	}
}

func names(records []model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.BeneficiaryName
	}
	return out
}

func TestAccumulator_AppendPreservesOrder(t *testing.T) {
	acc := NewAccumulator(nil)
	assert.Equal(t, 0, acc.Len())

	n := acc.Append([]model.Record{rec("A", "1"), rec("B", "2")})
	assert.Equal(t, 2, n)
	n = acc.Append([]model.Record{rec("C", "3")})
	assert.Equal(t, 3, n)

	assert.Equal(t, []string{"A", "B", "C"}, names(acc.Snapshot()))
}

func TestAccumulator_ResetThenAppend(t *testing.T) {
	acc := NewAccumulator([]model.Record{rec("A", "1"), rec("B", "2"), rec("C", "3")})
	acc.Reset()
	assert.Equal(t, 0, acc.Len())
	assert.Empty(t, acc.Snapshot())

	acc.Append([]model.Record{rec("D", "4")})
	assert.Equal(t, []string{"D"}, names(acc.Snapshot()))
}

func TestAccumulator_SnapshotIsCopy(t *testing.T) {
	acc := NewAccumulator([]model.Record{rec("A", "1")})
	snap := acc.Snapshot()
	snap[0].BeneficiaryName = "changed"
	assert.Equal(t, "A", acc.Snapshot()[0].BeneficiaryName)
}

func TestAccumulator_ConcurrentAppend(t *testing.T) {
	acc := NewAccumulator(nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Append([]model.Record{rec("X", "1"), rec("Y", "2")})
		}()
	}
	wg.Wait()
	snap := acc.Snapshot()
	require.Len(t, snap, 40)
	// Each append lands as a unit.
	for i := 0; i < len(snap); i += 2 {
		assert.Equal(t, "X", snap[i].BeneficiaryName)
		assert.Equal(t, "Y", snap[i+1].BeneficiaryName)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	orig := rec("Ravi Kumar", "150000.5")
	orig.Remarks = "rent"
	orig.CustomHeaders[2] = "x"

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, []model.Record{orig}))

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, orig.BeneficiaryName, got[0].BeneficiaryName)
	assert.Equal(t, orig.AccountNumber, got[0].AccountNumber)
	assert.True(t, orig.Amount.Equal(got[0].Amount))
	assert.True(t, orig.TransferDate.Equal(got[0].TransferDate))
	assert.Equal(t, "rent", got[0].Remarks)
	assert.Equal(t, "x", got[0].CustomHeaders[2])
}

func TestWriteRecords_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, nil))
	header := strings.TrimSpace(buf.String())
	assert.Equal(t, strings.Join(model.Columns, ","), header)
}

func TestReadRecords_BadAmount(t *testing.T) {
	row := MarshalRecord(rec("A", "1"))
	row[colAmount] = "lots"
	var buf bytes.Buffer
	buf.WriteString(strings.Join(model.Columns, ",") + "\n")
	buf.WriteString(strings.Join(row, ",") + "\n")

	_, err := ReadRecords(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestReadRecords_BadDate(t *testing.T) {
	row := MarshalRecord(rec("A", "1"))
	row[colDate] = "2025-01-05"
	var buf bytes.Buffer
	buf.WriteString(strings.Join(model.Columns, ",") + "\n")
	buf.WriteString(strings.Join(row, ",") + "\n")

	_, err := ReadRecords(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestValidateRecords(t *testing.T) {
	good := rec("A", "10")
	assert.Empty(t, ValidateRecords([]model.Record{good}))

	bad := rec("", "0")
	bad.AccountNumber = "12345"
	bad.IFSC = "hdfc0001234"
	errs := ValidateRecords([]model.Record{good, bad})
	require.Len(t, errs, 4)
	for _, e := range errs {
		assert.Equal(t, 2, e.Row)
	}
	assert.Contains(t, errs[0].Error(), "record 2 [Beneficiary Name]")
}

func TestStore_LoadMissingIsEmpty(t *testing.T) {
	acc, err := NewStore(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Len())
}

func TestStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	acc := NewAccumulator([]model.Record{rec("A", "1"), rec("B", "2.5")})
	require.NoError(t, store.Save(acc))

	_, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(got.Snapshot()))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_LoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := rec("A", "1")
	bad.IFSC = "NOTANIFSC"

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, []model.Record{bad}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), buf.Bytes(), 0o644))

	_, err := NewStore(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
