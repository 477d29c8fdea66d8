package activity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	e := Entry{
		Timestamp:  time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC),
		Action:     ActionAdd,
		Details:    "paste.txt, stdin",
		Records:    3,
		BatchSize:  7,
		CommitHash: "abc1234",
	}
	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"a"})
	assert.Error(t, err)

	row := MarshalEntry(Entry{Timestamp: time.Now(), Action: ActionReset})
	row[colRecords] = "many"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing records")
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	require.NoError(t, Append(dir, Entry{Timestamp: ts, Action: ActionAdd, Records: 2, BatchSize: 2}))
	require.NoError(t, Append(dir,
		Entry{Timestamp: ts, Action: ActionExport, Details: "SEEDS05JAN001.xlsx", Records: 2, BatchSize: 2},
		Entry{Timestamp: ts, Action: ActionReset, Records: 2, BatchSize: 0},
	))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, ActionAdd, entries[0].Action)
	assert.Equal(t, "SEEDS05JAN001.xlsx", entries[1].Details)
	assert.Equal(t, 0, entries[2].BatchSize)

	// Header is written once.
	data, err := os.ReadFile(filepath.Join(dir, "logs", "activity-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}
