package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultPrefix starts every workbook name.
const DefaultPrefix = "SEEDS"

var fileNamePattern = regexp.MustCompile(`^([A-Z]+)(\d{2})([A-Z]{3})(\d{3})\.xlsx$`)

// FileName returns a workbook name like "SEEDS05JAN001.xlsx".
func FileName(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%02d%s%03d.xlsx", prefix, date.Day(), strings.ToUpper(date.Format("Jan")), seq)
}

// ParseFileName parses "SEEDS05JAN001.xlsx" into its prefix, day, month and
// sequence.
func ParseFileName(name string) (prefix string, day int, month time.Month, seq int, err error) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", 0, 0, 0, fmt.Errorf("invalid export file name: %q", name)
	}

	day, _ = strconv.Atoi(m[2])
	if day < 1 || day > 31 {
		return "", 0, 0, 0, fmt.Errorf("invalid day in export file name %q", name)
	}

	t, perr := time.Parse("Jan", m[3][:1]+strings.ToLower(m[3][1:]))
	if perr != nil {
		return "", 0, 0, 0, fmt.Errorf("invalid month in export file name %q: %w", name, perr)
	}

	seq, _ = strconv.Atoi(m[4])
	return m[1], day, t.Month(), seq, nil
}
