package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessLine_StripsLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name: Ravi Kumar", "Ravi Kumar"},
		{"name - Ravi Kumar", "Ravi Kumar"},
		{"NAME Ravi", "Ravi"},
		{"Namesh Patel", "Namesh Patel"},
		{"A/C No: 123456789012", "123456789012"},
		{"a/c no. 123456789012", "123456789012"},
		{"Account Number: 123456789012", "123456789012"},
		{"Account No - 123456789012", "123456789012"},
		{"account 123456789012", "123456789012"},
		{"IFSC Code: hdfc0001234", "hdfc0001234"},
		{"IFSC-HDFC0001234", "HDFC0001234"},
		{"Amount: 5000", "5000"},
		{"  Ravi Kumar (brother)  ", "Ravi Kumar"},
		{"(note) 5000 (approx)", "5000"},
		{"Amount", ""},
	}
	for _, tt := range tests {
		l, _ := preprocessLine(tt.in)
		assert.Equal(t, tt.want, l.text, "preprocessLine(%q)", tt.in)
	}
}

func TestPreprocessLine_Empty(t *testing.T) {
	_, ok := preprocessLine("   (only an aside)  ")
	assert.False(t, ok)
}

func TestPreprocessLine_KeepsLabel(t *testing.T) {
	l, ok := preprocessLine("IFSC: sbin0000123 (main branch)")
	assert.True(t, ok)
	assert.Equal(t, "IFSC: sbin0000123", l.labeled)
	assert.Equal(t, "sbin0000123", l.text)
}

func TestPreprocessLine_NormalizesWidth(t *testing.T) {
	// Full-width digits fold to ASCII.
	l, ok := preprocessLine("Amount: ５０００")
	assert.True(t, ok)
	assert.Equal(t, "5000", l.text)
}
