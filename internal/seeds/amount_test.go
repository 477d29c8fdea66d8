package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1.5L", "150000", true},
		{"1.5 lakh", "150000", true},
		{"2k", "2000", true},
		{"2K", "2000", true},
		{"Amount: 5000", "5000", true},
		{"₹25,000/-", "25000", true},
		{"Rs. 12,500.50", "12500.5", true},
		{"INR 700", "700", true},
		{"3m", "3", true},
		{"Amount: 0", "0", true},
		{"Amount: TBD", "0", false},
		{"", "0", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeAmount(tt.in)
		assert.Equal(t, tt.wantOK, ok, "NormalizeAmount(%q) ok", tt.in)
		assert.Equal(t, tt.want, got.String(), "NormalizeAmount(%q)", tt.in)
	}
}
