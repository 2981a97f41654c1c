package utils

import "testing"

func TestIsValidBranchCode(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"T1", true},
		{"T4", true},
		{"B12", true},
		{"", false},
		{"T", false},
		{"t1", false},
		{"T1a", false},
		{"T123", false},
		{"1T", false},
	}

	for _, tt := range tests {
		if got := IsValidBranchCode(tt.input); got != tt.valid {
			t.Errorf("IsValidBranchCode(%q) = %v; want %v", tt.input, got, tt.valid)
		}
	}
}
