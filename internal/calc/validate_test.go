package calc

import (
	"errors"
	"testing"
)

func TestParseOperand(t *testing.T) {
	max := dec(t, "1000000")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", "42", "42", false},
		{"decimal", "3.14", "3.14", false},
		{"negative", "-7.5", "-7.5", false},
		{"whitespace", "  12  ", "12", false},
		{"scientific", "1e3", "1000", false},
		{"at limit", "1000000", "1000000", false},
		{"negative at limit", "-1000000", "-1000000", false},
		{"empty", "", "", true},
		{"words", "banana", "", true},
		{"partial number", "12abc", "", true},
		{"too large", "1000001", "", true},
		{"too small", "-1000001", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperand(tt.input, max)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("ParseOperand(%q) error = %v, want ErrValidation", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOperand(%q): %v", tt.input, err)
			}
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("ParseOperand(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
