package entity

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"NotStarted", StatusNotStarted, true},
		{"Started", StatusStarted, true},
		{"Pending", StatusPending, true},
		{"Completed", StatusCompleted, true},
		{"completed", "", false}, // case sensitive
		{"COMPLETED", "", false},
		{"Done", "", false},
		{"", "", false},
		{" Pending", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseStatus(%q): %v", tt.raw, err)
				}
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
				return
			}
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q): got %v, want ErrInvalidStatus", tt.raw, err)
			}
		})
	}
}
