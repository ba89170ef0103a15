package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "john.doe@example.com", "john.doe@example.com"},
		{"markup stripped", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"angle brackets removed", "a < b > c", "a  b  c"},
		{"whitespace trimmed", "  alice  ", "alice"},
		{"only markup collapses to empty", " <> ", ""},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}
