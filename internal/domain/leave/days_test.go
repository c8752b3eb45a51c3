package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalDays(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{"same day", NewDate(2024, 6, 1), NewDate(2024, 6, 1), 1},
		{"five days", NewDate(2024, 6, 1), NewDate(2024, 6, 5), 5},
		{"cross month", NewDate(2024, 6, 28), NewDate(2024, 7, 2), 5},
		{"cross year", NewDate(2024, 12, 30), NewDate(2025, 1, 2), 4},
		{"reversed range counts absolute span", NewDate(2024, 6, 5), NewDate(2024, 6, 1), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDays(tt.start, tt.end))
		})
	}
}
