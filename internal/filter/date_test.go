package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecentJob(t *testing.T) {
	tests := []struct {
		dateStr string
		want    bool
	}{
		{"Posted 2 days ago", true},
		{"3 weeks ago", false},
		{"Just Now", true},
		{"Today", true},
		{"A Few Hours Ago", true},
		{"1 Day Ago", true},
		{"3 Days Ago", true},
		{"30+ days ago", false},
		{"5 days ago", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.dateStr, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecentJob(tt.dateStr))
		})
	}
}
