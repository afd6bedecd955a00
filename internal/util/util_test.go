package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "seconds only", duration: 45 * time.Second, want: "45s"},
		{name: "zero", duration: 0, want: "0s"},
		{name: "minutes and seconds", duration: 5*time.Minute + 10*time.Second, want: "5m10s"},
		{name: "whole minutes", duration: 30 * time.Minute, want: "30m0s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, want: "1h30m"},
		{name: "sub-second rounds", duration: 1499 * time.Millisecond, want: "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.duration))
		})
	}
}
