package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		pct        int
		wantFilled int
	}{
		{name: "Empty", pct: 0, wantFilled: 0},
		{name: "Half", pct: 50, wantFilled: 10},
		{name: "Full", pct: 100, wantFilled: 20},
		{name: "Clamped", pct: 140, wantFilled: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := progressBar(tt.pct, 20)

			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, 20-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}
