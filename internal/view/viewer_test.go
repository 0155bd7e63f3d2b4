package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		worldW, worldH         int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{
			name:  "terminal smaller than world",
			termW: 30, termH: 11, worldW: 40, worldH: 20,
			wantW: 30, wantH: 10, wantOffCol: 0, wantOffRow: 0,
		},
		{
			name:  "terminal larger than world",
			termW: 120, termH: 41, worldW: 40, worldH: 20,
			wantW: 80, wantH: 20, wantOffCol: 20, wantOffRow: 10,
		},
		{
			name:  "exact fit",
			termW: 80, termH: 21, worldW: 40, worldH: 20,
			wantW: 80, wantH: 20, wantOffCol: 0, wantOffRow: 0,
		},
		{
			name:  "degenerate terminal",
			termW: 0, termH: 0, worldW: 40, worldH: 20,
			wantW: 1, wantH: 1, wantOffCol: 0, wantOffRow: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, offCol, offRow := clampTermSize(tt.termW, tt.termH, tt.worldW, tt.worldH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantOffCol, offCol)
			assert.Equal(t, tt.wantOffRow, offRow)
		})
	}
}
