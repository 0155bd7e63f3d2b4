package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundsCenteredOnOrigin(t *testing.T) {
	b := NewBounds(40, 20)
	assert.Equal(t, Vec2{-20, -10}, b.Min())
	assert.Equal(t, Vec2{20, 10}, b.Max())
	assert.Equal(t, 40.0, b.Width())
	assert.Equal(t, 20.0, b.Height())
}

func TestBoundsOutside(t *testing.T) {
	b := NewBounds(20, 10) // [-10,10] x [-5,5]

	tests := []struct {
		name    string
		point   Vec2
		normal  Vec2
		outside bool
	}{
		{"center", Vec2{0, 0}, Vec2{}, false},
		{"on right edge", Vec2{10, 0}, Vec2{}, false},
		{"past right", Vec2{10.5, 0}, Vec2{-1, 0}, true},
		{"past left", Vec2{-11, 0}, Vec2{1, 0}, true},
		{"past top", Vec2{0, 5.2}, Vec2{0, -1}, true},
		{"past bottom", Vec2{0, -6}, Vec2{0, 1}, true},
		{"past corner gives diagonal", Vec2{11, 6}, Vec2{-1, -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normal, outside := b.Outside(tt.point)
			assert.Equal(t, tt.outside, outside)
			assert.Equal(t, tt.normal, normal)
		})
	}
}

func TestBoundsCornerNormalIsNotUnit(t *testing.T) {
	b := NewBounds(20, 10)
	normal, outside := b.Outside(Vec2{-11, -6})
	assert.True(t, outside)
	// Diagonal normals arrive additive and non-unit; reflection code must
	// normalize before use.
	assert.Equal(t, Vec2{1, 1}, normal)
	assert.Greater(t, normal.Length(), 1.0)
}
