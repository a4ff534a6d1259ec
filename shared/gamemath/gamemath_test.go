package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 5.0, Distance(3, 4, 0, 0))
	assert.Equal(t, 0.0, Distance(7, 7, 7, 7))
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		expected    float64
	}{
		{"below", -1, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 11, 0, 10, 10},
		{"on edge", 10, 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampFloat(tt.v, tt.min, tt.max))
		})
	}
}

func TestStep(t *testing.T) {
	dx, dy := Step(0, 3)
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, 0.0, dy)

	dx, dy = Step(math.Pi/2, 2)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 2, dy, 1e-9)
}
