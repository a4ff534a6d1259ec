package collision

import (
	"testing"

	"github.com/automoto/arena/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleToRectangleSide(t *testing.T) {
	obstacle := rect(0, 0, 10, 10)

	tests := []struct {
		name     string
		body     geometry.RectangleBody
		expected Side
	}{
		{"from the left", rect(-8, 0, 10, 10), SideLeft},
		{"from the right", rect(8, 0, 10, 10), SideRight},
		{"from above", rect(0, -8, 10, 10), SideTop},
		{"from below", rect(0, 8, 10, 10), SideBottom},
		{"mostly left, a bit low", rect(-8, 2, 10, 10), SideLeft},
		{"far apart", rect(40, 40, 10, 10), SideNone},
		{"same center", rect(0, 0, 10, 10), SideTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RectangleToRectangleSide(tt.body, obstacle))
		})
	}
}

func TestRectangleToRectangleSideScenario(t *testing.T) {
	r1 := rect(0, 0, 10, 10)
	r2 := rect(8, 0, 10, 10)

	require.True(t, RectangleToRectangle(r1, r2))
	require.Equal(t, SideLeft, RectangleToRectangleSide(r1, r2))

	corrected := CorrectedPositionFromSide(r1, r2, SideLeft)
	assert.Equal(t, 8.0, corrected.Right())
	assert.Equal(t, r2.Left(), corrected.Right())
}

func TestRectangleToRectangleSideExhaustive(t *testing.T) {
	obstacle := rect(0, 0, 10, 10)
	for x := -20.0; x <= 20; x += 0.5 {
		for y := -20.0; y <= 20; y += 0.5 {
			body := rect(x, y, 6, 4)
			side := RectangleToRectangleSide(body, obstacle)
			switch {
			case RectangleToRectangle(body, obstacle):
				require.Contains(t, []Side{SideLeft, SideTop, SideRight, SideBottom}, side, "body=%+v", body)
			case x+6 < 0 || x > 10 || y+4 < 0 || y > 10:
				require.Equal(t, SideNone, side, "body=%+v", body)
			}
		}
	}
}

func TestCircleToRectangleSideUsesBox(t *testing.T) {
	r := rect(0, 0, 10, 10)
	// The circle misses the corner but its box does not.
	c := circle(-1, -1, 1.2)

	require.False(t, CircleToRectangle(c, r))
	assert.Equal(t, RectangleToRectangleSide(c.Box(), r), CircleToRectangleSide(c, r))
	assert.NotEqual(t, SideNone, CircleToRectangleSide(c, r))
}

func TestSideString(t *testing.T) {
	for _, side := range []Side{SideNone, SideLeft, SideTop, SideRight, SideBottom} {
		parsed, err := ParseSide(side.String())
		require.NoError(t, err)
		assert.Equal(t, side, parsed)
	}

	_, err := ParseSide("diagonal")
	assert.ErrorIs(t, err, ErrUnknownSide)
	assert.Equal(t, "Side(42)", Side(42).String())
}
