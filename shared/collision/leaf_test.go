package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColliderKind(t *testing.T) {
	for _, kind := range []ColliderKind{ColliderFull, ColliderZone, ColliderNone} {
		parsed, err := ParseColliderKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseColliderKind("half")
	assert.ErrorIs(t, err, ErrUnknownCollider)
}

func TestLeafBody(t *testing.T) {
	leaf := &Leaf{MinX: 4, MinY: 6, MaxX: 20, MaxY: 10}
	assert.Equal(t, rect(4, 6, 16, 4), leaf.Body())

	assert.Equal(t, leaf.Body(), NewLeaf(4, 6, 16, 4, ColliderFull, 0).Body())
}

func TestLeafValidate(t *testing.T) {
	tests := []struct {
		name string
		leaf Leaf
		err  error
	}{
		{"ok", Leaf{MaxX: 1, MaxY: 1}, nil},
		{"zero extent", Leaf{MinX: 3, MinY: 3, MaxX: 3, MaxY: 3}, nil},
		{"inverted", Leaf{MinX: 5, MaxX: 1, MaxY: 1}, ErrInvalidLeaf},
		{"nan", Leaf{MinX: math.NaN(), MaxX: 1, MaxY: 1}, ErrInvalidLeaf},
		{"inf", Leaf{MaxX: math.Inf(1), MaxY: 1}, ErrInvalidLeaf},
		{"unknown collider", Leaf{MaxX: 1, MaxY: 1, Collider: ColliderKind(7)}, ErrUnknownCollider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.leaf.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLeafSolid(t *testing.T) {
	assert.True(t, NewLeaf(0, 0, 1, 1, ColliderFull, 0).Solid())
	assert.False(t, NewLeaf(0, 0, 1, 1, ColliderZone, 0).Solid())
	assert.False(t, NewLeaf(0, 0, 1, 1, ColliderNone, 0).Solid())
}
