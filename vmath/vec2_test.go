package vmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/aftermath/vmath"
)

func TestVec2Arithmetic(t *testing.T) {
	a := vmath.Vec2{X: 1, Y: 2}
	b := vmath.Vec2{X: 3, Y: -1}

	assert.Equal(t, vmath.Vec2{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, vmath.Vec2{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, vmath.Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.Equal(t, 1.0, a.Dot(b))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 5.0, vmath.Vec2{X: 3, Y: 4}.Length())
	assert.Equal(t, 0.0, vmath.Vec2{}.Length())
}

func TestNormalized(t *testing.T) {
	n := vmath.Vec2{X: 1, Y: 1}.Normalized()
	assert.InDelta(t, 1.0/math.Sqrt2, n.X, 1e-12)
	assert.InDelta(t, 1.0/math.Sqrt2, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)

	// Zero-safe.
	assert.Equal(t, vmath.Vec2{}, vmath.Vec2{}.Normalized())
}

func TestIsZero(t *testing.T) {
	assert.True(t, vmath.Vec2{}.IsZero())
	assert.False(t, vmath.Vec2{X: 0.001}.IsZero())
}
