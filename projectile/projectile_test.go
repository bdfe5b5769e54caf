// Package projectile_test: tick integration and trajectory rasterization.
package projectile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintlab/glint/canvas"
	"github.com/glintlab/glint/projectile"
	"github.com/glintlab/glint/tuple"
)

func TestTick(t *testing.T) {
	t.Parallel()

	env := projectile.Environment{
		Gravity: tuple.NewVector(0, -0.1, 0),
		Wind:    tuple.NewVector(-0.01, 0, 0),
	}
	s := projectile.State{
		Position: tuple.NewPoint(0, 1, 0),
		Velocity: tuple.NewVector(1, 1.8, 0),
	}

	next := projectile.Tick(env, s)
	require.True(t, next.Position.Equal(tuple.NewPoint(1, 2.8, 0)))
	require.True(t, next.Velocity.Equal(tuple.NewVector(0.99, 1.7, 0)))
	require.True(t, next.Position.IsPoint())
	require.True(t, next.Velocity.IsVector())

	// Inputs are untouched (value semantics).
	require.True(t, s.Position.Equal(tuple.NewPoint(0, 1, 0)))
}

func TestTraceParabola(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(20, 20)
	require.NoError(t, err)

	env := projectile.Environment{Gravity: tuple.NewVector(0, -1, 0)}
	s := projectile.State{
		Position: tuple.NewPoint(0, 10, 0),
		Velocity: tuple.NewVector(1, 0, 0),
	}
	red := tuple.NewColor(1, 0, 0)

	ticks, err := projectile.Trace(env, s, c, red)
	require.NoError(t, err)
	// Positions: (0,10) (1,10) (2,9) (3,7) (4,4) (5,0), then y < 0.
	require.Equal(t, 6, ticks)

	// Plotted rows are H − y; the y=0 position misses the grid and is
	// skipped, not an error.
	for _, want := range []struct{ x, y int }{
		{0, 10}, {1, 10}, {2, 11}, {3, 13}, {4, 16},
	} {
		px, err := c.PixelAt(want.x, want.y)
		require.NoError(t, err)
		require.True(t, px.Equal(red), "expected trace pixel at (%d,%d)", want.x, want.y)
	}

	// Exactly five pixels were written.
	count := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			px, err := c.PixelAt(x, y)
			require.NoError(t, err)
			if px.Equal(red) {
				count++
			}
		}
	}
	require.Equal(t, 5, count)
}

func TestTraceStartsOutside(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(5, 5)
	require.NoError(t, err)

	env := projectile.Environment{Gravity: tuple.NewVector(0, -1, 0)}
	s := projectile.State{
		Position: tuple.NewPoint(-1, 2, 0),
		Velocity: tuple.NewVector(1, 0, 0),
	}

	ticks, err := projectile.Trace(env, s, c, tuple.NewColor(1, 0, 0))
	require.NoError(t, err)
	require.Zero(t, ticks)
}
