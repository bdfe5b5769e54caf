// Package projectile is the physics-flavored demo driver for the math and
// raster layers: a point mass under constant gravity and wind, advanced in
// unit ticks and rasterized onto a canvas.
//
// It exists to exercise the tuple/canvas boundary the way a real caller
// does — build points and vectors, step them, convert positions to pixel
// coordinates, write colors — and to back the cmd/projectile demo.
package projectile

import (
	"github.com/glintlab/glint/canvas"
	"github.com/glintlab/glint/tuple"
)

// State is a projectile at one instant: a position point and a velocity
// vector. Value type; Tick returns a new State.
type State struct {
	Position tuple.Tuple // point, w=1
	Velocity tuple.Tuple // vector, w=0
}

// Environment holds the constant per-tick accelerations.
type Environment struct {
	Gravity tuple.Tuple // vector, typically (0, -g, 0)
	Wind    tuple.Tuple // vector, horizontal drag
}

// Tick advances s by one time step: position moves by velocity, velocity
// gains gravity and wind.
func Tick(env Environment, s State) State {
	return State{
		Position: s.Position.Add(s.Velocity),
		Velocity: s.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trace steps s until its position leaves the canvas' x/y range, plotting
// every position along the way in col. The y axis is flipped so that
// larger y draws nearer the top (canvas row H − y); positions whose
// flipped row misses the grid (y < 1) are skipped rather than plotted.
//
// Returns the number of ticks taken before leaving the canvas.
func Trace(env Environment, s State, c *canvas.Canvas, col tuple.Color) (int, error) {
	ticks := 0
	for {
		x, y := s.Position.X, s.Position.Y
		if x < 0 || int(x) >= c.Width() || y < 0 || int(y) >= c.Height() {
			return ticks, nil
		}
		row := c.Height() - int(y)
		if row < c.Height() {
			if err := c.WritePixel(int(x), row, col); err != nil {
				return ticks, err
			}
		}
		s = Tick(env, s)
		ticks++
	}
}
