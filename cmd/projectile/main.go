// Command projectile fires a point mass across a 900×550 canvas under
// gravity and wind, rasterizes the trajectory, and writes the result as a
// PPM image (optionally a PNG next to it).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/glintlab/glint/canvas"
	"github.com/glintlab/glint/projectile"
	"github.com/glintlab/glint/tuple"
)

func main() {
	out := flag.String("o", "output.ppm", "output image path (.ppm, or .png for PNG encoding)")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println("File written successfully:", *out)
}

func run(path string) error {
	c, err := canvas.New(900, 550)
	if err != nil {
		return err
	}

	env := projectile.Environment{
		Gravity: tuple.NewVector(0, -0.1, 0),
		Wind:    tuple.NewVector(-0.01, 0, 0),
	}
	start := projectile.State{
		Position: tuple.NewPoint(0, 1, 0),
		Velocity: tuple.NewVector(1, 1.8, 0).Normalize().Scale(11.25),
	}

	ticks, err := projectile.Trace(env, start, c, tuple.NewColor(1, 0, 0))
	if err != nil {
		return err
	}
	fmt.Println("Trajectory plotted over", ticks, "ticks.")

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".png") {
		return c.EncodePNG(f)
	}
	_, err = c.WritePPMTo(f)

	return err
}
