package ui

import "image"

// Zone is a screen rectangle used for hit-testing.
type Zone struct {
	X, Y, W, H int
}

func ZoneOf(r image.Rectangle) Zone {
	return Zone{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

func (z Zone) Add(x, y int) Zone {
	z.X += x
	z.Y += y
	return z
}

func (z Zone) InBounds(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

func (z Zone) Rect() image.Rectangle {
	return image.Rect(z.X, z.Y, z.X+z.W, z.Y+z.H)
}
