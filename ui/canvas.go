package ui

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face is the font used for all GUI text.
var Face font.Face = basicfont.Face7x13

// Drawable is anything that can paint itself onto a canvas. Values handed to
// the render loop must not change after they are published.
type Drawable interface {
	Draw(c *Canvas)
}

type DrawFunc func(c *Canvas)

func (f DrawFunc) Draw(c *Canvas) { f(c) }

// Canvas is a CPU raster. It does not touch the graphics driver, so the
// render loop can fill it from its own goroutine.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(img *image.RGBA) *Canvas {
	return &Canvas{img: img}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Fill replaces every pixel with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	op := draw.Over
	if col.A == 255 {
		op = draw.Src
	}
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, op)
}

func (c *Canvas) StrokeRect(r image.Rectangle, width int, col color.NRGBA) {
	if width <= 0 || col.A == 0 {
		return
	}
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	c.FillRect(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	c.FillRect(image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), col)
	c.FillRect(image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), col)
}

// Text draws s with its top-left corner at pt.
func (c *Canvas) Text(pt image.Point, s string, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: Face,
		Dot:  fixed.P(pt.X, pt.Y+Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// MeasureText returns the pixel size of s drawn with Face.
func MeasureText(s string) image.Point {
	return image.Pt(font.MeasureString(Face, s).Ceil(), Face.Metrics().Height.Ceil())
}
