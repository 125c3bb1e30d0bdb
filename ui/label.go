package ui

import (
	"image"
	"time"

	"github.com/SvenDH/go-card-table/settings"
)

// Element is a transient widget owned by a GUI.
type Element interface {
	// CheckMouse lets the element decide whether the pointer hit it.
	CheckMouse(pt image.Point, down bool)
	Expired(now time.Time) bool
	View() Drawable
}

type Label struct {
	Text  string
	Style settings.Element

	zone    Zone
	created time.Time
	expired bool
}

func NewLabel(text string, style settings.Element, now time.Time) *Label {
	return &Label{
		Text:    text,
		Style:   style,
		zone:    layout(text, style),
		created: now,
	}
}

// Expire marks the label for removal on the next snapshot.
func (l *Label) Expire() {
	l.expired = true
}

func (l *Label) Expired(now time.Time) bool {
	if l.expired {
		return true
	}
	return l.Style.Timeout > 0 && now.Sub(l.created) >= l.Style.Timeout
}

func (l *Label) CheckMouse(pt image.Point, down bool) {}

func (l *Label) Zone() Zone {
	return l.zone
}

func (l *Label) View() Drawable {
	return boxView{rect: l.zone.Rect(), text: l.Text, style: l.Style}
}

// layout sizes an element from its style, falling back to the text extent.
func layout(text string, style settings.Element) Zone {
	size := style.Size
	if size.X == 0 || size.Y == 0 {
		inset := 2 * (style.Padding + style.BorderWidth)
		measured := MeasureText(text).Add(image.Pt(inset, inset))
		if size.X == 0 {
			size.X = measured.X
		}
		if size.Y == 0 {
			size.Y = measured.Y
		}
	}
	return Zone{X: style.Position.X, Y: style.Position.Y, W: size.X, H: size.Y}
}

type boxView struct {
	rect    image.Rectangle
	text    string
	style   settings.Element
	pressed bool
}

func (v boxView) Draw(c *Canvas) {
	bg, fg := v.style.BackgroundColor, v.style.TextColor
	if v.pressed {
		bg, fg = fg, bg
	}
	c.FillRect(v.rect, bg)
	c.StrokeRect(v.rect, v.style.BorderWidth, v.style.BorderColor)
	size := MeasureText(v.text)
	pt := image.Pt(
		v.rect.Min.X+(v.rect.Dx()-size.X)/2,
		v.rect.Min.Y+(v.rect.Dy()-size.Y)/2,
	)
	c.Text(pt, v.text, fg)
}
