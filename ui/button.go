package ui

import (
	"image"
	"time"

	"github.com/SvenDH/go-card-table/settings"
)

// Button fires its callback when pressed and released inside its zone, then
// expires.
type Button struct {
	Text     string
	Style    settings.Element
	Callback func()

	zone    Zone
	pressed bool
	expired bool
}

func NewButton(text string, style settings.Element, callback func()) *Button {
	return &Button{
		Text:     text,
		Style:    style,
		Callback: callback,
		zone:     layout(text, style),
	}
}

func (b *Button) CheckMouse(pt image.Point, down bool) {
	if b.expired {
		return
	}
	in := b.zone.InBounds(pt.X, pt.Y)
	if down {
		b.pressed = in
		return
	}
	fire := b.pressed && in
	b.pressed = false
	if fire {
		b.expired = true
		if b.Callback != nil {
			b.Callback()
		}
	}
}

func (b *Button) Expired(now time.Time) bool {
	return b.expired
}

func (b *Button) Zone() Zone {
	return b.zone
}

func (b *Button) View() Drawable {
	return boxView{rect: b.zone.Rect(), text: b.Text, style: b.Style, pressed: b.pressed}
}
