package ui

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SvenDH/go-card-table/settings"
)

// GUI holds the transient widgets drawn above the game objects. It is owned
// by the logic loop; the render loop only ever sees the views returned by
// Snapshot.
type GUI struct {
	label    settings.Element
	button   settings.Element
	elements []Element
	logger   *log.Logger

	// Now is the clock used for label timeouts.
	Now func() time.Time
}

func NewGUI(styles settings.GUI, logger *log.Logger) *GUI {
	if logger == nil {
		logger = log.Default()
	}
	return &GUI{
		label:  styles.NotificationLabel,
		button: styles.DoneButton,
		logger: logger,
		Now:    time.Now,
	}
}

func (g *GUI) ShowLabel(text string) *Label {
	l := NewLabel(text, g.label, g.Now())
	g.elements = append(g.elements, l)
	return l
}

func (g *GUI) ShowButton(text string, callback func()) *Button {
	b := NewButton(text, g.button, callback)
	g.elements = append(g.elements, b)
	return b
}

// HideButton does nothing. Buttons go away by themselves once clicked.
func (g *GUI) HideButton() {}

// Add appends an already built element.
func (g *GUI) Add(e Element) {
	g.elements = append(g.elements, e)
}

// CheckMouse forwards the pointer state to every element. Elements added by a
// callback during the pass are not visited until the next one.
func (g *GUI) CheckMouse(pt image.Point, down bool) {
	for _, e := range g.elements {
		e.CheckMouse(pt, down)
	}
}

// Snapshot drops expired elements and returns views of the remaining ones in
// insertion order.
func (g *GUI) Snapshot() []Drawable {
	now := g.Now()
	views := make([]Drawable, 0, len(g.elements))
	kept := g.elements[:0]
	for _, e := range g.elements {
		if e.Expired(now) {
			g.logger.Debug("removing expired gui element", "element", describe(e))
			continue
		}
		kept = append(kept, e)
		views = append(views, e.View())
	}
	clear(g.elements[len(kept):])
	g.elements = kept
	return views
}

func (g *GUI) Len() int {
	return len(g.elements)
}

func describe(e Element) string {
	switch el := e.(type) {
	case *Label:
		return "label " + el.Text
	case *Button:
		return "button " + el.Text
	}
	return "element"
}
