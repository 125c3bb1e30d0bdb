package flipper

import (
	"image"
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/SvenDH/go-card-table/app"
	"github.com/SvenDH/go-card-table/ui"
)

var (
	faceColor = color.NRGBA{R: 0xf4, G: 0xee, B: 0xdc, A: 0xff}
	backColor = color.NRGBA{R: 0x23, G: 0x3a, B: 0x7a, A: 0xff}
	edgeColor = color.NRGBA{R: 0x20, G: 0x18, B: 0x10, A: 0xff}
	trimColor = color.NRGBA{R: 0xc8, G: 0xb0, B: 0x60, A: 0xff}
	redInk    = color.NRGBA{R: 0xb0, G: 0x10, B: 0x10, A: 0xff}
	blackInk  = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

const cardPadding = 4

type slot struct {
	card   Card
	rect   image.Rectangle
	faceUp bool
}

// Table is the controller of the flipper game: a row of cards dealt face
// down.
type Table struct {
	cfg     Config
	rng     *rand.Rand
	slots   []slot
	pending []image.Point
	cleared bool
	deals   int

	OnFlip    func(Card)
	OnCleared func()
}

var _ app.Controller = (*Table)(nil)

func NewTable(cfg Config, rng *rand.Rand) *Table {
	t := &Table{cfg: cfg, rng: rng}
	t.Deal()
	return t
}

// Deal shuffles a fresh deck and lays out a new row face down.
func (t *Table) Deal() {
	deck := NewDeck()
	Shuffle(deck, t.rng)
	w, h := t.cfg.CardSize[0], t.cfg.CardSize[1]
	t.slots = t.slots[:0]
	for i, c := range deck[:t.cfg.Cards] {
		x := t.cfg.Origin[0] + i*(w+t.cfg.Spacing)
		y := t.cfg.Origin[1]
		t.slots = append(t.slots, slot{card: c, rect: image.Rect(x, y, x+w, y+h)})
	}
	t.pending = t.pending[:0]
	t.cleared = false
	t.deals++
}

// Click queues a press at pt; it is resolved on the next ExecuteGame.
func (t *Table) Click(pt image.Point) {
	t.pending = append(t.pending, pt)
}

func (t *Table) ExecuteGame() {
	for _, pt := range t.pending {
		for i := range t.slots {
			s := &t.slots[i]
			if s.faceUp || !pt.In(s.rect) {
				continue
			}
			s.faceUp = true
			if t.OnFlip != nil {
				t.OnFlip(s.card)
			}
			break
		}
	}
	t.pending = t.pending[:0]
	if !t.cleared && t.FaceUp() == len(t.slots) {
		t.cleared = true
		if t.OnCleared != nil {
			t.OnCleared()
		}
	}
}

func (t *Table) FaceUp() int {
	n := 0
	for _, s := range t.slots {
		if s.faceUp {
			n++
		}
	}
	return n
}

func (t *Table) Cards() []Card {
	out := make([]Card, len(t.slots))
	for i, s := range t.slots {
		out[i] = s.card
	}
	return out
}

func (t *Table) Deals() int {
	return t.deals
}

func (t *Table) Snapshot() ui.Drawable {
	return tableView(slices.Clone(t.slots))
}

type tableView []slot

func (v tableView) Draw(c *ui.Canvas) {
	for _, s := range v {
		if s.faceUp {
			c.FillRect(s.rect, faceColor)
			c.StrokeRect(s.rect, 1, edgeColor)
			ink := blackInk
			if s.card.Red() {
				ink = redInk
			}
			c.Text(s.rect.Min.Add(image.Pt(cardPadding, cardPadding)), s.card.String(), ink)
			continue
		}
		c.FillRect(s.rect, backColor)
		c.StrokeRect(s.rect, 1, edgeColor)
		c.StrokeRect(s.rect.Inset(cardPadding), 1, trimColor)
	}
}
