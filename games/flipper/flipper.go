// Package flipper is a small demo game: deal a row of cards face down and
// turn them over one click at a time.
package flipper

import (
	"fmt"
	"math/rand/v2"

	"github.com/SvenDH/go-card-table/app"
	"github.com/SvenDH/go-card-table/games"
	"github.com/SvenDH/go-card-table/settings"
)

const ID = "flipper"

func init() {
	games.Register(ID, "Flipper", func() app.Game { return New() })
}

// Config is read from the "flipper" block of the settings file.
type Config struct {
	Cards    int    `json:"cards"`
	Seed     uint64 `json:"seed"`
	CardSize [2]int `json:"card_size"`
	Spacing  int    `json:"spacing"`
	Origin   [2]int `json:"origin"`
}

func DefaultConfig() Config {
	return Config{
		Cards:    6,
		CardSize: [2]int{60, 90},
		Spacing:  12,
		Origin:   [2]int{20, 20},
	}
}

type Game struct {
	cfg   Config
	app   *app.App
	table *Table
}

var _ app.Game = (*Game)(nil)

func New() *Game {
	return &Game{cfg: DefaultConfig()}
}

func (g *Game) LoadSettings(s *settings.Settings) error {
	if !s.Has(ID) {
		return nil
	}
	if err := s.Section(ID, &g.cfg); err != nil {
		return err
	}
	if g.cfg.Cards < 1 || g.cfg.Cards > 52 {
		return fmt.Errorf("flipper: cards must be between 1 and 52, got %d", g.cfg.Cards)
	}
	if g.cfg.CardSize[0] <= 0 || g.cfg.CardSize[1] <= 0 {
		return fmt.Errorf("flipper: card_size must be positive, got %v", g.cfg.CardSize)
	}
	return nil
}

func (g *Game) BuildObjects(a *app.App) error {
	g.app = a
	seed := g.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	g.table = NewTable(g.cfg, rand.New(rand.NewPCG(seed, seed>>1)))
	g.table.OnFlip = func(c Card) {
		a.GUI().ShowLabel("Flipped " + c.String())
	}
	g.table.OnCleared = func() {
		a.GUI().ShowButton("Done", g.redeal)
	}
	a.SetController(g.table)
	a.GUI().ShowLabel("Click a card to flip it")
	a.Logger().Debug("dealt", "cards", g.table.Cards())
	return nil
}

func (g *Game) HandleMouse(down bool) {
	g.app.CheckMouse(down)
	if down {
		g.table.Click(g.app.Pointer())
	}
}

func (g *Game) Table() *Table {
	return g.table
}

func (g *Game) redeal() {
	g.table.Deal()
	g.app.GUI().ShowLabel("New deal")
}
