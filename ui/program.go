package ui

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
)

type Msg interface{}

type MouseEvent struct {
	X, Y   int
	Action MouseAction
	Button ebiten.MouseButton
}

// QuitEvent is sent when the window is closed or the program is cancelled.
type QuitEvent struct{}

// Loop is the logic side driven by a runner.
type Loop interface {
	// Tick drains msgs and advances the game by one step.
	Tick(msgs []Msg) error
	Stopped() bool
	LogicRate() int
	Frames() *Swapchain
}

// Program runs a Loop inside an Ebitengine window. Update is the logic loop;
// Draw uploads whatever the render loop presented last.
type Program struct {
	ctx                    context.Context
	Loop                   Loop
	Title                  string
	Width, Height          int
	ShowDebug              bool
	LastMouseX, LastMouseY int

	msgs      []Msg
	offscreen *ebiten.Image
}

// Run opens the window and blocks until the loop stops or the window fails.
func (p *Program) Run(ctx context.Context, l Loop) error {
	p.ctx = ctx
	p.Loop = l
	ebiten.SetWindowTitle(p.Title)
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(l.LogicRate())
	return ebiten.RunGame(p)
}

func (p *Program) Update() error {
	p.msgs = p.msgs[:0]
	if ebiten.IsWindowBeingClosed() || (p.ctx != nil && p.ctx.Err() != nil) {
		p.msgs = append(p.msgs, QuitEvent{})
	}
	mx, my := ebiten.CursorPosition()
	for i := range ebiten.MouseButtonMax {
		if inpututil.IsMouseButtonJustPressed(i) {
			p.msgs = append(p.msgs, MouseEvent{X: mx, Y: my, Action: MousePress, Button: i})
		}
		if inpututil.IsMouseButtonJustReleased(i) {
			p.msgs = append(p.msgs, MouseEvent{X: mx, Y: my, Action: MouseRelease, Button: i})
		}
	}
	p.LastMouseX, p.LastMouseY = mx, my

	err := p.Loop.Tick(p.msgs)
	if p.Loop.Stopped() {
		if err != nil {
			return err
		}
		return ebiten.Termination
	}
	return err
}

func (p *Program) Draw(screen *ebiten.Image) {
	front := p.Loop.Frames().Front()
	if front == nil {
		return
	}
	b := front.Bounds()
	if p.offscreen == nil || p.offscreen.Bounds() != b {
		p.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	p.offscreen.WritePixels(front.Pix)
	screen.DrawImage(p.offscreen, nil)
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}
