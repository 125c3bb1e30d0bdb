// Package app is the shell every card game runs in. It owns the settings,
// the GUI and the game controller, drives the fixed rate logic loop and runs
// a separate render loop that draws published frame snapshots.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/SvenDH/go-card-table/record"
	"github.com/SvenDH/go-card-table/settings"
	"github.com/SvenDH/go-card-table/ui"
)

var (
	ErrStopped        = errors.New("app: stopped")
	ErrNotInitialized = errors.New("app: not initialized")
	ErrRendering      = errors.New("app: render loop already started")
)

// Game is implemented by every concrete card game.
type Game interface {
	// LoadSettings reads game specific blocks from the settings document.
	LoadSettings(s *settings.Settings) error
	// HandleMouse is called for every mouse button event; down is true on
	// press and false on release.
	HandleMouse(down bool)
	// BuildObjects creates the game objects, usually installing a Controller.
	BuildObjects(a *App) error
}

// Controller owns the game objects.
type Controller interface {
	// ExecuteGame runs one step of game logic on the logic loop.
	ExecuteGame()
	// Snapshot returns a view of the game objects that stays valid after the
	// controller changes again.
	Snapshot() ui.Drawable
}

// Runner drives a loop until it stops.
type Runner interface {
	Run(ctx context.Context, l ui.Loop) error
}

// Recorder journals play sessions.
type Recorder interface {
	Begin(ctx context.Context, game, title string) (string, error)
	Finish(ctx context.Context, id string, stats record.Stats, reason string) error
}

// Frame is everything the render loop needs to draw one picture.
type Frame struct {
	Seq        uint64
	Background color.NRGBA
	Size       image.Point
	Objects    ui.Drawable
	GUI        []ui.Drawable
}

type App struct {
	name       string
	settings   *settings.Settings
	title      string
	background color.NRGBA
	size       image.Point
	logicRate  int
	renderRate int

	game       Game
	gui        *ui.GUI
	controller Controller
	pointer    image.Point

	frames *ui.Latest[*Frame]
	swap   *ui.Swapchain
	seq    uint64

	group        *errgroup.Group
	renderCtx    context.Context
	cancelRender context.CancelFunc
	stopped      atomic.Bool
	rendered     atomic.Int64
	ticks        int64
	mouseEvents  int64

	logger   *log.Logger
	recorder Recorder
	session  string
}

var _ ui.Loop = (*App)(nil)

type Option func(*App)

func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(a *App) { a.recorder = r }
}

// WithRates overrides the loop rates from the settings. Non-positive values
// are ignored.
func WithRates(logic, render int) Option {
	return func(a *App) {
		if logic > 0 {
			a.logicRate = logic
		}
		if render > 0 {
			a.renderRate = render
		}
	}
}

// WithName sets the game id used in logs and session records.
func WithName(name string) Option {
	return func(a *App) { a.name = name }
}

// New loads the settings file at path and prepares an application for game.
// Nothing is shown until Execute or RunLoop.
func New(path string, game Game, opts ...Option) (*App, error) {
	s, err := settings.Load(path)
	if err != nil {
		return nil, err
	}
	return NewWithSettings(s, game, opts...)
}

func NewWithSettings(s *settings.Settings, game Game, opts ...Option) (*App, error) {
	if s == nil {
		return nil, settings.ErrNoSettings
	}
	if game == nil {
		return nil, errors.New("app: game is nil")
	}
	a := &App{
		name:       "game",
		settings:   s,
		title:      s.Window.Title,
		background: s.Window.Background,
		size:       s.Window.Size,
		logicRate:  s.Loop.LogicRate,
		renderRate: s.Loop.RenderRate,
		game:       game,
		frames:     ui.NewLatest[*Frame](),
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := game.LoadSettings(s); err != nil {
		return nil, fmt.Errorf("app: loading game settings: %w", err)
	}
	a.swap = ui.NewSwapchain(a.size.X, a.size.Y)
	return a, nil
}

// Init builds the GUI and asks the game to build its objects.
func (a *App) Init() error {
	a.gui = ui.NewGUI(a.settings.GUI, a.logger)
	if err := a.game.BuildObjects(a); err != nil {
		return fmt.Errorf("app: building game objects: %w", err)
	}
	a.publish()
	return nil
}

// Execute initializes the game, starts rendering and runs the logic loop
// until the game quits.
func (a *App) Execute(ctx context.Context, r Runner) error {
	defer a.Close()
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.StartRendering(ctx); err != nil {
		return err
	}
	return a.RunLoop(ctx, r)
}

// RunLoop blocks in r until the loop stops.
func (a *App) RunLoop(ctx context.Context, r Runner) error {
	if a.gui == nil {
		return ErrNotInitialized
	}
	a.beginSession(ctx)
	a.logger.Info("running", "game", a.name, "title", a.title,
		"logic_rate", a.logicRate, "render_rate", a.renderRate)
	err := r.Run(ctx, a)
	if !a.Stopped() {
		if serr := a.stop("runner exited"); err == nil {
			err = serr
		}
	}
	return err
}

// Tick processes pending events, runs the game logic once and publishes a
// frame for the render loop.
func (a *App) Tick(msgs []ui.Msg) error {
	if a.stopped.Load() {
		return ErrStopped
	}
	if a.renderCtx != nil && a.renderCtx.Err() != nil {
		return a.stop("render loop ended")
	}
	for _, msg := range msgs {
		switch m := msg.(type) {
		case ui.QuitEvent:
			return a.stop("quit")
		case ui.MouseEvent:
			a.pointer = image.Pt(m.X, m.Y)
			a.mouseEvents++
			switch m.Action {
			case ui.MousePress:
				a.game.HandleMouse(true)
			case ui.MouseRelease:
				a.game.HandleMouse(false)
			}
		}
	}
	if a.controller != nil {
		a.controller.ExecuteGame()
	}
	a.ticks++
	a.publish()
	return nil
}

func (a *App) publish() {
	f := &Frame{
		Seq:        a.seq,
		Background: a.background,
		Size:       a.size,
	}
	if a.controller != nil {
		f.Objects = a.controller.Snapshot()
	}
	if a.gui != nil {
		f.GUI = a.gui.Snapshot()
	}
	a.seq++
	a.frames.Publish(f)
}

// stop sets the stop flag, waits for the render loop to finish its current
// frame and closes the session record.
func (a *App) stop(reason string) error {
	if a.stopped.Swap(true) {
		return nil
	}
	var err error
	if a.group != nil {
		a.cancelRender()
		if werr := a.group.Wait(); werr != nil {
			err = fmt.Errorf("app: render loop: %w", werr)
			reason = "render failure"
		}
	}
	a.finishSession(reason)
	a.logger.Info("stopped", "game", a.name, "reason", reason,
		"ticks", a.ticks, "frames", a.rendered.Load())
	return err
}

// Close stops the loops if they are still running.
func (a *App) Close() error {
	return a.stop("closed")
}

func (a *App) beginSession(ctx context.Context) {
	if a.recorder == nil || a.session != "" {
		return
	}
	id, err := a.recorder.Begin(ctx, a.name, a.title)
	if err != nil {
		a.logger.Warn("could not record session", "error", err)
		return
	}
	a.session = id
}

func (a *App) finishSession(reason string) {
	if a.recorder == nil || a.session == "" {
		return
	}
	if err := a.recorder.Finish(context.Background(), a.session, a.Stats(), reason); err != nil {
		a.logger.Warn("could not finish session record", "session", a.session, "error", err)
	}
}

// CheckMouse forwards the last pointer position and button state to the GUI.
func (a *App) CheckMouse(down bool) {
	if a.gui != nil {
		a.gui.CheckMouse(a.pointer, down)
	}
}

func (a *App) Stats() record.Stats {
	return record.Stats{Ticks: a.ticks, Frames: a.rendered.Load(), MouseEvents: a.mouseEvents}
}

func (a *App) SetController(c Controller) { a.controller = c }
func (a *App) Controller() Controller { return a.controller }
func (a *App) GUI() *ui.GUI { return a.gui }
func (a *App) Settings() *settings.Settings { return a.settings }
func (a *App) Title() string { return a.title }
func (a *App) Background() color.NRGBA { return a.background }
func (a *App) Size() image.Point { return a.size }
func (a *App) Pointer() image.Point { return a.pointer }
func (a *App) Logger() *log.Logger { return a.logger }
func (a *App) Stopped() bool { return a.stopped.Load() }
func (a *App) LogicRate() int { return a.logicRate }
func (a *App) RenderRate() int { return a.renderRate }
func (a *App) Frames() *ui.Swapchain { return a.swap }
