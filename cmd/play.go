/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-table/app"
	"github.com/SvenDH/go-card-table/games"
	_ "github.com/SvenDH/go-card-table/games/flipper"
	"github.com/SvenDH/go-card-table/ui"
)

var (
	playSettings   string
	playHeadless   bool
	playDuration   time.Duration
	playLogicRate  int
	playRenderRate int
	playClicks     []string
	playDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Open a table and play a game",
	Long: `Play loads the settings file, builds the named game and runs it until the
window is closed.

With --headless no window is opened; the logic and render loops still run and
--click feeds scripted mouse clicks. Use --duration to stop after a while.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game, err := games.New(args[0])
		if err != nil {
			return err
		}
		clicks, err := parseClicks(playClicks)
		if err != nil {
			return err
		}

		opts := []app.Option{
			app.WithLogger(logger),
			app.WithName(args[0]),
			app.WithRates(playLogicRate, playRenderRate),
		}
		journal, err := openJournal()
		if err != nil {
			logger.Warn("session journal disabled", "error", err)
		} else if journal != nil {
			defer journal.Close()
			opts = append(opts, app.WithRecorder(journal))
		}

		a, err := app.New(playSettings, game, opts...)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if playDuration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, playDuration)
			defer cancel()
		}

		var runner app.Runner
		if playHeadless {
			events := make(chan ui.Msg, len(clicks))
			for _, m := range clicks {
				events <- m
			}
			close(events)
			runner = app.Headless{Events: events}
		} else {
			size := a.Size()
			runner = &ui.Program{Title: a.Title(), Width: size.X, Height: size.Y, ShowDebug: playDebug}
		}
		return a.Execute(ctx, runner)
	},
}

// parseClicks turns "x,y" pairs into a press and a release each.
func parseClicks(specs []string) ([]ui.Msg, error) {
	var msgs []ui.Msg
	for _, s := range specs {
		xs, ys, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("click %q: want x,y", s)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("click %q: %w", s, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("click %q: %w", s, err)
		}
		msgs = append(msgs,
			ui.MouseEvent{X: x, Y: y, Action: ui.MousePress},
			ui.MouseEvent{X: x, Y: y, Action: ui.MouseRelease},
		)
	}
	return msgs, nil
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playSettings, "settings", "s", "settings.json", "settings file (json or yaml)")
	playCmd.Flags().BoolVar(&playHeadless, "headless", false, "run without a window")
	playCmd.Flags().DurationVar(&playDuration, "duration", 0, "quit after this long")
	playCmd.Flags().IntVar(&playLogicRate, "logic-rate", 0, "override the logic loop rate in Hz")
	playCmd.Flags().IntVar(&playRenderRate, "render-rate", 0, "override the render loop rate in Hz")
	playCmd.Flags().StringArrayVar(&playClicks, "click", nil, "scripted click x,y for --headless (repeatable)")
	playCmd.Flags().BoolVar(&playDebug, "debug", false, "show TPS and FPS in the window")
}
