package app

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/SvenDH/go-card-table/ui"
)

// Headless runs a loop without a window. Events are read from Events, which
// may be nil. Cancelling the context quits the loop.
type Headless struct {
	Events <-chan ui.Msg
	// Rate overrides the loop's logic rate when positive.
	Rate int
}

func (h Headless) Run(ctx context.Context, l ui.Loop) error {
	r := h.Rate
	if r <= 0 {
		r = l.LogicRate()
	}
	lim := rate.NewLimiter(rate.Limit(r), 1)
	events := h.Events
	var msgs []ui.Msg
	for !l.Stopped() {
		if err := lim.Wait(ctx); err != nil {
			return l.Tick([]ui.Msg{ui.QuitEvent{}})
		}
		msgs, events = drain(msgs[:0], events)
		if err := l.Tick(msgs); err != nil {
			return err
		}
	}
	return nil
}

// drain collects the pending events without blocking. A closed channel is
// returned as nil so it is not read again.
func drain(msgs []ui.Msg, events <-chan ui.Msg) ([]ui.Msg, <-chan ui.Msg) {
	for {
		select {
		case m, ok := <-events:
			if !ok {
				return msgs, nil
			}
			msgs = append(msgs, m)
		default:
			return msgs, events
		}
	}
}
