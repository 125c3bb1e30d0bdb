package cmd

import (
	"testing"

	"github.com/SvenDH/go-card-table/ui"
)

func TestParseClicks(t *testing.T) {
	msgs, err := parseClicks([]string{"10,20", " 3 , 4 "})
	if err != nil {
		t.Fatalf("parseClicks() failed: %v", err)
	}
	want := []ui.Msg{
		ui.MouseEvent{X: 10, Y: 20, Action: ui.MousePress},
		ui.MouseEvent{X: 10, Y: 20, Action: ui.MouseRelease},
		ui.MouseEvent{X: 3, Y: 4, Action: ui.MousePress},
		ui.MouseEvent{X: 3, Y: 4, Action: ui.MouseRelease},
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d events, want %d", len(msgs), len(want))
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, msgs[i], want[i])
		}
	}

	for _, bad := range []string{"10", "a,1", "1,b"} {
		if _, err := parseClicks([]string{bad}); err == nil {
			t.Errorf("parseClicks(%q) succeeded", bad)
		}
	}
}
