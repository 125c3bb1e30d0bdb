package settings

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadJSON(t *testing.T) {
	s, err := Load("testdata/table.json")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Window.Title != "T" {
		t.Errorf("title = %q, want %q", s.Window.Title, "T")
	}
	if want := (color.NRGBA{R: 0, G: 80, B: 40, A: 255}); s.Window.Background != want {
		t.Errorf("background = %v, want %v", s.Window.Background, want)
	}
	if want := image.Pt(800, 600); s.Window.Size != want {
		t.Errorf("size = %v, want %v", s.Window.Size, want)
	}
	if s.Path != "testdata/table.json" {
		t.Errorf("path = %q", s.Path)
	}

	label := s.GUI.NotificationLabel
	if label.Position != image.Pt(20, 560) {
		t.Errorf("label position = %v", label.Position)
	}
	if label.Timeout != 1500*time.Millisecond {
		t.Errorf("label timeout = %v", label.Timeout)
	}

	button := s.GUI.DoneButton
	if button.Size != image.Pt(80, 30) {
		t.Errorf("button size = %v", button.Size)
	}
	if button.BorderWidth != 2 || button.Padding != 4 {
		t.Errorf("button border/padding = %d/%d", button.BorderWidth, button.Padding)
	}
	if want := (color.NRGBA{R: 0x40, G: 0x20, B: 0x10, A: 255}); button.BorderColor != want {
		t.Errorf("button border color = %v, want %v", button.BorderColor, want)
	}

	if s.Loop.LogicRate != DefaultLogicRate || s.Loop.RenderRate != DefaultRenderRate {
		t.Errorf("loop = %+v, want defaults", s.Loop)
	}
}

func TestLoadYAML(t *testing.T) {
	s, err := Load("testdata/table.yaml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Window.Title != "T" || s.Window.Size != image.Pt(800, 600) {
		t.Errorf("window = %+v", s.Window)
	}
	if want := (color.NRGBA{R: 0, G: 0x50, B: 0x28, A: 255}); s.Window.Background != want {
		t.Errorf("background = %v, want %v", s.Window.Background, want)
	}
	if s.Loop.LogicRate != 30 || s.Loop.RenderRate != 120 {
		t.Errorf("loop = %+v", s.Loop)
	}
	if s.GUI.NotificationLabel.TextColor != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("default text color = %v", s.GUI.NotificationLabel.TextColor)
	}
}

func TestLoadMissingWindow(t *testing.T) {
	_, err := Load("testdata/no_window.json")
	var mf *MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("Load() error = %v, want MissingFieldError", err)
	}
	if mf.Field != "window" {
		t.Errorf("missing field = %q, want %q", mf.Field, "window")
	}
}

func TestParseMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"title", `{"window": {"background_color": [0,0,0], "size": [1,1]}}`, "window.title"},
		{"background", `{"window": {"title": "x", "size": [1,1]}}`, "window.background_color"},
		{"size", `{"window": {"title": "x", "background_color": [0,0,0]}}`, "window.size"},
		{"gui", `{"window": {"title": "x", "background_color": [0,0,0], "size": [1,1]}}`, "gui"},
		{"label", `{"window": {"title": "x", "background_color": [0,0,0], "size": [1,1]},
			"gui": {"done_button": {"position": [0,0]}}}`, "gui.notification_label"},
		{"button", `{"window": {"title": "x", "background_color": [0,0,0], "size": [1,1]},
			"gui": {"notification_label": {"position": [0,0]}}}`, "gui.done_button"},
		{"position", `{"window": {"title": "x", "background_color": [0,0,0], "size": [1,1]},
			"gui": {"notification_label": {}, "done_button": {"position": [0,0]}}}`, "gui.notification_label.position"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), JSON)
			var mf *MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("Parse() error = %v, want MissingFieldError", err)
			}
			if mf.Field != tt.field {
				t.Errorf("missing field = %q, want %q", mf.Field, tt.field)
			}
		})
	}
}

func TestParseInvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"title type", `{"window": {"title": 3, "background_color": [0,0,0], "size": [1,1]}}`, "window.title"},
		{"color range", `{"window": {"title": "x", "background_color": [0,0,300], "size": [1,1]}}`, "window.background_color"},
		{"color hex", `{"window": {"title": "x", "background_color": "#zzzzzz", "size": [1,1]}}`, "window.background_color"},
		{"size shape", `{"window": {"title": "x", "background_color": [0,0,0], "size": [1,1,1]}}`, "window.size"},
		{"size zero", `{"window": {"title": "x", "background_color": [0,0,0], "size": [0,10]}}`, "window.size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), JSON)
			var inv *InvalidFieldError
			if !errors.As(err, &inv) {
				t.Fatalf("Parse() error = %v, want InvalidFieldError", err)
			}
			if inv.Field != tt.field {
				t.Errorf("invalid field = %q, want %q", inv.Field, tt.field)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, doc := range []string{"", "  \n", "null"} {
		if _, err := Parse([]byte(doc), JSON); !errors.Is(err, ErrNoSettings) {
			t.Errorf("Parse(%q) error = %v, want ErrNoSettings", doc, err)
		}
	}
}

func TestLoadUnreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"window": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed json")
	}
}

func TestSection(t *testing.T) {
	s, err := Load("testdata/table.json")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	var custom struct {
		Cards int   `json:"cards"`
		Seed  int64 `json:"seed"`
	}
	if err := s.Section("flipper", &custom); err != nil {
		t.Fatalf("Section() failed: %v", err)
	}
	if custom.Cards != 5 || custom.Seed != 7 {
		t.Errorf("section = %+v", custom)
	}
	if !s.Has("flipper") || s.Has("poker") {
		t.Error("Has() reported wrong presence")
	}
	var mf *MissingFieldError
	if err := s.Section("poker", &custom); !errors.As(err, &mf) || mf.Field != "poker" {
		t.Errorf("Section(poker) error = %v", err)
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(color.NRGBA{R: 1, G: 2, B: 255, A: 255}); got != "#0102ff" {
		t.Errorf("FormatColor() = %q", got)
	}
	if got := FormatColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != "#01020304" {
		t.Errorf("FormatColor() = %q", got)
	}
}
