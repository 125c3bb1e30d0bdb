// Package settings loads the startup configuration of a card table: window
// appearance, GUI element styles, loop rates and any game specific blocks.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogicRate  = 60
	DefaultRenderRate = 300
)

type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFor picks the decoder from the file extension. Anything that is not
// YAML is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

type Window struct {
	Title      string
	Background color.NRGBA
	Size       image.Point
}

// Element describes where and how a GUI element is drawn.
type Element struct {
	Position        image.Point
	Size            image.Point
	TextColor       color.NRGBA
	BackgroundColor color.NRGBA
	BorderColor     color.NRGBA
	BorderWidth     int
	Padding         int
	Timeout         time.Duration
}

type GUI struct {
	NotificationLabel Element
	DoneButton        Element
}

type Loop struct {
	LogicRate  int
	RenderRate int
}

// Settings is the parsed document. It is not modified after Load returns.
type Settings struct {
	Path   string
	Window Window
	GUI    GUI
	Loop   Loop

	doc map[string]any
}

// Load reads and validates the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: cannot read %s: %w", path, err)
	}
	s, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}

// Parse decodes and validates a settings document.
func Parse(data []byte, format Format) (*Settings, error) {
	var raw any
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoSettings
	}
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("settings: cannot parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("settings: cannot parse json: %w", err)
		}
	}
	if raw == nil {
		return nil, ErrNoSettings
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, invalid("", "top level must be an object")
	}

	s := &Settings{doc: doc}
	if err := s.parseWindow(); err != nil {
		return nil, err
	}
	if err := s.parseGUI(); err != nil {
		return nil, err
	}
	if err := s.parseLoop(); err != nil {
		return nil, err
	}
	return s, nil
}

// Has reports whether the top-level key is present.
func (s *Settings) Has(key string) bool {
	v, ok := s.doc[key]
	return ok && v != nil
}

// Section decodes the top-level block key into v. Games use it for their own
// settings.
func (s *Settings) Section(key string, v any) error {
	raw, ok := s.doc[key]
	if !ok || raw == nil {
		return missing(key)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("settings: cannot encode section %q: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return invalid(key, "%v", err)
	}
	return nil
}

func (s *Settings) parseWindow() error {
	w, err := object(s.doc, "", "window")
	if err != nil {
		return err
	}
	title, err := lookup(w, "window", "title")
	if err != nil {
		return err
	}
	t, ok := title.(string)
	if !ok {
		return invalid("window.title", "must be a string")
	}
	s.Window.Title = t

	bg, err := lookup(w, "window", "background_color")
	if err != nil {
		return err
	}
	if s.Window.Background, err = parseColor("window.background_color", bg); err != nil {
		return err
	}

	size, err := lookup(w, "window", "size")
	if err != nil {
		return err
	}
	if s.Window.Size, err = parsePoint("window.size", size); err != nil {
		return err
	}
	if s.Window.Size.X <= 0 || s.Window.Size.Y <= 0 {
		return invalid("window.size", "dimensions must be positive")
	}
	return nil
}

func (s *Settings) parseGUI() error {
	g, err := object(s.doc, "", "gui")
	if err != nil {
		return err
	}
	if s.GUI.NotificationLabel, err = parseElement(g, "gui", "notification_label"); err != nil {
		return err
	}
	if s.GUI.DoneButton, err = parseElement(g, "gui", "done_button"); err != nil {
		return err
	}
	return nil
}

func (s *Settings) parseLoop() error {
	s.Loop = Loop{LogicRate: DefaultLogicRate, RenderRate: DefaultRenderRate}
	if !s.Has("loop") {
		return nil
	}
	l, err := object(s.doc, "", "loop")
	if err != nil {
		return err
	}
	for key, dst := range map[string]*int{"logic_rate": &s.Loop.LogicRate, "render_rate": &s.Loop.RenderRate} {
		v, ok := l[key]
		if !ok {
			continue
		}
		n, ok := toInt(v)
		if !ok || n <= 0 {
			return invalid("loop."+key, "must be a positive integer")
		}
		*dst = n
	}
	return nil
}

func parseElement(parent map[string]any, parentPath, key string) (Element, error) {
	path := join(parentPath, key)
	m, err := object(parent, parentPath, key)
	if err != nil {
		return Element{}, err
	}
	e := Element{TextColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}

	pos, err := lookup(m, path, "position")
	if err != nil {
		return Element{}, err
	}
	if e.Position, err = parsePoint(join(path, "position"), pos); err != nil {
		return Element{}, err
	}
	if v, ok := m["size"]; ok {
		if e.Size, err = parsePoint(join(path, "size"), v); err != nil {
			return Element{}, err
		}
	}
	colors := map[string]*color.NRGBA{
		"text_color":       &e.TextColor,
		"background_color": &e.BackgroundColor,
		"border_color":     &e.BorderColor,
	}
	for name, dst := range colors {
		v, ok := m[name]
		if !ok {
			continue
		}
		if *dst, err = parseColor(join(path, name), v); err != nil {
			return Element{}, err
		}
	}
	ints := map[string]*int{"border_width": &e.BorderWidth, "padding": &e.Padding}
	for name, dst := range ints {
		v, ok := m[name]
		if !ok {
			continue
		}
		n, ok := toInt(v)
		if !ok || n < 0 {
			return Element{}, invalid(join(path, name), "must be a non-negative integer")
		}
		*dst = n
	}
	if v, ok := m["timeout_ms"]; ok {
		n, ok := toInt(v)
		if !ok || n < 0 {
			return Element{}, invalid(join(path, "timeout_ms"), "must be a non-negative integer")
		}
		e.Timeout = time.Duration(n) * time.Millisecond
	}
	return e, nil
}

func object(parent map[string]any, parentPath, key string) (map[string]any, error) {
	v, err := lookup(parent, parentPath, key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalid(join(parentPath, key), "must be an object")
	}
	return m, nil
}

func lookup(m map[string]any, parentPath, key string) (any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, missing(join(parentPath, key))
	}
	return v, nil
}

func parsePoint(field string, v any) (image.Point, error) {
	list, ok := v.([]any)
	if !ok || len(list) != 2 {
		return image.Point{}, invalid(field, "must be a 2-element list")
	}
	x, okx := toInt(list[0])
	y, oky := toInt(list[1])
	if !okx || !oky {
		return image.Point{}, invalid(field, "elements must be integers")
	}
	return image.Pt(x, y), nil
}

// toInt accepts the number types produced by both decoders.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
