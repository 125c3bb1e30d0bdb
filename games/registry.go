// Package games keeps the table of playable games. Games register themselves
// from init functions so the command line can start them by id.
package games

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/SvenDH/go-card-table/app"
)

var ErrUnknownGame = errors.New("games: unknown game")

type Factory func() app.Game

type Info struct {
	ID    string
	Title string
}

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game. It panics if id is already taken.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("games: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// New returns a fresh instance of the game registered as id.
func New(id string) (app.Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// List returns all registered games sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
