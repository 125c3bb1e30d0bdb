package record

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestStoreSessionLifecycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	clock := time.UnixMilli(1_700_000_000_000)
	store.now = func() time.Time { return clock }

	id, err := store.Begin(ctx, "flipper", "Flip")
	if err != nil {
		t.Fatalf("Begin() failed: %v", err)
	}
	if len(id) != 26 {
		t.Errorf("id %q is not a ULID", id)
	}

	sessions, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(sessions) != 1 || !sessions[0].Open() {
		t.Fatalf("sessions = %+v, want one open session", sessions)
	}

	clock = clock.Add(90 * time.Second)
	stats := Stats{Ticks: 5400, Frames: 27000, MouseEvents: 12}
	if err := store.Finish(ctx, id, stats, "quit"); err != nil {
		t.Fatalf("Finish() failed: %v", err)
	}

	sessions, err = store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	got := sessions[0]
	if got.ID != id || got.Game != "flipper" || got.Title != "Flip" {
		t.Errorf("session = %+v", got)
	}
	if got.Open() {
		t.Error("session still open after Finish")
	}
	if got.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v, want 90s", got.Duration())
	}
	if got.Stats != stats {
		t.Errorf("stats = %+v, want %+v", got.Stats, stats)
	}
	if got.EndReason != "quit" {
		t.Errorf("reason = %q", got.EndReason)
	}
}

func TestStoreFinishUnknown(t *testing.T) {
	store := openTestStore(t)
	err := store.Finish(context.Background(), "nope", Stats{}, "quit")
	if !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Finish() error = %v, want ErrUnknownSession", err)
	}
}

func TestStoreRecentOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)
	for i, game := range []string{"a", "b", "c"} {
		at := base.Add(time.Duration(i) * time.Minute)
		store.now = func() time.Time { return at }
		if _, err := store.Begin(ctx, game, game); err != nil {
			t.Fatalf("Begin() failed: %v", err)
		}
	}
	sessions, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(sessions) != 2 || sessions[0].Game != "c" || sessions[1].Game != "b" {
		t.Errorf("sessions = %+v", sessions)
	}
}
