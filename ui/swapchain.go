package ui

import "image"

// Latest passes values from one writer goroutine to one reader goroutine.
// The reader only ever sees the most recent value; older unread values are
// dropped by the writer.
type Latest[T any] struct {
	ch chan T
}

func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{ch: make(chan T, 1)}
}

// Swap publishes v and returns the value it replaced, if the reader had not
// taken it yet.
func (l *Latest[T]) Swap(v T) (old T, replaced bool) {
	select {
	case old = <-l.ch:
		replaced = true
	default:
	}
	l.ch <- v
	return old, replaced
}

func (l *Latest[T]) Publish(v T) {
	l.Swap(v)
}

// Take returns the pending value, if any, without blocking.
func (l *Latest[T]) Take() (T, bool) {
	select {
	case v := <-l.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

const swapBuffers = 3

// Swapchain moves rendered frames from the render loop to the display with
// three buffers: one being drawn, one waiting and one on screen.
type Swapchain struct {
	free   chan *image.RGBA
	latest *Latest[*image.RGBA]
	shown  *image.RGBA
}

func NewSwapchain(w, h int) *Swapchain {
	s := &Swapchain{
		free:   make(chan *image.RGBA, swapBuffers),
		latest: NewLatest[*image.RGBA](),
	}
	for range swapBuffers {
		s.free <- image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return s
}

// Acquire returns a buffer the caller may draw into. Render side only.
func (s *Swapchain) Acquire() *image.RGBA {
	return <-s.free
}

// Present hands a finished buffer to the display. Render side only.
func (s *Swapchain) Present(img *image.RGBA) {
	if old, ok := s.latest.Swap(img); ok {
		s.free <- old
	}
}

// Front returns the newest presented buffer, or nil before the first
// Present. Display side only; the buffer stays valid until the next call.
func (s *Swapchain) Front() *image.RGBA {
	if img, ok := s.latest.Take(); ok {
		if s.shown != nil {
			s.free <- s.shown
		}
		s.shown = img
	}
	return s.shown
}
