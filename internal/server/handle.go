package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// State is a position in the handle's lifecycle. Transitions only move
// forward; no state may be skipped and a stopped handle never restarts.
type State int

const (
	Created State = iota
	Starting
	Running
	Stopping
	Stopped
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Handle represents a running listener: it owns the bound port and the
// lifecycle transition events.
//
// The two completion notifications are one-shot: WhenUp resolves once the
// socket is bound and accepting, WhenDown once the listener has fully shut
// down. Both are plain closed channels, safe to observe from any number of
// goroutines without blocking.
//
// Only the bootstrap and shutdown sequences mutate the state; request
// handlers never touch it.
type Handle struct {
	mu    sync.Mutex
	state State
	port  int

	up       chan struct{}
	down     chan struct{}
	upOnce   sync.Once
	downOnce sync.Once

	server *http.Server
}

func newHandle() *Handle {
	return &Handle{
		state: Created,
		up:    make(chan struct{}),
		down:  make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Port returns the port the listener is bound to. Valid once WhenUp has
// resolved; before that it returns zero.
func (h *Handle) Port() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.port
}

// WhenUp returns a channel closed exactly once, when the listener is bound
// and accepting connections.
func (h *Handle) WhenUp() <-chan struct{} {
	return h.up
}

// WhenDown returns a channel closed exactly once, when the listener has
// fully shut down.
func (h *Handle) WhenDown() <-chan struct{} {
	return h.down
}

// Stop gracefully shuts the listener down: Running -> Stopping -> Stopped.
// Stopping a handle that is not running returns ErrInvalidTransition.
// The terminal notification fires even when the underlying shutdown
// reports an error.
func (h *Handle) Stop(ctx context.Context) error {
	if err := h.transition(Running, Stopping); err != nil {
		return err
	}

	err := h.server.Shutdown(ctx)

	_ = h.transition(Stopping, Stopped)
	h.downOnce.Do(func() { close(h.down) })

	return err
}

func (h *Handle) transition(from, to State) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != from {
		return fmt.Errorf("%w: %s -> %s (handle is %s)", ErrInvalidTransition, from, to, h.state)
	}
	h.state = to
	return nil
}

// markRunning records the bound port and resolves the up notification.
func (h *Handle) markRunning(port int) {
	h.mu.Lock()
	h.port = port
	h.mu.Unlock()

	_ = h.transition(Starting, Running)
	h.upOnce.Do(func() { close(h.up) })
}

// fail forces the handle into its terminal state after an unexpected serve
// error and resolves the down notification.
func (h *Handle) fail() {
	h.mu.Lock()
	h.state = Stopped
	h.mu.Unlock()

	h.downOnce.Do(func() { close(h.down) })
}
