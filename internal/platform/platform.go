package platform

import (
	"context"
	"fmt"

	"github.com/mj1618/a11y-reporter/internal/model"
)

// Node is a host-owned handle to one UI element. The holder must call Recycle
// exactly once when done; implementations treat extra calls as no-ops.
type Node interface {
	fmt.Stringer

	// ChildCount returns the number of children the host reports.
	ChildCount() int

	// Child acquires the child at index i. It returns nil if the host no
	// longer has that child.
	Child(i int) Node

	// Recycle releases the handle back to the host.
	Recycle()
}

// Host is the query surface a listener may call back into.
type Host interface {
	// SetServiceInfo declares the event types and flags the listener wants.
	SetServiceInfo(info model.ServiceInfo)

	// Windows returns the on-screen windows at call time.
	Windows() []model.Window

	// RootInActiveWindow acquires the root of the active window, or nil
	// when there is no active window.
	RootInActiveWindow() Node
}

// Handler receives lifecycle and event callbacks from a host. Callbacks are
// delivered serially.
type Handler interface {
	OnConnected()
	OnEvent(ev model.Event)
	OnInterrupt()
}

// Session is a host connection that drives a Handler.
type Session interface {
	Host

	// ID identifies the session in logs.
	ID() string

	// Run delivers callbacks to h on the calling goroutine until the host has
	// nothing more to send or ctx is done.
	Run(ctx context.Context, h Handler) error
}
