// Package hierarchy defines types and options for traversing live
// subclass trees, including cancellation, visit hooks, depth limiting,
// and subtree filtering.
package hierarchy

import (
	"context"
	"errors"

	"github.com/katalvlaran/finality/core"
)

var (
	// ErrNilClass is returned when a nil *core.Class is passed to Walk
	// or Descendants.
	ErrNilClass = errors.New("hierarchy: class is nil")
)

// Option configures optional behavior of hierarchy traversal.
// Use with Walk(root, opts...) or Descendants(root, opts...).
type Option func(*Options)

// Options holds configurable parameters for subclass traversal.
// It controls hooks, limits, filtering, and diagnostics.
// Complexity stays O(V+E) over the subclass graph when hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts traversal early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a class is first discovered,
	// together with its depth below the root. Returning an error aborts
	// traversal with that error.
	OnVisit func(c *core.Class, depth int) error

	// OnExit, if non-nil, is invoked after all of a class's subtree has
	// been explored (post-order). Only Walk honors it; Descendants
	// proceeds level by level and has no exit point per class.
	OnExit func(c *core.Class) error

	// MaxDepth, if non-negative, limits descent below the root.
	// For Walk, 0 visits only the root. For Descendants, 0 yields no
	// classes and 1 the direct subclasses. Default is -1 (no limit).
	MaxDepth int

	// Filter, if non-nil, is consulted before entering a subclass.
	// Return true to traverse into it, false to skip its whole subtree.
	Filter func(c *core.Class) bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No subtree filtering
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  nil,
		OnExit:   nil,
		MaxDepth: -1,
		Filter:   nil,
	}
}

// WithContext returns an Option that sets the traversal context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the discovery hook.
func WithOnVisit(fn func(c *core.Class, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as the post-order hook.
func WithOnExit(fn func(c *core.Class) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits descent to limit levels
// below the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilter returns an Option that prunes subtrees: subclasses for
// which fn returns false are skipped entirely and counted in
// Result.Skipped.
func WithFilter(fn func(c *core.Class) bool) Option {
	return func(o *Options) {
		o.Filter = fn
	}
}

// Result captures the outcome of a Walk traversal.
type Result struct {
	// Order records classes in discovery order (pre-order), root first.
	Order []*core.Class

	// Depth maps each discovered class to its distance below the root.
	Depth map[*core.Class]int

	// Parent maps each discovered class to the class it was first
	// reached from. The root has no entry.
	Parent map[*core.Class]*core.Class

	// Visited flags every class reached during the traversal.
	Visited map[*core.Class]bool

	// Skipped counts subclasses pruned by Filter, aggregated across the
	// whole traversal.
	Skipped int
}
