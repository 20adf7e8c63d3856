// Package hierarchy implements traversal over live subclass graphs.
//
// Walk explores depth-first from a root class, Descendants collects the
// transitive subclasses breadth-first, Ancestors reads the linearized
// ancestry. Subclass links form a DAG (bases always exist before their
// subclasses), and diamonds are deduplicated so every class is visited
// once.
//
// Complexity:
//
//   - Walk:        Time O(V+E) over the subtree, Memory O(V)
//   - Descendants: Time O(V+E) over the subtree, Memory O(V)
//   - Ancestors:   Time O(A), Memory O(A)
package hierarchy

import "github.com/katalvlaran/finality/core"

// Walk performs a depth-first traversal of the subclass tree rooted at
// root, visiting the root itself at depth 0. Subclasses are explored in
// the sorted order core exposes them, so the discovery order is
// deterministic for a fixed hierarchy.
//
// Returns ErrNilClass for a nil root, the context error on
// cancellation, and any error produced by the OnVisit/OnExit hooks.
func Walk(root *core.Class, opts ...Option) (*Result, error) {
	// 1. Validate the root.
	if root == nil {
		return nil, ErrNilClass
	}
	// 2. Apply optional settings.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Initialize traversal state.
	w := &walker{
		opts: o,
		res: &Result{
			Depth:   make(map[*core.Class]int),
			Parent:  make(map[*core.Class]*core.Class),
			Visited: make(map[*core.Class]bool),
		},
	}
	// 4. Descend from the root.
	if err := w.visit(root, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// walker encapsulates state for one Walk traversal.
type walker struct {
	opts Options
	res  *Result
}

// visit discovers c at the given depth and recurses into its subtree.
func (w *walker) visit(c *core.Class, depth int) error {
	// 1. Cancellation check at entry.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	// 2. Diamonds reach a class through several bases; visit once.
	if w.res.Visited[c] {
		return nil
	}
	w.res.Visited[c] = true
	// 3. Record discovery (pre-order) and fire the visit hook.
	w.res.Order = append(w.res.Order, c)
	w.res.Depth[c] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c, depth); err != nil {
			return err
		}
	}
	// 4. Descend unless the depth limit stops us at this level.
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, sub := range c.Subclasses() {
			if w.res.Visited[sub] {
				continue
			}
			// 4a. Prune filtered subtrees and count them.
			if w.opts.Filter != nil && !w.opts.Filter(sub) {
				w.res.Skipped++

				continue
			}
			// 4b. First discovery wins the parent link.
			w.res.Parent[sub] = c
			if err := w.visit(sub, depth+1); err != nil {
				return err
			}
		}
	}
	// 5. Fire the post-order hook after the whole subtree.
	if w.opts.OnExit != nil {
		return w.opts.OnExit(c)
	}

	return nil
}

// Descendants returns the transitive subclasses of root in
// breadth-first level order, nearest level first, without the root
// itself. Within one level the sorted subclass order of each parent is
// preserved. OnVisit (with the subclass depth), Filter, MaxDepth, and
// the context are honored; OnExit is not used.
//
// Returns ErrNilClass for a nil root.
func Descendants(root *core.Class, opts ...Option) ([]*core.Class, error) {
	// 1. Validate the root.
	if root == nil {
		return nil, ErrNilClass
	}
	// 2. Apply optional settings.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3. Level-order queue seeded with the root at depth 0.
	type item struct {
		c     *core.Class
		depth int
	}
	visited := map[*core.Class]bool{root: true}
	queue := []item{{c: root, depth: 0}}
	var out []*core.Class

	for len(queue) > 0 {
		// 3a. Cancellation check per dequeue.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		cur := queue[0]
		queue = queue[1:]
		// 3b. Depth limit: do not enqueue past the boundary.
		if o.MaxDepth >= 0 && cur.depth >= o.MaxDepth {
			continue
		}
		for _, sub := range cur.c.Subclasses() {
			if visited[sub] {
				continue
			}
			if o.Filter != nil && !o.Filter(sub) {
				continue
			}
			visited[sub] = true
			if o.OnVisit != nil {
				if err := o.OnVisit(sub, cur.depth+1); err != nil {
					return nil, err
				}
			}
			out = append(out, sub)
			queue = append(queue, item{c: sub, depth: cur.depth + 1})
		}
	}

	return out, nil
}

// Ancestors returns the linearized ancestry of c without c itself: the
// MRO tail, closest ancestor first. Nil-safe; a nil or base-less class
// has no ancestors.
func Ancestors(c *core.Class) []*core.Class {
	mro := c.MRO()
	if len(mro) <= 1 {
		return nil
	}

	return mro[1:]
}
