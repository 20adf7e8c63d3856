// Package hierarchy implements traversal over the live subclass graphs
// that core.NewClass publishes, plus ancestry introspection.
//
// What:
//
//   - Walk: depth-first, pre-order exploration from a root class.
//     Supports:
//   - Discovery and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Subtree filtering with prune diagnostics
//   - Descendants: breadth-first level order of all transitive
//     subclasses, nearest level first, root excluded.
//   - Ancestors: the linearized ancestry (MRO tail) of one class,
//     closest ancestor first.
//
// Why:
//   - Audit which parts of a hierarchy a seal protects
//   - Feed registries and code generators with deterministic class sets
//   - Inspect how deep and wide a plugin tree has grown
//
// Determinism: subclass links are explored in the sorted order core
// exposes them, so traversal output is reproducible for a fixed
// hierarchy. Diamonds are visited once; the first discovery wins the
// parent link.
//
// Errors:
//
//   - ErrNilClass        root pointer is nil
//   - context.Canceled   traversal canceled via context
//   - hook errors        propagated from OnVisit or OnExit
//
// Functions:
//
//   - Walk(root *core.Class, opts ...Option) (*Result, error)
//   - Descendants(root *core.Class, opts ...Option) ([]*core.Class, error)
//   - Ancestors(c *core.Class) []*core.Class
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilter()
package hierarchy
