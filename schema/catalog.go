// Catalog: a thread-safe name registry resolving declaration bases to
// live classes.
package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/finality/core"
)

// Catalog maps class names to live *core.Class values. Documents are
// built against a catalog: declared bases resolve through it, and every
// materialized class is defined back into it. Pre-defining classes built
// in Go code lets declaration files extend them.
//
// All methods are safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	classes map[string]*core.Class
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{classes: make(map[string]*core.Class)}
}

// Define registers cls under its class name.
// Returns core.ErrNilClass for a nil class and ErrDuplicateClass when
// the name is already taken.
func (c *Catalog) Define(cls *core.Class) error {
	if cls == nil {
		return core.ErrNilClass
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.classes[cls.Name()]; ok {
		return fmt.Errorf("schema: define %q: %w", cls.Name(), ErrDuplicateClass)
	}
	c.classes[cls.Name()] = cls

	return nil
}

// Resolve returns the class defined under name, or ErrClassNotFound.
func (c *Catalog) Resolve(name string) (*core.Class, error) {
	c.mu.RLock()
	cls, ok := c.classes[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("schema: resolve %q: %w", name, ErrClassNotFound)
	}

	return cls, nil
}

// Names returns every defined class name in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.classes))
	for name := range c.classes {
		out = append(out, name)
	}
	c.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Len reports the number of defined classes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.classes)
}
