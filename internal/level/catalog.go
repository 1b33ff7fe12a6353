package level

import "fmt"

// Catalog is an ordered, validated set of levels addressable by ID.
// Campaign order is insertion order.
type Catalog struct {
	levels []Level
	index  map[string]int
}

// NewCatalog validates the given levels and builds a catalog preserving
// their order. Duplicate IDs are rejected.
func NewCatalog(levels ...Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, ValidationError{Code: "EMPTY_CATALOG", Message: "at least one level is required"}
	}

	c := &Catalog{index: make(map[string]int, len(levels))}
	for _, lvl := range levels {
		if err := Validate(lvl); err != nil {
			return nil, err
		}
		if _, dup := c.index[lvl.ID]; dup {
			return nil, ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("level id %q appears more than once", lvl.ID),
			}
		}
		c.index[lvl.ID] = len(c.levels)
		c.levels = append(c.levels, lvl)
	}
	return c, nil
}

// Default returns the built-in campaign catalog. The table is static and
// covered by tests, so construction cannot fail at runtime.
func Default() *Catalog {
	c, err := NewCatalog(Builtin...)
	if err != nil {
		panic("level: invalid built-in table: " + err.Error())
	}
	return c
}

// Len returns the number of levels in the catalog.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// List returns the levels in campaign order. Callers must not modify the
// returned slice.
func (c *Catalog) List() []Level {
	return c.levels
}

// At returns the level at the given campaign position.
func (c *Catalog) At(i int) (Level, bool) {
	if i < 0 || i >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[i], true
}

// ByID returns the level with the given ID.
func (c *Catalog) ByID(id string) (Level, bool) {
	i, ok := c.index[id]
	if !ok {
		return Level{}, false
	}
	return c.levels[i], true
}

// Exists reports whether a level with the given ID is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IndexOf returns the campaign position of the given ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// From returns the levels in campaign order starting at the given ID, so a
// run launched mid-campaign still advances through the remaining tracks.
func (c *Catalog) From(id string) ([]Level, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("level not found: %s", id)
	}
	return c.levels[i:], nil
}
