package store

import "fmt"

// SetSelected sets a single message's selection flag. Setting a flag to its
// current value is a no-op.
func (c *Collection) SetSelected(id int, selected bool) error {
	if id < 0 || id >= len(c.messages) {
		return fmt.Errorf("set selected %d of %d: %w", id, len(c.messages), ErrInvalidID)
	}
	c.messages[id].Selected = selected
	return nil
}

// Toggle flips a single message's selection flag.
func (c *Collection) Toggle(id int) error {
	if id < 0 || id >= len(c.messages) {
		return fmt.Errorf("toggle %d of %d: %w", id, len(c.messages), ErrInvalidID)
	}
	c.messages[id].Selected = !c.messages[id].Selected
	return nil
}

// SelectAll marks every message selected.
func (c *Collection) SelectAll() {
	for i := range c.messages {
		c.messages[i].Selected = true
	}
}

// DeselectAll clears every selection flag.
func (c *Collection) DeselectAll() {
	for i := range c.messages {
		c.messages[i].Selected = false
	}
}

// SetRange sets the inclusive id range [a, b] to the given value. The
// endpoints may be given in either order.
func (c *Collection) SetRange(a, b int, selected bool) error {
	if a > b {
		a, b = b, a
	}
	if a < 0 || b >= len(c.messages) {
		return fmt.Errorf("set range [%d, %d] of %d: %w", a, b, len(c.messages), ErrInvalidID)
	}
	for i := a; i <= b; i++ {
		c.messages[i].Selected = selected
	}
	return nil
}
