package tui

// cursor tracks the focused message position and the scroll offset of the
// visible window. It is pure state: every move clamps to the collection
// bounds and recomputes the scroll offset, and all moves are no-ops on an
// empty collection.
type cursor struct {
	pos    int
	scroll int
}

// focused returns the focused message id, or false when the collection is
// empty.
func (c cursor) focused(count int) (int, bool) {
	if count == 0 {
		return 0, false
	}
	return c.pos, true
}

// calculateScrollOffset computes the new scroll offset to keep pos visible
// within pageSize.
func calculateScrollOffset(pos, currentOffset, pageSize int) int {
	if pos < currentOffset {
		return pos
	}
	if pos >= currentOffset+pageSize {
		return pos - pageSize + 1
	}
	return currentOffset
}

func (c *cursor) ensureVisible(pageSize int) {
	c.scroll = calculateScrollOffset(c.pos, c.scroll, pageSize)
}

// clamp forces pos into [0, count-1] and keeps it visible. Out-of-range
// requests clamp silently; browsing is user-driven, not a data-integrity
// operation.
func (c *cursor) clamp(count, pageSize int) {
	if count == 0 {
		c.pos = 0
		c.scroll = 0
		return
	}
	if c.pos >= count {
		c.pos = count - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
	c.ensureVisible(pageSize)
}

func (c *cursor) moveNext(count, pageSize int) {
	c.pos++
	c.clamp(count, pageSize)
}

func (c *cursor) movePrev(count, pageSize int) {
	c.pos--
	c.clamp(count, pageSize)
}

func (c *cursor) moveTo(id, count, pageSize int) {
	c.pos = id
	c.clamp(count, pageSize)
}

func (c *cursor) pageNext(count, pageSize int) {
	c.pos += pageSize
	c.clamp(count, pageSize)
}

func (c *cursor) pagePrev(count, pageSize int) {
	c.pos -= pageSize
	c.clamp(count, pageSize)
}

// navigateList applies a navigation key to the list cursor. Returns false
// when the key is not a navigation key.
func (m *Model) navigateList(key string) bool {
	count := m.col.Len()

	switch key {
	case "up", "k":
		m.cur.movePrev(count, m.pageSize)
	case "down", "j":
		m.cur.moveNext(count, m.pageSize)
	case "pgup", "ctrl+u":
		m.cur.pagePrev(count, m.pageSize)
	case "pgdown", "ctrl+d":
		m.cur.pageNext(count, m.pageSize)
	case "home":
		m.cur.moveTo(0, count, m.pageSize)
	case "end", "G":
		m.cur.moveTo(count-1, count, m.pageSize)
	default:
		return false
	}
	return true
}
