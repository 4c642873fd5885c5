package tui

import "testing"

func TestCalculateScrollOffset(t *testing.T) {
	cases := []struct {
		name                      string
		pos, offset, pageSize, want int
	}{
		{"visible stays put", 5, 3, 10, 3},
		{"above window scrolls up", 2, 5, 10, 2},
		{"below window scrolls down", 15, 0, 10, 6},
		{"at top edge", 3, 3, 10, 3},
		{"at bottom edge", 12, 3, 10, 3},
		{"just past bottom edge", 13, 3, 10, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := calculateScrollOffset(tc.pos, tc.offset, tc.pageSize); got != tc.want {
				t.Errorf("calculateScrollOffset(%d, %d, %d) = %d, want %d",
					tc.pos, tc.offset, tc.pageSize, got, tc.want)
			}
		})
	}
}

func TestCursorClamp(t *testing.T) {
	c := cursor{pos: 99, scroll: 50}
	c.clamp(10, 5)
	if c.pos != 9 {
		t.Errorf("pos %d, want 9", c.pos)
	}
	if c.scroll != 5 {
		t.Errorf("scroll %d, want 5 to keep pos visible", c.scroll)
	}

	c = cursor{pos: -3}
	c.clamp(10, 5)
	if c.pos != 0 {
		t.Errorf("pos %d, want 0", c.pos)
	}
}

func TestCursorEmptyCollection(t *testing.T) {
	c := cursor{pos: 4, scroll: 2}
	c.clamp(0, 5)
	if c.pos != 0 || c.scroll != 0 {
		t.Errorf("empty clamp: pos=%d scroll=%d, want 0/0", c.pos, c.scroll)
	}
	if _, ok := c.focused(0); ok {
		t.Error("focused must report none for an empty collection")
	}
}

func TestCursorMoves(t *testing.T) {
	const count, page = 8, 3
	var c cursor

	c.moveNext(count, page)
	c.moveNext(count, page)
	if c.pos != 2 {
		t.Errorf("pos %d, want 2", c.pos)
	}

	c.pageNext(count, page)
	if c.pos != 5 {
		t.Errorf("pos %d after page, want 5", c.pos)
	}
	if c.scroll != 3 {
		t.Errorf("scroll %d, want 3", c.scroll)
	}

	c.pagePrev(count, page)
	c.pagePrev(count, page)
	if c.pos != 0 {
		t.Errorf("pos %d after paging past start, want 0", c.pos)
	}

	c.moveTo(100, count, page)
	if c.pos != count-1 {
		t.Errorf("pos %d after moveTo(100), want %d", c.pos, count-1)
	}

	c.movePrev(count, page)
	if c.pos != count-2 {
		t.Errorf("pos %d, want %d", c.pos, count-2)
	}
}
