package store_test

import (
	"errors"
	"testing"

	"github.com/reedham/msgsift/internal/store"
	"github.com/reedham/msgsift/internal/testutil"
)

func TestSetSelectedIdempotent(t *testing.T) {
	col := testutil.MustLoad(t, "A", "B")

	testutil.MustNoErr(t, col.SetSelected(0, true), "first set")
	testutil.MustNoErr(t, col.SetSelected(0, true), "second set")

	msg, err := col.Get(0)
	testutil.MustNoErr(t, err, "get 0")
	if !msg.Selected {
		t.Error("message 0 should stay selected")
	}
	if got := col.CountSelected(); got != 2 {
		t.Errorf("got %d selected, want 2", got)
	}
}

func TestSetSelectedInvalidID(t *testing.T) {
	col := testutil.MustLoad(t, "A")

	for _, id := range []int{-1, 1, 100} {
		if err := col.SetSelected(id, true); !errors.Is(err, store.ErrInvalidID) {
			t.Errorf("SetSelected(%d): got %v, want ErrInvalidID", id, err)
		}
	}
}

func TestToggle(t *testing.T) {
	col := testutil.MustLoad(t, "A")

	testutil.MustNoErr(t, col.Toggle(0), "toggle off")
	if got := col.CountSelected(); got != 0 {
		t.Errorf("got %d selected after toggle, want 0", got)
	}

	testutil.MustNoErr(t, col.Toggle(0), "toggle on")
	if got := col.CountSelected(); got != 1 {
		t.Errorf("got %d selected after second toggle, want 1", got)
	}

	if err := col.Toggle(5); !errors.Is(err, store.ErrInvalidID) {
		t.Errorf("Toggle(5): got %v, want ErrInvalidID", err)
	}
}

func TestSelectAllDeselectAll(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		contents := make([]string, n)
		for i := range contents {
			contents[i] = "m"
		}
		col := testutil.MustLoad(t, contents...)

		col.DeselectAll()
		if got := col.CountSelected(); got != 0 {
			t.Errorf("n=%d: got %d selected after DeselectAll, want 0", n, got)
		}

		col.SelectAll()
		if got := col.CountSelected(); got != n {
			t.Errorf("n=%d: got %d selected after SelectAll, want %d", n, got, n)
		}
	}
}

func TestSetRangeEndpointOrder(t *testing.T) {
	col := testutil.MustLoad(t, "A", "B", "C", "D", "E")
	col.DeselectAll()

	// Endpoints in descending order select the same inclusive range.
	testutil.MustNoErr(t, col.SetRange(3, 1, true), "set range")

	testutil.AssertEqualSlices(t, col.SelectedIDs(), 1, 2, 3)
}

func TestSetRangeInvalid(t *testing.T) {
	col := testutil.MustLoad(t, "A", "B", "C")

	cases := []struct{ a, b int }{
		{-1, 2},
		{0, 3},
		{5, 1},
	}
	for _, tc := range cases {
		if err := col.SetRange(tc.a, tc.b, true); !errors.Is(err, store.ErrInvalidID) {
			t.Errorf("SetRange(%d, %d): got %v, want ErrInvalidID", tc.a, tc.b, err)
		}
	}

	// A failed range must not have touched any flag.
	col.DeselectAll()
	if err := col.SetRange(1, 5, true); err == nil {
		t.Fatal("expected error for out-of-range endpoint")
	}
	if got := col.CountSelected(); got != 0 {
		t.Errorf("failed SetRange mutated %d flags", got)
	}
}

func TestSetRangeSingle(t *testing.T) {
	col := testutil.MustLoad(t, "A", "B", "C")
	col.DeselectAll()

	testutil.MustNoErr(t, col.SetRange(1, 1, true), "set single range")
	testutil.AssertEqualSlices(t, col.SelectedIDs(), 1)
}
