package easel

import "testing"

func entries(n int) []MenuEntry {
	e := make([]MenuEntry, n)
	for i := range e {
		e[i] = MenuEntry{Label: "item"}
	}
	return e
}

// --- Layout & clamping ---

func TestContextMenu_Layout(t *testing.T) {
	m := NewContextMenu(Point{100, 100}, 800, 600, nil, entries(3))

	items := m.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, it := range items {
		want := Rect{100, 100 + MenuItemHeight*float64(i), MenuItemWidth, MenuItemHeight}
		if it.Bounds() != want {
			t.Errorf("item %d bounds = %v, want %v", i, it.Bounds(), want)
		}
	}
	if m.Bounds() != (Rect{100, 100, 150, 60}) {
		t.Errorf("menu bounds = %v", m.Bounds())
	}
}

func TestContextMenu_ClampBottomRight(t *testing.T) {
	// Request near the bottom-right corner of an 800x600 surface.
	m := NewContextMenu(Point{780, 590}, 800, 600, nil, entries(3))

	b := m.Bounds()
	if b.X != 650 || b.Y != 540 {
		t.Errorf("clamped top-left = (%v, %v), want (650, 540)", b.X, b.Y)
	}
	if b.X < 0 || b.Y < 0 || b.X+b.Width > 800 || b.Y+b.Height > 600 {
		t.Errorf("menu bounds %v must lie within the surface", b)
	}
}

func TestContextMenu_NoClampWhenInside(t *testing.T) {
	m := NewContextMenu(Point{10, 10}, 800, 600, nil, entries(2))
	if b := m.Bounds(); b.X != 10 || b.Y != 10 {
		t.Errorf("menu must not shift when it fits, got (%v, %v)", b.X, b.Y)
	}
}

func TestContextMenu_ClampRightOnly(t *testing.T) {
	m := NewContextMenu(Point{700, 100}, 800, 600, nil, entries(2))
	if b := m.Bounds(); b.X != 650 || b.Y != 100 {
		t.Errorf("top-left = (%v, %v), want (650, 100)", b.X, b.Y)
	}
}

func TestContextMenu_EmptyEntriesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a menu with no entries should panic")
		}
	}()
	NewContextMenu(Point{0, 0}, 800, 600, nil, nil)
}

// --- Item activation ---

func TestMenuItem_ActivatesOnRelease(t *testing.T) {
	var fired int
	it := NewMenuItem(Rect{10, 10, 150, 20}, "item", func() { fired++ })

	if it.HandleEvent(up(Point{20, 20}), &Pass{}) != Control(it) {
		t.Error("a stateless item must return itself")
	}
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestMenuItem_IgnoresOtherEvents(t *testing.T) {
	var fired int
	it := NewMenuItem(Rect{10, 10, 150, 20}, "item", func() { fired++ })

	it.HandleEvent(down(Point{20, 20}), &Pass{})
	it.HandleEvent(move(Point{20, 20}), &Pass{})
	it.HandleEvent(up(Point{500, 500}), &Pass{}) // outside
	it.HandleEvent(PointerEvent{Kind: EventPointerUp, Point: Point{20, 20}, Button: MouseButtonRight}, &Pass{})
	it.HandleEvent(CaptureCancelEvent{Button: MouseButtonLeft}, &Pass{})
	it.HandleEvent(KeyEvent{Key: 13}, &Pass{})

	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}
}

func TestMenuItem_NilCallback(t *testing.T) {
	it := NewMenuItem(Rect{10, 10, 150, 20}, "placeholder", nil)
	// Must not panic.
	it.HandleEvent(up(Point{20, 20}), &Pass{})
}

// --- Dismissal ---

func TestContextMenu_DismissOnAnyRelease(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"left release inside", up(Point{110, 110})},
		{"left release far away", up(Point{700, 500})},
		{"right release", PointerEvent{Kind: EventPointerUp, Point: Point{0, 0}, Button: MouseButtonRight}},
		{"capture cancel", CaptureCancelEvent{Button: MouseButtonLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dismissed int
			m := NewContextMenu(Point{100, 100}, 800, 600, func() { dismissed++ }, entries(2))
			m.HandleEvent(tt.ev, &Pass{})
			if dismissed != 1 {
				t.Errorf("dismissed = %d, want 1", dismissed)
			}
		})
	}
}

func TestContextMenu_NoDismissOnDownMoveKey(t *testing.T) {
	var dismissed int
	m := NewContextMenu(Point{100, 100}, 800, 600, func() { dismissed++ }, entries(2))

	m.HandleEvent(down(Point{110, 110}), &Pass{})
	m.HandleEvent(move(Point{110, 110}), &Pass{})
	m.HandleEvent(KeyEvent{Key: 27}, &Pass{})

	if dismissed != 0 {
		t.Errorf("dismissed = %d, want 0", dismissed)
	}
}

func TestContextMenu_ActivationThenDismissal(t *testing.T) {
	// A release over an item both activates it and closes the menu.
	var order []string
	m := NewContextMenu(Point{100, 100}, 800, 600,
		func() { order = append(order, "dismiss") },
		[]MenuEntry{
			{Label: "first", OnActivate: func() { order = append(order, "first") }},
			{Label: "second", OnActivate: func() { order = append(order, "second") }},
		})

	// Release over the second row.
	m.HandleEvent(up(Point{110, 130}), &Pass{})

	if len(order) != 2 || order[0] != "second" || order[1] != "dismiss" {
		t.Errorf("order = %v, want [second dismiss]", order)
	}
}

func TestContextMenu_EveryItemSeesTheEvent(t *testing.T) {
	// Dispatch to items does not short-circuit: overlapping rows would each
	// observe the event once. Count deliveries via activations at a point
	// covered by exactly one row, with seen counters on both rows.
	var seen [2]int
	m := NewContextMenu(Point{100, 100}, 800, 600, nil, []MenuEntry{
		{Label: "a", OnActivate: func() { seen[0]++ }},
		{Label: "b", OnActivate: func() { seen[1]++ }},
	})

	m.HandleEvent(up(Point{110, 105}), &Pass{}) // inside row 0 only
	if seen[0] != 1 || seen[1] != 0 {
		t.Errorf("seen = %v, want [1 0]", seen)
	}

	m.HandleEvent(up(Point{110, 125}), &Pass{}) // inside row 1 only
	if seen[0] != 1 || seen[1] != 1 {
		t.Errorf("seen = %v, want [1 1]", seen)
	}
}
