package easel

// Menu geometry is fixed: every item is MenuItemWidth x MenuItemHeight,
// stacked vertically in list order.
const (
	MenuItemWidth  = 150.0
	MenuItemHeight = 20.0
)

var (
	menuItemFill   = Color{0.92, 0.92, 0.92, 1}
	menuItemStroke = Color{0.5, 0.5, 0.5, 1}
	menuItemText   = ColorBlack
)

// MenuEntry describes one row of a context menu: a label and the callback
// invoked when the row is activated. OnActivate may be nil for placeholders.
type MenuEntry struct {
	Label      string
	OnActivate func()
}

// MenuItem is a single clickable row of a context menu. It is stateless
// besides its geometry: handling an event never changes the item itself,
// though its activation callback may mutate the surface's control list.
type MenuItem struct {
	rect       Rect
	label      string
	onActivate func()
}

// NewMenuItem creates an item covering r.
func NewMenuItem(r Rect, label string, onActivate func()) *MenuItem {
	return &MenuItem{rect: r, label: label, onActivate: onActivate}
}

// HandleEvent activates the item on a left-button release inside its rect.
func (m *MenuItem) HandleEvent(ev Event, pass *Pass) Control {
	if e, ok := ev.(PointerEvent); ok &&
		e.Kind == EventPointerUp && e.Button == MouseButtonLeft && m.rect.Contains(e.Point) {
		if m.onActivate != nil {
			m.onActivate()
		}
	}
	return m
}

// Draw renders the row background, border, and label.
func (m *MenuItem) Draw(c Canvas) {
	RectShape{Rect: m.rect, Fill: menuItemFill, Stroke: menuItemStroke}.Draw(c)
	TextLabel{
		X: m.rect.X + 6, HAlign: AlignLeft,
		Y: m.rect.Y + m.rect.Height/2, VAlign: AlignMiddle,
		Text:  m.label,
		Color: menuItemText,
	}.Draw(c)
}

// Bounds returns the item's rectangle.
func (m *MenuItem) Bounds() Rect {
	return m.rect
}

// ContextMenu is a transient stack of menu items. Its placement is clamped
// at creation so the full bounding rectangle lies within the surface; it is
// never re-clamped afterwards. Any release or capture-cancel closes it.
type ContextMenu struct {
	items     []*MenuItem
	onDismiss func()
}

// NewContextMenu builds a menu with its top-left at the desired point,
// shifted left/up by any overflow past the surface's right or bottom edge.
// Panics if entries is empty: a menu always has at least one item.
func NewContextMenu(at Point, surfaceW, surfaceH float64, onDismiss func(), entries []MenuEntry) *ContextMenu {
	if len(entries) == 0 {
		panic("easel: context menu needs at least one entry")
	}
	x, y := at.X, at.Y
	if over := x + MenuItemWidth - surfaceW; over > 0 {
		x -= over
	}
	if over := y + MenuItemHeight*float64(len(entries)) - surfaceH; over > 0 {
		y -= over
	}
	m := &ContextMenu{onDismiss: onDismiss}
	for i, e := range entries {
		r := Rect{x, y + MenuItemHeight*float64(i), MenuItemWidth, MenuItemHeight}
		m.items = append(m.items, NewMenuItem(r, e.Label, e.OnActivate))
	}
	return m
}

// Items returns the menu's rows in stacking order.
func (m *ContextMenu) Items() []*MenuItem {
	return m.items
}

// HandleEvent delivers ev to every item topmost-first (no short-circuit),
// then dismisses the menu on any release or capture-cancel. Items are
// stateless, so the menu itself never changes value.
func (m *ContextMenu) HandleEvent(ev Event, pass *Pass) Control {
	for i := len(m.items) - 1; i >= 0; i-- {
		m.items[i].HandleEvent(ev, pass)
	}
	switch e := ev.(type) {
	case PointerEvent:
		if e.Kind == EventPointerUp && m.onDismiss != nil {
			m.onDismiss()
		}
	case CaptureCancelEvent:
		if m.onDismiss != nil {
			m.onDismiss()
		}
	}
	return m
}

// Draw renders the items in forward order.
func (m *ContextMenu) Draw(c Canvas) {
	for _, it := range m.items {
		it.Draw(c)
	}
}

// Bounds returns the union of all item rectangles.
func (m *ContextMenu) Bounds() Rect {
	rects := make([]Rect, len(m.items))
	for i, it := range m.items {
		rects[i] = it.rect
	}
	return Union(rects)
}
