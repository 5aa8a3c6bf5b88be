package actionmenu

import "strings"

// PerformActionFunc is executed when a leaf action is selected.
// The menu closes immediately after the callback returns, unless the
// callback froze the session with Menu.Freeze.
type PerformActionFunc func(menu *Menu, item *Item, context any)

// EachItemFunc is invoked for every Item while a hierarchy is destroyed,
// so the caller can release whatever its action data points at.
type EachItemFunc func(item *Item, context any)

// Item is a single menu entry: either a leaf action or a link to a child
// Level. Items are owned by the Level that holds them.
type Item struct {
	label      string
	actionData any
	perform    PerformActionFunc
	child      *Level
}

// Label returns the item's display label. Empty if the item is nil or has
// no label.
func (it *Item) Label() string {
	if it == nil {
		return ""
	}
	return it.label
}

// ActionData returns the opaque data the item was added with. The menu
// never inspects it beyond passing it back through callbacks.
func (it *Item) ActionData() any {
	if it == nil {
		return nil
	}
	return it.actionData
}

// IsLeaf reports whether selecting the item performs an action rather than
// descending into a child level.
func (it *Item) IsLeaf() bool {
	return it != nil && it.child == nil && it.perform != nil
}

// DisplayMode controls how a level lays out its items.
type DisplayMode int

const (
	DisplayModeWide DisplayMode = iota // rows sized to their wrapped label
	DisplayModeThin                    // compact fixed-height rows
)

// Level is one screen's worth of menu entries with a capacity fixed at
// creation. Levels form a strict tree; the parent link and depth are set
// when a level is attached with AddChild and must not be attached twice.
type Level struct {
	capacity int
	items    []*Item
	mode     DisplayMode
	depth    int
	parent   *Level
}

// NewLevel creates a Level with room for exactly capacity items.
// Display mode defaults to wide and depth to 1; both are adjusted later,
// the depth automatically when the level is attached as a child.
// Returns nil for a negative capacity.
func NewLevel(capacity int) *Level {
	if capacity < 0 {
		return nil
	}
	return &Level{
		capacity: capacity,
		items:    make([]*Item, 0, capacity),
		depth:    1,
	}
}

// SetDisplayMode overwrites the level's display mode. No-op on a nil level.
// Callable any time before the level is shown.
func (l *Level) SetDisplayMode(mode DisplayMode) {
	if l == nil {
		return
	}
	l.mode = mode
}

// AddAction appends a leaf action to the level. The label is copied into
// storage owned by the item. Returns nil, without mutating the level, if
// the level is nil or already full.
func (l *Level) AddAction(label string, perform PerformActionFunc, actionData any) *Item {
	if l == nil || len(l.items) >= l.capacity {
		return nil
	}
	it := &Item{
		label:      strings.Clone(label),
		perform:    perform,
		actionData: actionData,
	}
	l.items = append(l.items, it)
	return it
}

// AddChild appends a link to a child level. As a side effect the child's
// parent reference and depth are set, and the new depth propagates through
// the child's whole subtree, so a tree may be assembled bottom-up. This is
// the only way parent links are ever established, so the same child must
// not be attached under two parents.
// Returns nil, without mutating either level, if the receiver is nil, the
// child is nil, or the level is full.
func (l *Level) AddChild(child *Level, label string) *Item {
	if l == nil || child == nil || len(l.items) >= l.capacity {
		return nil
	}
	it := &Item{
		label: strings.Clone(label),
		child: child,
	}
	child.parent = l
	setDepth(child, l.depth+1)
	l.items = append(l.items, it)
	return it
}

func setDepth(l *Level, depth int) {
	l.depth = depth
	for _, it := range l.items {
		if it.child != nil {
			setDepth(it.child, depth+1)
		}
	}
}

// NumItems returns the number of items added so far.
func (l *Level) NumItems() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Item returns the item at index i in display order, or nil.
func (l *Level) Item(i int) *Item {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Depth returns 1 for a root level and parent depth + 1 otherwise.
func (l *Level) Depth() int {
	if l == nil {
		return 0
	}
	return l.depth
}

// Parent returns the level this one was attached under, nil for a root.
func (l *Level) Parent() *Level {
	if l == nil {
		return nil
	}
	return l.parent
}

// DestroyHierarchy tears down a whole level tree in post-order: for every
// item, the label is released, child levels are destroyed first, then
// eachItem runs (release your action data there), and finally the item is
// severed from the tree. Levels are poisoned afterwards so further Add
// calls fail. No-op on a nil root. There is no way to destroy a single
// level independent of its subtree.
func DestroyHierarchy(root *Level, eachItem EachItemFunc, context any) {
	if root == nil {
		return
	}
	for _, it := range root.items {
		it.label = ""
		if it.child != nil {
			DestroyHierarchy(it.child, eachItem, context)
		}
		if eachItem != nil {
			eachItem(it, context)
		}
		it.child = nil
		it.perform = nil
		it.actionData = nil
	}
	root.items = nil
	root.parent = nil
	root.capacity = 0
}
