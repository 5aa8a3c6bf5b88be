package actionmenu_test

import (
	"testing"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
)

func noopAction(menu *actionmenu.Menu, item *actionmenu.Item, context any) {}

func TestNewLevelCapacity(t *testing.T) {
	level := actionmenu.NewLevel(2)
	if level == nil {
		t.Fatal("NewLevel(2) returned nil")
	}

	if it := level.AddAction("first", noopAction, nil); it == nil {
		t.Fatal("first add failed")
	}
	if it := level.AddAction("second", noopAction, nil); it == nil {
		t.Fatal("second add failed")
	}
	if it := level.AddAction("third", noopAction, nil); it != nil {
		t.Error("add beyond capacity should return nil")
	}
	if got := level.NumItems(); got != 2 {
		t.Errorf("NumItems = %d, want 2", got)
	}
}

func TestNewLevelNegativeCapacity(t *testing.T) {
	if level := actionmenu.NewLevel(-1); level != nil {
		t.Error("NewLevel(-1) should return nil")
	}
}

func TestZeroCapacityLevelRejectsAdds(t *testing.T) {
	level := actionmenu.NewLevel(0)
	if level == nil {
		t.Fatal("NewLevel(0) returned nil")
	}
	if it := level.AddAction("anything", noopAction, nil); it != nil {
		t.Error("add to zero-capacity level should return nil")
	}
}

func TestAddChildLinksParentAndDepth(t *testing.T) {
	root := actionmenu.NewLevel(1)
	child := actionmenu.NewLevel(1)
	grandchild := actionmenu.NewLevel(1)

	link := root.AddChild(child, "more")
	if link == nil {
		t.Fatal("AddChild failed")
	}
	if link.IsLeaf() {
		t.Error("child link should not be a leaf")
	}
	child.AddChild(grandchild, "even more")

	if got := root.Depth(); got != 1 {
		t.Errorf("root depth = %d, want 1", got)
	}
	if got := child.Depth(); got != 2 {
		t.Errorf("child depth = %d, want 2", got)
	}
	if got := grandchild.Depth(); got != 3 {
		t.Errorf("grandchild depth = %d, want 3", got)
	}
	if child.Parent() != root {
		t.Error("child parent should be root")
	}
	if root.Parent() != nil {
		t.Error("root parent should be nil")
	}
}

func TestAddChildBottomUpPropagatesDepth(t *testing.T) {
	// Attach the deepest levels first: the depths must still come out
	// right once the partial tree is hung under the root.
	grandchild := actionmenu.NewLevel(1)
	grandchild.AddAction("deep", noopAction, nil)
	child := actionmenu.NewLevel(1)
	child.AddChild(grandchild, "deeper")

	if got := grandchild.Depth(); got != 2 {
		t.Fatalf("detached grandchild depth = %d, want 2", got)
	}

	root := actionmenu.NewLevel(1)
	root.AddChild(child, "more")

	if got := child.Depth(); got != 2 {
		t.Errorf("child depth = %d, want 2", got)
	}
	if got := grandchild.Depth(); got != 3 {
		t.Errorf("grandchild depth = %d, want 3", got)
	}
}

func TestAddChildNilArguments(t *testing.T) {
	root := actionmenu.NewLevel(1)
	if it := root.AddChild(nil, "nothing"); it != nil {
		t.Error("AddChild(nil) should return nil")
	}
	if got := root.NumItems(); got != 0 {
		t.Errorf("failed AddChild mutated level, NumItems = %d", got)
	}

	var nilLevel *actionmenu.Level
	if it := nilLevel.AddChild(actionmenu.NewLevel(1), "x"); it != nil {
		t.Error("AddChild on nil level should return nil")
	}
}

func TestNilReceiversAreSafe(t *testing.T) {
	var level *actionmenu.Level
	var item *actionmenu.Item

	level.SetDisplayMode(actionmenu.DisplayModeThin)
	if it := level.AddAction("x", noopAction, nil); it != nil {
		t.Error("AddAction on nil level should return nil")
	}
	if got := level.NumItems(); got != 0 {
		t.Errorf("nil level NumItems = %d, want 0", got)
	}
	if got := level.Depth(); got != 0 {
		t.Errorf("nil level Depth = %d, want 0", got)
	}
	if level.Item(0) != nil {
		t.Error("nil level Item should return nil")
	}

	if got := item.Label(); got != "" {
		t.Errorf("nil item Label = %q, want empty", got)
	}
	if item.ActionData() != nil {
		t.Error("nil item ActionData should return nil")
	}
	if item.IsLeaf() {
		t.Error("nil item should not be a leaf")
	}

	actionmenu.DestroyHierarchy(nil, nil, nil)
}

func TestItemAccessors(t *testing.T) {
	level := actionmenu.NewLevel(2)
	leaf := level.AddAction("send", noopAction, "payload")
	link := level.AddChild(actionmenu.NewLevel(1), "more")

	if got := leaf.Label(); got != "send" {
		t.Errorf("Label = %q, want %q", got, "send")
	}
	if got := leaf.ActionData(); got != "payload" {
		t.Errorf("ActionData = %v, want payload", got)
	}
	if !leaf.IsLeaf() {
		t.Error("action item should be a leaf")
	}
	if link.IsLeaf() {
		t.Error("child link should not be a leaf")
	}

	if level.Item(0) != leaf || level.Item(1) != link {
		t.Error("Item order should match insertion order")
	}
	if level.Item(2) != nil || level.Item(-1) != nil {
		t.Error("out-of-range Item should return nil")
	}
}

func TestDestroyHierarchyPostOrder(t *testing.T) {
	root := actionmenu.NewLevel(2)
	child := actionmenu.NewLevel(2)
	root.AddAction("a", noopAction, "a")
	root.AddChild(child, "sub")
	child.AddAction("b", noopAction, "b")
	child.AddAction("c", noopAction, "c")

	var visited []string
	actionmenu.DestroyHierarchy(root, func(item *actionmenu.Item, context any) {
		tag, _ := item.ActionData().(string)
		if tag == "" {
			tag = "sub"
		}
		visited = append(visited, tag)
		if got := context.(string); got != "ctx" {
			t.Errorf("context = %q, want ctx", got)
		}
	}, "ctx")

	// Child items are released before the item linking to them.
	want := []string{"a", "b", "c", "sub"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestDestroyHierarchyPoisonsLevels(t *testing.T) {
	root := actionmenu.NewLevel(2)
	child := actionmenu.NewLevel(1)
	root.AddChild(child, "sub")

	actionmenu.DestroyHierarchy(root, nil, nil)

	if got := root.NumItems(); got != 0 {
		t.Errorf("destroyed root still has %d items", got)
	}
	if it := root.AddAction("late", noopAction, nil); it != nil {
		t.Error("add to a destroyed level should return nil")
	}
	if it := child.AddAction("late", noopAction, nil); it != nil {
		t.Error("add to a destroyed child should return nil")
	}
}
