package entity

import "testing"

type disposableContent struct {
	disposed int
}

func (d *disposableContent) Dispose() { d.disposed++ }

func TestClampRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{name: "zero clamps to minimum", ratio: 0.0, expected: 0.1},
		{name: "one clamps to maximum", ratio: 1.0, expected: 0.9},
		{name: "negative clamps to minimum", ratio: -3, expected: 0.1},
		{name: "in range is kept", ratio: 0.3, expected: 0.3},
		{name: "lower bound is kept", ratio: 0.1, expected: 0.1},
		{name: "upper bound is kept", ratio: 0.9, expected: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRatio(tt.ratio); got != tt.expected {
				t.Errorf("ClampRatio(%v) = %v, want %v", tt.ratio, got, tt.expected)
			}
		})
	}
}

func TestNewBranch_SetsParentsAndClamps(t *testing.T) {
	a := NewLeaf("a", nil)
	b := NewLeaf("b", nil)

	branch := NewBranch("s", a, b, true, 1.5)

	if a.Parent != branch || b.Parent != branch {
		t.Fatalf("children do not point back to branch")
	}
	if branch.SplitRatio != MaxSplitRatio {
		t.Errorf("SplitRatio = %v, want %v", branch.SplitRatio, MaxSplitRatio)
	}
	if !branch.IsBranch() || branch.IsLeaf() {
		t.Errorf("branch kind not reported correctly")
	}
}

func TestPaneNode_SiblingAndFirstLeaf(t *testing.T) {
	a := NewLeaf("a", nil)
	b := NewLeaf("b", nil)
	c := NewLeaf("c", nil)
	inner := NewBranch("inner", b, c, false, 0.5)
	root := NewBranch("root", inner, a, true, 0.5)

	if a.Sibling() != inner {
		t.Errorf("a.Sibling() = %v, want inner", a.Sibling())
	}
	if c.Sibling() != b {
		t.Errorf("c.Sibling() = %v, want b", c.Sibling())
	}
	if root.Sibling() != nil {
		t.Errorf("root should have no sibling")
	}
	if got := root.FirstLeaf(); got != b {
		t.Errorf("FirstLeaf() = %s, want b", got.ID)
	}
	if got := root.LeafCount(); got != 3 {
		t.Errorf("LeafCount() = %d, want 3", got)
	}
	if got := c.Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
}

func TestPaneNode_WalkOrder(t *testing.T) {
	root := NewBranch("root",
		NewBranch("left", NewLeaf("a", nil), NewLeaf("b", nil), true, 0.5),
		NewLeaf("c", nil),
		false, 0.5,
	)

	var order []NodeID
	root.Walk(func(n *PaneNode) bool {
		order = append(order, n.ID)
		return true
	})

	want := []NodeID{"root", "left", "a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("walk visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("walk visited %v, want %v", order, want)
		}
	}
}

func TestPaneNode_DisposeOnce(t *testing.T) {
	content := &disposableContent{}
	leaf := NewLeaf("a", content)

	leaf.dispose()
	leaf.dispose()

	if content.disposed != 1 {
		t.Errorf("Dispose called %d times, want 1", content.disposed)
	}
	if !leaf.IsDisposed() {
		t.Errorf("leaf should report disposed")
	}
}
