package entity

// SelectionRepair describes what EnsureSingleSelection changed.
type SelectionRepair struct {
	Selected *PaneNode
	Cleared  []*PaneNode
	Changed  bool
}

// EnsureSingleSelection restores the single-selection rule after any
// structural change:
//   - several selected leaves: keep preferred if it is one of them, else the
//     first in enumeration order, and clear the others
//   - none selected: select preferred when it is a leaf of this tree, else
//     the first leaf
//   - exactly one: left as is
func (t *PaneTree) EnsureSingleSelection(preferred *PaneNode) SelectionRepair {
	var selected []*PaneNode
	var first *PaneNode
	for leaf := range t.Leaves() {
		if first == nil {
			first = leaf
		}
		if leaf.selected {
			selected = append(selected, leaf)
		}
	}

	switch len(selected) {
	case 0:
		if first == nil {
			return SelectionRepair{}
		}
		keep := first
		if preferred.IsLeaf() && t.Contains(preferred) {
			keep = preferred
		}
		keep.selected = true
		return SelectionRepair{Selected: keep, Changed: true}
	case 1:
		return SelectionRepair{Selected: selected[0]}
	}

	keep := selected[0]
	for _, leaf := range selected {
		if leaf == preferred {
			keep = leaf
			break
		}
	}
	repair := SelectionRepair{Selected: keep, Changed: true}
	for _, leaf := range selected {
		if leaf == keep {
			continue
		}
		leaf.selected = false
		repair.Cleared = append(repair.Cleared, leaf)
	}
	return repair
}

// Select moves the selection to leaf. It fails with ErrNotLeaf for branches
// and ErrNodeNotFound for nodes outside the tree.
func (t *PaneTree) Select(leaf *PaneNode) (SelectionRepair, error) {
	if !leaf.IsLeaf() {
		return SelectionRepair{}, ErrNotLeaf
	}
	if !t.Contains(leaf) {
		return SelectionRepair{}, ErrNodeNotFound
	}

	repair := SelectionRepair{Selected: leaf, Changed: !leaf.selected}
	for other := range t.Leaves() {
		if other != leaf && other.selected {
			other.selected = false
			repair.Cleared = append(repair.Cleared, other)
			repair.Changed = true
		}
	}
	leaf.selected = true
	return repair, nil
}

// Selected returns the selected leaf, or nil for an empty tree.
func (t *PaneTree) Selected() *PaneNode {
	for leaf := range t.Leaves() {
		if leaf.selected {
			return leaf
		}
	}
	return nil
}

// Cycle returns the leaf step positions away from the selected one in
// enumeration order, wrapping around.
func (t *PaneTree) Cycle(step int) *PaneNode {
	leaves := t.LeafSlice()
	if len(leaves) == 0 {
		return nil
	}
	current := 0
	for i, leaf := range leaves {
		if leaf.selected {
			current = i
			break
		}
	}
	next := (current + step) % len(leaves)
	if next < 0 {
		next += len(leaves)
	}
	return leaves[next]
}
