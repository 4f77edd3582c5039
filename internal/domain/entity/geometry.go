package entity

// Rect is an integer rectangle in cells or pixels.
type Rect struct {
	X, Y int // Top-left position relative to the workspace
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SplitRect divides r the way a branch divides its space.
// Vertical splits are side by side, horizontal ones stacked.
func SplitRect(r Rect, vertical bool, ratio float64) (first, second Rect) {
	ratio = ClampRatio(ratio)
	if vertical {
		w := int(float64(r.W)*ratio + 0.5)
		return Rect{X: r.X, Y: r.Y, W: w, H: r.H},
			Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	}
	h := int(float64(r.H)*ratio + 0.5)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h},
		Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// ComputeRects assigns a rectangle to every node of the tree.
func ComputeRects(tree *PaneTree, area Rect) map[NodeID]Rect {
	rects := make(map[NodeID]Rect)
	if tree == nil {
		return rects
	}
	computeRects(tree.Root(), area, rects)
	return rects
}

func computeRects(node *PaneNode, area Rect, rects map[NodeID]Rect) {
	if node == nil {
		return
	}
	rects[node.ID] = area
	if node.Kind != KindBranch {
		return
	}
	first, second := SplitRect(area, node.IsVerticalSplit, node.SplitRatio)
	computeRects(node.First, first, rects)
	computeRects(node.Second, second, rects)
}
