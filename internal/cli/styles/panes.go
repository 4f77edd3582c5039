package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitpane/internal/domain/entity"
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellBorder
	cellBorderSelected
	cellLabel
	cellPlaceholder
)

type canvas struct {
	width, height int
	runes         [][]rune
	kinds         [][]cellKind
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.kinds = make([][]cellKind, height)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.kinds[y] = make([]cellKind, width)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = kind
}

func (c *canvas) text(x, y, maxWidth int, s string, kind cellKind) {
	for i, r := range []rune(s) {
		if i >= maxWidth {
			return
		}
		c.set(x+i, y, r, kind)
	}
}

func (c *canvas) box(r entity.Rect, kind cellKind) {
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, '─', kind)
		c.set(x, bottom, '─', kind)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, '│', kind)
		c.set(right, y, '│', kind)
	}
	c.set(r.X, r.Y, '╭', kind)
	c.set(right, r.Y, '╮', kind)
	c.set(r.X, bottom, '╰', kind)
	c.set(right, bottom, '╯', kind)
}

// PaneTitle returns the text shown for a leaf's content.
func PaneTitle(leaf *entity.PaneNode) (title string, placeholder bool) {
	if p, ok := leaf.Content.(entity.Placeholder); ok {
		label := p.Label
		if label == "" {
			label = "empty pane"
		}
		if p.Key != "" {
			label = fmt.Sprintf("%s (%s)", label, p.Key)
		}
		return label, true
	}
	if leaf.ContentKey != "" {
		return leaf.ContentKey, false
	}
	if leaf.Content == nil {
		return "empty pane", true
	}
	return fmt.Sprint(leaf.Content), false
}

// RenderPanes draws every leaf of tree as a bordered box inside a
// width x height area, dividing space by the split ratios.
func (t *Theme) RenderPanes(tree *entity.PaneTree, width, height int) string {
	if tree == nil || tree.IsEmpty() || width < 2 || height < 2 {
		return t.Subtle.Render("(empty layout)")
	}

	c := newCanvas(width, height)
	rects := entity.ComputeRects(tree, entity.Rect{W: width, H: height})

	for leaf := range tree.Leaves() {
		r := rects[leaf.ID]
		if r.W < 2 || r.H < 2 {
			continue
		}

		border := cellBorder
		marker := ""
		if leaf.IsSelected() {
			border = cellBorderSelected
			marker = "● "
		}
		c.box(r, border)
		if t.CloseMarkers && r.W >= 6 {
			c.set(r.X+r.W-3, r.Y, '✕', border)
		}

		inner := r.W - 2
		c.text(r.X+1, r.Y+1, inner, marker+string(leaf.ID), border)

		title, placeholder := PaneTitle(leaf)
		kind := cellLabel
		if placeholder {
			kind = cellPlaceholder
		}
		if !leaf.CanSplit {
			title += " [locked]"
		}
		c.text(r.X+1, r.Y+2, inner, title, kind)
	}

	return t.renderCanvas(c)
}

func (t *Theme) renderCanvas(c *canvas) string {
	styleFor := map[cellKind]lipgloss.Style{
		cellBlank:          lipgloss.NewStyle(),
		cellBorder:         t.PaneBorder,
		cellBorderSelected: t.PaneBorderSelected,
		cellLabel:          t.PaneLabel,
		cellPlaceholder:    t.PanePlaceholder,
	}

	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			b.WriteString(styleFor[c.kinds[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
	}
	return b.String()
}
