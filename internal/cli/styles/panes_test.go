package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/domain/entity"
)

func twoPaneTree(t *testing.T) *entity.PaneTree {
	t.Helper()
	ratio := 0.5
	doc := &entity.LayoutDocument{
		Version: entity.LayoutVersion,
		Root: &entity.DocumentNode{
			ID:          "root",
			Type:        entity.DocumentContainer,
			Orientation: entity.OrientationVertical,
			SplitRatio:  &ratio,
			FirstChild:  &entity.DocumentNode{ID: "left", Type: entity.DocumentPane, ContentKey: "editor"},
			SecondChild: &entity.DocumentNode{ID: "right", Type: entity.DocumentPane},
		},
	}
	tree, err := entity.TreeFromDocument(doc, entity.RebuildOptions{
		Resolver: func(key string, _ map[string]string) entity.ContentHandle {
			if key == "" {
				return nil
			}
			return key
		},
		CanSplit:         true,
		PlaceholderLabel: "nothing",
	})
	require.NoError(t, err)
	return tree
}

func TestRenderPanes(t *testing.T) {
	theme := NewTheme()

	out := theme.RenderPanes(twoPaneTree(t), 40, 6)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "● left", "selected pane is marked")
	assert.Contains(t, lines[1], "right")
	assert.Contains(t, lines[2], "editor")
	assert.Contains(t, lines[2], "nothing")
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
}

func TestRenderPanes_CloseMarkers(t *testing.T) {
	theme := NewTheme()
	assert.NotContains(t, theme.RenderPanes(twoPaneTree(t), 40, 6), "✕")

	theme.CloseMarkers = true
	top := strings.Split(theme.RenderPanes(twoPaneTree(t), 40, 6), "\n")[0]
	assert.Equal(t, 2, strings.Count(top, "✕"), "one mark per pane")
}

func TestRenderPanes_Empty(t *testing.T) {
	theme := NewTheme()

	assert.Contains(t, theme.RenderPanes(entity.NewPaneTree(nil), 40, 10), "empty layout")
	assert.Contains(t, theme.RenderPanes(twoPaneTree(t), 1, 1), "empty layout")
}

func TestRenderOutline(t *testing.T) {
	out := NewTheme().RenderOutline(twoPaneTree(t))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "container root")
	assert.Contains(t, lines[0], "vertical 0.50")
	assert.Contains(t, lines[1], "├─ pane left")
	assert.Contains(t, lines[1], "●")
	assert.Contains(t, lines[2], "└─ pane right")
	assert.Contains(t, lines[2], "nothing")
}

func TestPaneTitle(t *testing.T) {
	leaf := entity.NewLeaf("a", entity.Placeholder{Key: "shell", Label: "gone"})
	title, placeholder := PaneTitle(leaf)
	assert.True(t, placeholder)
	assert.Equal(t, "gone (shell)", title)

	leaf = entity.NewLeaf("b", "handle")
	leaf.ContentKey = "editor"
	title, placeholder = PaneTitle(leaf)
	assert.False(t, placeholder)
	assert.Equal(t, "editor", title)
}

func TestConfirmModel(t *testing.T) {
	m := NewConfirm(NewTheme(), "Close the last pane?", "")
	assert.False(t, m.Done())

	m, _ = m.Update(keyMsg("y"))
	assert.True(t, m.Done())
	assert.True(t, m.Result())

	m = NewConfirm(NewTheme(), "Close the last pane?", "")
	m, _ = m.Update(keyMsg("esc"))
	assert.True(t, m.Done())
	assert.False(t, m.Result())
}
