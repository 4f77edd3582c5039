package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// RenderOutline renders the tree as an indented outline, one node per line.
//
//	container root  vertical 0.50
//	├─ pane a  editor  ●
//	└─ container inner  horizontal 0.30
//	   ├─ pane b  empty pane
//	   └─ pane c  logs
func (t *Theme) RenderOutline(tree *entity.PaneTree) string {
	if tree == nil || tree.IsEmpty() {
		return t.Subtle.Render("(empty layout)")
	}
	var b strings.Builder
	t.outlineNode(&b, tree.Root(), "", "")
	return strings.TrimRight(b.String(), "\n")
}

func (t *Theme) outlineNode(b *strings.Builder, node *entity.PaneNode, prefix, childPrefix string) {
	b.WriteString(t.Subtle.Render(prefix))

	if node.IsBranch() {
		orientation := "horizontal"
		if node.IsVerticalSplit {
			orientation = "vertical"
		}
		fmt.Fprintf(b, "%s %s  %s\n",
			t.Subtitle.Render("container"),
			node.ID,
			t.Subtle.Render(fmt.Sprintf("%s %.2f", orientation, node.SplitRatio)),
		)
		t.outlineNode(b, node.First, childPrefix+"├─ ", childPrefix+"│  ")
		t.outlineNode(b, node.Second, childPrefix+"└─ ", childPrefix+"   ")
		return
	}

	title, placeholder := PaneTitle(node)
	titleStyle := t.Normal
	if placeholder {
		titleStyle = t.PanePlaceholder
	}
	line := fmt.Sprintf("%s %s  %s", t.Title.Render("pane"), node.ID, titleStyle.Render(title))
	if !node.CanSplit {
		line += "  " + t.MutedBadge("locked")
	}
	if node.IsSelected() {
		line += "  " + t.Highlight.Render("●")
	}
	b.WriteString(line + "\n")
}
