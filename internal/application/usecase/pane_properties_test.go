package usecase

import (
	"testing"

	"github.com/bnema/splitpane/internal/domain/entity"
	"pgregory.net/rapid"
)

// Random split/close/select/resize sequences starting from one leaf must
// keep every structural rule after each step.
func TestPaneTree_OperationsKeepInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := testContext()
		uc := NewManagePanesUseCase(sequentialIDs("n"), PaneCollaborators{})
		tree, err := uc.NewTree(ctx)
		if err != nil {
			rt.Fatalf("new tree: %v", err)
		}

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			leaves := tree.LeafSlice()
			target := rapid.SampledFrom(leaves).Draw(rt, "target")

			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				direction := rapid.SampledFrom([]SplitDirection{SplitLeft, SplitRight, SplitUp, SplitDown}).Draw(rt, "direction")
				ratio := rapid.Float64Range(-0.5, 1.5).Draw(rt, "ratio")
				before := len(leaves)
				out, err := uc.Split(ctx, SplitPaneInput{Tree: tree, TargetID: target.ID, Direction: direction, Ratio: &ratio})
				if err != nil {
					rt.Fatalf("split %s: %v", target.ID, err)
				}
				if tree.CountLeaves() != before+1 {
					rt.Fatalf("split added %d leaves", tree.CountLeaves()-before)
				}
				if out.SplitRatio < entity.MinSplitRatio || out.SplitRatio > entity.MaxSplitRatio {
					rt.Fatalf("ratio %v not clamped", out.SplitRatio)
				}
			case 1:
				if len(leaves) == 1 {
					continue
				}
				if _, err := uc.Close(ctx, tree, target.ID); err != nil {
					rt.Fatalf("close %s: %v", target.ID, err)
				}
				if tree.Contains(target) {
					rt.Fatalf("closed leaf %s still reachable", target.ID)
				}
				if tree.CountLeaves() != len(leaves)-1 {
					rt.Fatalf("close removed %d leaves", len(leaves)-tree.CountLeaves())
				}
			case 2:
				if _, err := uc.Select(ctx, tree, target.ID); err != nil {
					rt.Fatalf("select %s: %v", target.ID, err)
				}
				if tree.Selected() != target {
					rt.Fatalf("selection did not move to %s", target.ID)
				}
			case 3:
				delta := rapid.Float64Range(-1, 1).Draw(rt, "delta")
				if _, err := uc.Resize(ctx, tree, target.ID, delta); err != nil && len(leaves) > 1 {
					rt.Fatalf("resize %s: %v", target.ID, err)
				}
			}

			if err := tree.CheckInvariants(); err != nil {
				rt.Fatalf("step %d: %v", i, err)
			}
		}
	})
}

// Serializing and rebuilding any reachable tree yields the same document.
func TestPaneTree_DocumentRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := testContext()
		uc := NewManagePanesUseCase(sequentialIDs("n"), PaneCollaborators{})
		tree, err := uc.NewTree(ctx)
		if err != nil {
			rt.Fatalf("new tree: %v", err)
		}

		splits := rapid.IntRange(0, 20).Draw(rt, "splits")
		for i := 0; i < splits; i++ {
			target := rapid.SampledFrom(tree.LeafSlice()).Draw(rt, "target")
			target.ContentKey = rapid.SampledFrom([]string{"", "editor", "terminal"}).Draw(rt, "key")
			_, err := uc.Split(ctx, SplitPaneInput{
				Tree:      tree,
				TargetID:  target.ID,
				Direction: rapid.SampledFrom([]SplitDirection{SplitRight, SplitDown}).Draw(rt, "direction"),
				Ratio:     ratioOf(rapid.Float64Range(0.1, 0.9).Draw(rt, "ratio")),
			})
			if err != nil {
				rt.Fatalf("split: %v", err)
			}
		}

		for _, leaf := range tree.LeafSlice() {
			leaf.CanSplit = rapid.Bool().Draw(rt, "canSplit")
		}
		chosen := rapid.SampledFrom(tree.LeafSlice()).Draw(rt, "selected")
		if _, err := uc.Select(ctx, tree, chosen.ID); err != nil {
			rt.Fatalf("select: %v", err)
		}

		doc := entity.DocumentFromTree(tree)
		rebuilt, err := entity.TreeFromDocument(doc, entity.RebuildOptions{})
		if err != nil {
			rt.Fatalf("rebuild: %v", err)
		}
		if err := rebuilt.CheckInvariants(); err != nil {
			rt.Fatalf("rebuilt tree: %v", err)
		}
		again := entity.DocumentFromTree(rebuilt)
		if again.PaneCount() != doc.PaneCount() {
			rt.Fatalf("pane count %d, want %d", again.PaneCount(), doc.PaneCount())
		}
		if !sameDocumentNode(doc.Root, again.Root) {
			rt.Fatalf("round trip changed the layout")
		}
		if rebuilt.Selected().ID != chosen.ID {
			rt.Fatalf("selected %s after rebuild, want %s", rebuilt.Selected().ID, chosen.ID)
		}
		for _, leaf := range tree.LeafSlice() {
			if got := rebuilt.FindByID(leaf.ID).CanSplit; got != leaf.CanSplit {
				rt.Fatalf("pane %s CanSplit %v after rebuild, want %v", leaf.ID, got, leaf.CanSplit)
			}
		}
	})
}

func sameDocumentNode(a, b *entity.DocumentNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID != b.ID || a.Type != b.Type || a.ContentKey != b.ContentKey || a.Orientation != b.Orientation {
		return false
	}
	if (a.SplitRatio == nil) != (b.SplitRatio == nil) {
		return false
	}
	if a.SplitRatio != nil && *a.SplitRatio != *b.SplitRatio {
		return false
	}
	return sameDocumentNode(a.FirstChild, b.FirstChild) && sameDocumentNode(a.SecondChild, b.SecondChild)
}
