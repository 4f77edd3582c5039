package port

import (
	"context"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// ChangeKind names a structural change of the pane tree.
type ChangeKind string

const (
	ChangeSplit        ChangeKind = "split"
	ChangeClosed       ChangeKind = "closed"
	ChangeRootReplaced ChangeKind = "root_replaced"
	ChangeSelection    ChangeKind = "selection"
	ChangeResized      ChangeKind = "resized"
)

// StructuralChange is emitted once per successful tree operation so a
// rendering layer can resynchronize.
type StructuralChange struct {
	Kind    ChangeKind
	NodeIDs []entity.NodeID
}

// ChangeNotifier receives structural change events.
type ChangeNotifier interface {
	Notify(ctx context.Context, change StructuralChange)
}
