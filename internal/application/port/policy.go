package port

import (
	"context"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// LastPanePolicy is asked before the sole remaining pane is closed.
// Returning false aborts the close without touching the tree.
type LastPanePolicy interface {
	ConfirmCloseLastPane(ctx context.Context, leaf *entity.PaneNode) bool
}

// SplitModeSource exposes the process-wide split-mode state.
// New panes inherit SplitModeEnabled as their split permission.
type SplitModeSource interface {
	SplitModeEnabled() bool
}
