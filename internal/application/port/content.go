package port

import (
	"context"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// ContentPurpose tells the content provider why a pane needs content.
type ContentPurpose int

const (
	PurposeInitialPane ContentPurpose = iota // First pane of an empty tree
	PurposeSplitPane                         // New sibling created by a split
)

// String returns the log name of the purpose.
func (p ContentPurpose) String() string {
	switch p {
	case PurposeInitialPane:
		return "initial_pane"
	case PurposeSplitPane:
		return "split_pane"
	default:
		return "unknown"
	}
}

// ContentRequest carries the context of a content request.
type ContentRequest struct {
	Purpose  ContentPurpose
	TargetID entity.NodeID // Pane being split, empty for initial panes
	Vertical bool
}

// ProvidedContent is what the host hands back for a new pane.
type ProvidedContent struct {
	Handle     entity.ContentHandle
	Key        string
	Properties map[string]string
}

// ContentProvider produces content for new panes.
// Implemented by the host; a false return makes the caller install a placeholder.
type ContentProvider interface {
	RequestContent(ctx context.Context, req ContentRequest) (ProvidedContent, bool)
}
