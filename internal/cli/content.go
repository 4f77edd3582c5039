package cli

import (
	"context"
	"sync"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
)

// ContentLabel is the content handle of CLI panes: the layout only records
// what a pane shows, the CLI has nothing live to attach.
type ContentLabel string

func (c ContentLabel) String() string { return string(c) }

// ResolveContent rebuilds pane content from its stored key.
// Panes without a key get a placeholder.
func ResolveContent(key string, _ map[string]string) entity.ContentHandle {
	if key == "" {
		return nil
	}
	return ContentLabel(key)
}

// KeyContent provides content for new panes. Without an explicit key the
// split installs a placeholder.
type KeyContent struct {
	Key string
}

var _ port.ContentProvider = KeyContent{}

// RequestContent implements port.ContentProvider.
func (k KeyContent) RequestContent(_ context.Context, _ port.ContentRequest) (port.ProvidedContent, bool) {
	if k.Key == "" {
		return port.ProvidedContent{}, false
	}
	return port.ProvidedContent{Handle: ContentLabel(k.Key), Key: k.Key}, true
}

// LastPaneGuard decides whether the sole pane may be closed. With
// confirmation enabled, closing it needs an explicit override.
type LastPaneGuard struct {
	mu       sync.Mutex
	confirm  bool
	override bool
}

var _ port.LastPanePolicy = (*LastPaneGuard)(nil)

// NewLastPaneGuard creates a guard. confirm mirrors workspace.confirm_last_pane_close.
func NewLastPaneGuard(confirm bool) *LastPaneGuard {
	return &LastPaneGuard{confirm: confirm}
}

// SetConfirm updates the confirmation requirement.
func (g *LastPaneGuard) SetConfirm(confirm bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.confirm = confirm
}

// Override allows the next close of the last pane. It is consumed by
// the next ConfirmCloseLastPane call.
func (g *LastPaneGuard) Override(allow bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.override = allow
}

// NeedsConfirmation reports whether closing the last pane would be refused.
func (g *LastPaneGuard) NeedsConfirmation() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.confirm && !g.override
}

// ConfirmCloseLastPane implements port.LastPanePolicy.
func (g *LastPaneGuard) ConfirmCloseLastPane(_ context.Context, _ *entity.PaneNode) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	allowed := !g.confirm || g.override
	g.override = false
	return allowed
}
