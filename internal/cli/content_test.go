package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/splitpane/internal/application/port"
)

func TestLastPaneGuard(t *testing.T) {
	ctx := context.Background()

	guard := NewLastPaneGuard(true)
	assert.True(t, guard.NeedsConfirmation())
	assert.False(t, guard.ConfirmCloseLastPane(ctx, nil))

	guard.Override(true)
	assert.False(t, guard.NeedsConfirmation())
	assert.True(t, guard.ConfirmCloseLastPane(ctx, nil))
	assert.False(t, guard.ConfirmCloseLastPane(ctx, nil), "override is consumed")

	guard.SetConfirm(false)
	assert.True(t, guard.ConfirmCloseLastPane(ctx, nil))
}

func TestKeyContent(t *testing.T) {
	_, ok := KeyContent{}.RequestContent(context.Background(), port.ContentRequest{Purpose: port.PurposeSplitPane})
	assert.False(t, ok)

	got, ok := KeyContent{Key: "shell"}.RequestContent(context.Background(), port.ContentRequest{})
	assert.True(t, ok)
	assert.Equal(t, ContentLabel("shell"), got.Handle)
	assert.Equal(t, "shell", got.Key)
}

func TestResolveContent(t *testing.T) {
	assert.Nil(t, ResolveContent("", nil))
	assert.Equal(t, ContentLabel("logs"), ResolveContent("logs", nil))
}
