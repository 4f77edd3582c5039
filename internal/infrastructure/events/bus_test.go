package events

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(func(_ context.Context, c port.StructuralChange) { got = append(got, "first:"+string(c.Kind)) })
	bus.Subscribe(func(_ context.Context, c port.StructuralChange) { got = append(got, "second:"+string(c.Kind)) })

	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeSplit, NodeIDs: []entity.NodeID{"a"}})

	assert.Equal(t, []string{"first:split", "second:split"}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(context.Context, port.StructuralChange) { calls++ })

	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeClosed})
	unsubscribe()
	unsubscribe()
	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeClosed})

	assert.Equal(t, 1, calls)
	assert.Zero(t, bus.Len())
}

func TestBus_ListenerMayUnsubscribeItself(t *testing.T) {
	bus := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(func(context.Context, port.StructuralChange) {
		calls++
		unsubscribe()
	})
	other := 0
	bus.Subscribe(func(context.Context, port.StructuralChange) { other++ })

	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeResized})
	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeResized})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestBus_ConcurrentNotify(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(func(context.Context, port.StructuralChange) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeSelection})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, count)
}

func TestChannel_DropsWhenFull(t *testing.T) {
	ch := make(chan port.StructuralChange, 1)
	bus := NewBus()
	bus.Subscribe(Channel(ch))

	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeSplit})
	bus.Notify(context.Background(), port.StructuralChange{Kind: port.ChangeClosed})

	require.Len(t, ch, 1)
	assert.Equal(t, port.ChangeSplit, (<-ch).Kind)
}
