package live

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

func receiveSnapshot(t *testing.T, sub *Subscription) Snapshot {
	t.Helper()

	select {
	case snap, ok := <-sub.C:
		require.True(t, ok, "subscription channel closed unexpectedly")
		return snap
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}

func TestHub_SubscribeReceivesInitialSnapshot(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.Register(CollectionQuotes, func(ctx context.Context) (interface{}, error) {
		return []string{"a", "b"}, nil
	})

	sub, ok := hub.Subscribe(CollectionQuotes)
	require.True(t, ok)
	defer sub.Unsubscribe()

	snap := receiveSnapshot(t, sub)
	assert.Equal(t, CollectionQuotes, snap.Collection)
	assert.Equal(t, []string{"a", "b"}, snap.Data)
}

func TestHub_NotifyBroadcastsFullSnapshot(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	var version atomic.Int64
	hub.Register(CollectionPortfolio, func(ctx context.Context) (interface{}, error) {
		return version.Load(), nil
	})

	sub, ok := hub.Subscribe(CollectionPortfolio)
	require.True(t, ok)
	defer sub.Unsubscribe()

	first := receiveSnapshot(t, sub)

	version.Store(1)
	hub.Notify(CollectionPortfolio)

	second := receiveSnapshot(t, sub)
	assert.Equal(t, int64(1), second.Data)
	assert.Greater(t, second.Seq, first.Seq, "sequence must increase per broadcast")
}

func TestHub_FetchErrorKeepsLastSnapshot(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	var fail atomic.Bool
	hub.Register(CollectionClients, func(ctx context.Context) (interface{}, error) {
		if fail.Load() {
			return nil, errors.New("permission denied")
		}
		return "good", nil
	})

	sub, ok := hub.Subscribe(CollectionClients)
	require.True(t, ok)
	defer sub.Unsubscribe()

	receiveSnapshot(t, sub)

	fail.Store(true)
	hub.Notify(CollectionClients)

	// The failed refresh must not broadcast anything; the last good
	// snapshot stays served to new subscribers.
	select {
	case snap := <-sub.C:
		t.Fatalf("unexpected snapshot after failed refresh: %+v", snap)
	case <-time.After(100 * time.Millisecond):
	}

	last, found := hub.Latest(CollectionClients)
	require.True(t, found)
	assert.Equal(t, "good", last.Data)
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.Register(CollectionSiteImages, func(ctx context.Context) (interface{}, error) {
		return "snapshot", nil
	})

	sub, ok := hub.Subscribe(CollectionSiteImages)
	require.True(t, ok)

	receiveSnapshot(t, sub)
	sub.Unsubscribe()

	// Channel closes on unsubscribe; double-unsubscribe must not panic.
	_, open := <-sub.C
	assert.False(t, open)
	sub.Unsubscribe()
}

func TestHub_SubscribeUnknownCollection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	_, ok := hub.Subscribe(Collection("missing"))
	assert.False(t, ok)

	_, found := hub.Latest(Collection("missing"))
	assert.False(t, found)
}

func TestHub_IndependentSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.Register(CollectionQuotes, func(ctx context.Context) (interface{}, error) {
		return "data", nil
	})

	first, ok := hub.Subscribe(CollectionQuotes)
	require.True(t, ok)
	second, ok := hub.Subscribe(CollectionQuotes)
	require.True(t, ok)

	receiveSnapshot(t, first)
	receiveSnapshot(t, second)

	first.Unsubscribe()
	hub.Notify(CollectionQuotes)

	// The remaining subscriber still receives broadcasts.
	snap := receiveSnapshot(t, second)
	assert.Equal(t, "data", snap.Data)
	second.Unsubscribe()
}
