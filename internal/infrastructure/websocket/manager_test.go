package websocket

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A client whose feeder is mid-send when the peer disconnects must shut down
// cleanly: the manager only cancels the stream context, and the feeder stays
// the sole closer of Send.
func TestUnregisterWhileFeederActive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	for i := 0; i < 100; i++ {
		client, streamCtx := m.NewClient(ctx, "company-1", "my-properties", nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(client.Send)
			for {
				select {
				case client.Send <- []byte(`{"seq":1}`):
				case <-streamCtx.Done():
					return
				}
			}
		}()

		drained := make(chan struct{})
		go func() {
			defer close(drained)
			for range client.Send {
			}
		}()

		m.Unregister <- client
		wg.Wait()
		<-drained

		require.Error(t, streamCtx.Err())
	}
}

func TestUnregisterUnknownClientIsHarmless(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client, streamCtx := m.NewClient(ctx, "admin-1", "review-queue", nil)

	m.Unregister <- client
	m.Unregister <- client

	assert.Error(t, streamCtx.Err())
}

func TestShutdownCancelsAllClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	m := NewManager()
	m.Start(ctx)

	_, firstCtx := m.NewClient(context.Background(), "company-1", "my-properties", nil)
	_, secondCtx := m.NewClient(context.Background(), "customer-1", "favorites", nil)

	cancel()

	<-firstCtx.Done()
	<-secondCtx.Done()
	assert.Error(t, firstCtx.Err())
	assert.Error(t, secondCtx.Err())
}
