package supabase

import (
	"sync"

	"github.com/supabase-community/supabase-go"
)

// RealtimeClient fans change events for a collection out to registered
// listeners. Events arrive from Supabase database webhooks (the Go
// client has no realtime subscription support); listeners only learn
// that something changed and are expected to re-fetch.
type RealtimeClient struct {
	client *supabase.Client

	mu        sync.Mutex
	listeners map[string][]func()
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client:    client,
		listeners: make(map[string][]func()),
	}
}

// Subscribe registers fn to run on every change event for collection.
func (r *RealtimeClient) Subscribe(collection string, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners[collection] = append(r.listeners[collection], fn)
}

// Dispatch delivers a change event for collection to all listeners.
func (r *RealtimeClient) Dispatch(collection string) {
	r.mu.Lock()
	fns := append([]func(){}, r.listeners[collection]...)
	r.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
