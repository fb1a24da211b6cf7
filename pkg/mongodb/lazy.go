package mongodb

import (
	"context"
	"sync"
)

// Lazy holds the process-wide MongoDB client. It is constructed explicitly at
// startup, connects on the first Get and hands the same client to every later
// caller. A failed connect is not remembered, so the next Get tries again.
type Lazy struct {
	config  Config
	connect func(context.Context, Config) (*Client, error)

	mu     sync.Mutex
	client *Client
}

// NewLazy returns a holder that has not connected yet.
func NewLazy(config Config) *Lazy {
	return &Lazy{config: config, connect: NewClient}
}

// Get returns the shared client, connecting first if needed.
func (l *Lazy) Get(ctx context.Context) (*Client, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client != nil {
		return l.client, nil
	}

	client, err := l.connect(ctx, l.config)
	if err != nil {
		return nil, err
	}
	l.client = client
	return client, nil
}

// Ping connects if necessary and pings the primary.
func (l *Lazy) Ping(ctx context.Context) error {
	client, err := l.Get(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx)
}

// Close disconnects the shared client if one was ever created.
func (l *Lazy) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client == nil {
		return nil
	}
	err := l.client.Disconnect(ctx)
	l.client = nil
	return err
}
