package mongodb

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_ConnectsOnceAndShares(t *testing.T) {
	calls := 0
	l := NewLazy(Config{URI: "mongodb://unused", Database: "fluxx"})
	l.connect = func(ctx context.Context, cfg Config) (*Client, error) {
		calls++
		return &Client{config: cfg}, nil
	}

	var wg sync.WaitGroup
	clients := make([]*Client, 8)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := l.Get(context.Background())
			assert.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}
}

func TestLazy_FailedConnectIsRetried(t *testing.T) {
	calls := 0
	l := NewLazy(Config{})
	l.connect = func(ctx context.Context, cfg Config) (*Client, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("server selection timeout")
		}
		return &Client{}, nil
	}

	_, err := l.Get(context.Background())
	require.Error(t, err)

	c, err := l.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, 2, calls)
}

func TestLazy_CloseWithoutConnect(t *testing.T) {
	l := NewLazy(Config{})
	assert.NoError(t, l.Close(context.Background()))
}

func TestNewClient_ValidatesConfig(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Database: "fluxx"})
	assert.ErrorContains(t, err, "URI cannot be empty")

	_, err = NewClient(context.Background(), Config{URI: "mongodb://localhost", Database: "fluxx", MinPoolSize: 20, MaxPoolSize: 5})
	assert.ErrorContains(t, err, "MinPoolSize")
}
