package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishStopsWithContext(t *testing.T) {
	changes := make(chan Config)
	loader := NewLoader(changes)

	ctx, cancel := context.WithCancel(context.Background())
	loader.ctx = ctx

	received := make(chan Config, 1)
	go func() { received <- <-changes }()

	require.True(t, loader.publish(Default()))
	require.Equal(t, Default(), <-received)

	cancel()
	require.False(t, loader.publish(Default()), "nobody is listening")
}
