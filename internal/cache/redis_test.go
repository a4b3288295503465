package cache

import (
	"context"
	"testing"

	"trivia-api/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_MissingAddress(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})
	assert.ErrorIs(t, err, ErrNoAddress)
	assert.Nil(t, client)
}

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.RedisConfig{Address: "cache:6379", Password: "secret", DB: 2})

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, dialTimeout, opts.DialTimeout)
	assert.Equal(t, ioTimeout, opts.ReadTimeout)
}
