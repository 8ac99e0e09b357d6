package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SmartOps-api/internal/application/ports"
	"github.com/jhoicas/SmartOps-api/internal/domain/entity"
)

var (
	_ ports.PrincipalCache = Nop{}
	_ ports.PrincipalCache = (*RedisPrincipalCache)(nil)
)

func TestNop_SiempreVacia(t *testing.T) {
	ctx := context.Background()
	c := Nop{}

	require.NoError(t, c.Set(ctx, entity.Principal{UserID: 1, BusinessID: 2, Role: entity.RoleOwner, IsActive: true}))
	p, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, c.Delete(ctx, 1))
}

func TestKey_IncluyePrefijo(t *testing.T) {
	assert.Equal(t, "smartops:principal:42", key(42))
}

func TestRedis_ServidorCaidoDevuelveError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisFromClient(rdb, 0)
	defer c.Close()

	_, err := c.Get(context.Background(), 7)
	assert.Error(t, err)
	assert.Equal(t, 30*time.Second, c.ttl)
}
