package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaversoft/snapwatch/domain"
)

func TestOwnershipCachePutAndGet(t *testing.T) {
	c := NewOwnershipCache(time.Minute)

	_, ok := c.Get("prod", "demo", "web-abc123")
	assert.False(t, ok)

	chain := domain.OwnershipChain{ReplicaSetName: "web-abc123", DeploymentName: "web"}
	c.Put("prod", "demo", "web-abc123", chain)

	got, ok := c.Get("prod", "demo", "web-abc123")
	require.True(t, ok)
	assert.Equal(t, chain, got)
}

func TestOwnershipCacheKeyedByCluster(t *testing.T) {
	c := NewOwnershipCache(time.Minute)

	c.Put("prod", "demo", "web-abc123", domain.OwnershipChain{DeploymentName: "web"})

	_, ok := c.Get("staging", "demo", "web-abc123")
	assert.False(t, ok)
}

func TestOwnershipCacheExpires(t *testing.T) {
	c := NewOwnershipCache(50 * time.Millisecond)

	c.Put("prod", "demo", "web-abc123", domain.OwnershipChain{DeploymentName: "web"})
	time.Sleep(80 * time.Millisecond)

	_, ok := c.Get("prod", "demo", "web-abc123")
	assert.False(t, ok)
}

func TestOwnershipCacheStoresEmptyChain(t *testing.T) {
	c := NewOwnershipCache(time.Minute)

	// A pod with no deployment behind it still resolves, to an empty chain,
	// and that answer is worth caching too.
	c.Put("prod", "demo", "web-abc123", domain.OwnershipChain{})

	got, ok := c.Get("prod", "demo", "web-abc123")
	require.True(t, ok)
	assert.True(t, got.Empty())
}
