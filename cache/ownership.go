package cache

import (
	"strings"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/weaversoft/snapwatch/domain"
)

// DefaultOwnershipTTL bounds how long a resolved ownership chain is reused
// before the ReplicaSet is looked up again.
const DefaultOwnershipTTL = 5 * time.Minute

// OwnershipCache caches resolved ownership chains keyed by ReplicaSet, since
// every pod of the same ReplicaSet shares one chain. Entries expire so a
// redeployed ReplicaSet does not serve a stale deployment name forever.
type OwnershipCache struct {
	chains *cache.Cache[string, domain.OwnershipChain]
	ttl    time.Duration
}

func NewOwnershipCache(ttl time.Duration) *OwnershipCache {
	if ttl <= 0 {
		ttl = DefaultOwnershipTTL
	}
	return &OwnershipCache{
		chains: cache.New[string, domain.OwnershipChain](),
		ttl:    ttl,
	}
}

func (c *OwnershipCache) Get(clusterName, namespace, replicaSet string) (domain.OwnershipChain, bool) {
	return c.chains.Get(chainKey(clusterName, namespace, replicaSet))
}

func (c *OwnershipCache) Put(clusterName, namespace, replicaSet string, chain domain.OwnershipChain) {
	c.chains.Set(chainKey(clusterName, namespace, replicaSet), chain, cache.WithExpiration(c.ttl))
}

func chainKey(clusterName, namespace, replicaSet string) string {
	return strings.Join([]string{clusterName, namespace, replicaSet}, "/")
}
