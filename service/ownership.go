package service

import (
	"context"
	"fmt"

	"github.com/weaversoft/snapwatch/cache"
	"github.com/weaversoft/snapwatch/domain"
)

// ownershipResolver walks Pod -> ReplicaSet -> Deployment, exactly two hops.
// Chains are cached per ReplicaSet because every pod of the same ReplicaSet
// shares its ancestry.
type ownershipResolver struct {
	source      domain.EventSource
	chains      *cache.OwnershipCache
	clusterName string
}

func NewOwnershipResolver(source domain.EventSource, chains *cache.OwnershipCache, clusterName string) domain.OwnershipResolver {
	return &ownershipResolver{
		source:      source,
		chains:      chains,
		clusterName: clusterName,
	}
}

func (r *ownershipResolver) Resolve(ctx context.Context, event *domain.ObservedPodEvent) (domain.OwnershipChain, error) {
	rsRef, ok := event.ReplicaSetOwner()
	if !ok {
		// Bare pods and pods owned by other controllers have no deployment
		// ancestry to resolve.
		return domain.OwnershipChain{}, nil
	}

	if chain, ok := r.chains.Get(r.clusterName, event.Namespace, rsRef.Name); ok {
		return chain, nil
	}

	owners, err := r.source.GetReplicaSetOwners(ctx, event.Namespace, rsRef.Name)
	if err != nil {
		return domain.OwnershipChain{}, fmt.Errorf("look up owners of replicaset %s/%s: %w", event.Namespace, rsRef.Name, err)
	}

	chain := domain.OwnershipChain{ReplicaSetName: rsRef.Name}
	for _, ref := range owners {
		if ref.Kind != domain.OwnerDeployment {
			continue
		}
		found, err := r.source.GetDeployment(ctx, event.Namespace, ref.Name)
		if err != nil {
			return domain.OwnershipChain{}, fmt.Errorf("look up deployment %s/%s: %w", event.Namespace, ref.Name, err)
		}
		if found {
			chain.DeploymentName = ref.Name
		}
		break
	}

	// Negative results are cached too, so a pod fleet without a deployment
	// ancestor does not hammer the API server on every event.
	r.chains.Put(r.clusterName, event.Namespace, rsRef.Name, chain)
	return chain, nil
}
