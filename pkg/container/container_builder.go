package container

import (
	"fmt"
	"sync"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

type ContainerType string

const (
	ContainerTypeMongoDB ContainerType = "mongodb"
)

type ContainerInfo struct {
	Name string
	Type ContainerType
}

// ContainerBuilder wraps a dockertest pool and remembers every container it
// started or attached to, so a test suite can prune them all in one call.
type ContainerBuilder struct {
	pool *dockertest.Pool

	mu         sync.Mutex
	containers map[string]ContainerInfo
}

// NewContainerBuilder connects to the local docker daemon. An empty endpoint
// uses the environment defaults (DOCKER_HOST or the default socket).
func NewContainerBuilder(endpoint string) (*ContainerBuilder, error) {
	pool, err := dockertest.NewPool(endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker daemon: %w", err)
	}
	return &ContainerBuilder{
		pool:       pool,
		containers: make(map[string]ContainerInfo),
	}, nil
}

// FindContainer returns the container with the given name if one exists,
// running or not. A nil result means no such container.
func (b *ContainerBuilder) FindContainer(name string) (*docker.APIContainers, error) {
	containers, err := b.pool.Client.ListContainers(docker.ListContainersOptions{
		All:     true,
		Filters: map[string][]string{"name": {name}},
	})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	for i := range containers {
		for _, containerName := range containers[i].Names {
			if containerName == "/"+name || containerName == name {
				return &containers[i], nil
			}
		}
	}
	return nil, nil
}

func (b *ContainerBuilder) AddContainer(id string, info ContainerInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.containers[id] = info
}

func (b *ContainerBuilder) RunWithOptions(opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	resource, err := b.pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("run container %s: %w", opts.Name, err)
	}
	return resource, nil
}

// Retry polls the given probe until it succeeds or the pool deadline passes.
func (b *ContainerBuilder) Retry(op func() error) error {
	return b.pool.Retry(op)
}

// PruneAll force-removes every container this builder knows about.
func (b *ContainerBuilder) PruneAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id := range b.containers {
		err := b.pool.Client.RemoveContainer(docker.RemoveContainerOptions{
			ID:            id,
			Force:         true,
			RemoveVolumes: true,
		})
		if err != nil {
			return fmt.Errorf("remove container %s: %w", id, err)
		}
		delete(b.containers, id)
	}
	return nil
}
