package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
)

func newTriggerRequest() *domain.TriggerRequest {
	return &domain.TriggerRequest{
		PodName:        "web-1",
		Namespace:      "demo",
		NodeName:       "node-a",
		ContainerName:  "app",
		ClusterName:    "prod",
		DeploymentName: "web",
	}
}

func TestDispatchSuccess(t *testing.T) {
	var received domain.TriggerRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewHookDispatcher(config.HookConfig{Endpoint: server.URL, TimeoutSeconds: 2})

	result := dispatcher.Dispatch(context.Background(), newTriggerRequest())
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Empty(t, result.Error)
	assert.False(t, result.DispatchedAt.IsZero())

	assert.Equal(t, "web-1", received.PodName)
	assert.Equal(t, "demo", received.Namespace)
	assert.Equal(t, "node-a", received.NodeName)
	assert.Equal(t, "app", received.ContainerName)
	assert.Equal(t, "prod", received.ClusterName)
	assert.Equal(t, "web", received.DeploymentName)
}

func TestDispatchOmitsEmptyDeploymentName(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dispatcher := NewHookDispatcher(config.HookConfig{Endpoint: server.URL, TimeoutSeconds: 2})

	req := newTriggerRequest()
	req.DeploymentName = ""
	result := dispatcher.Dispatch(context.Background(), req)
	require.True(t, result.Success)

	_, present := raw["deployment_name"]
	assert.False(t, present)
}

func TestDispatchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher := NewHookDispatcher(config.HookConfig{Endpoint: server.URL, TimeoutSeconds: 2})

	result := dispatcher.Dispatch(context.Background(), newTriggerRequest())
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Contains(t, result.Error, "non-OK status")
}

func TestDispatchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	dispatcher := NewHookDispatcher(config.HookConfig{Endpoint: server.URL, TimeoutSeconds: 1})

	result := dispatcher.Dispatch(context.Background(), newTriggerRequest())
	assert.False(t, result.Success)
	assert.Zero(t, result.StatusCode)
	assert.NotEmpty(t, result.Error)
}

func TestDispatchTimesOut(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	dispatcher := NewHookDispatcher(config.HookConfig{Endpoint: server.URL, TimeoutSeconds: 1})

	start := time.Now()
	result := dispatcher.Dispatch(context.Background(), newTriggerRequest())
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDispatchHonorsContextCancel(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	dispatcher := NewHookDispatcher(config.HookConfig{Endpoint: server.URL, TimeoutSeconds: 30})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result := dispatcher.Dispatch(ctx, newTriggerRequest())
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}
