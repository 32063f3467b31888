package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/pkg/logger"
)

func NewHookDispatcher(hookConfig config.HookConfig) domain.TriggerDispatcher {
	return &HookDispatcher{
		Client: &http.Client{
			Timeout: hookConfig.Timeout(),
		},
		endpoint: hookConfig.Endpoint,
	}
}

// HookDispatcher posts checkpoint triggers to the snapshot hook endpoint.
// Each trigger gets exactly one attempt; whether a failed pod is tried again
// is decided upstream, by the dedup rules, not here.
type HookDispatcher struct {
	*http.Client

	endpoint string
}

func (d *HookDispatcher) Dispatch(ctx context.Context, req *domain.TriggerRequest) *domain.TriggerResult {
	result := &domain.TriggerResult{
		DispatchedAt: time.Now(),
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	logger.Logger(ctx).Debug().Msgf("Dispatching trigger for pod %s/%s to %s", req.Namespace, req.PodName, d.endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		result.Error = err.Error()
		return result
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := d.Client.Do(httpReq)
	result.Latency = time.Since(start)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	result.StatusCode = resp.StatusCode
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		result.Error = fmt.Sprintf("hook returned non-OK status: %s", resp.Status)
		return result
	}

	result.Success = true
	return result
}
