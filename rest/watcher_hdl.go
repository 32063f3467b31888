package rest

import (
	"errors"
	"net/http"

	"github.com/weaversoft/snapwatch/domain"
)

type ClusterConnection struct {
	APIEndpoint    string `json:"api_endpoint,omitempty"`
	CredentialsRef string `json:"credentials_ref,omitempty"`
}

type CreateWatcherRequest struct {
	Name              string             `json:"name"`
	ClusterName       string             `json:"cluster_name,omitempty"`
	ClusterConnection *ClusterConnection `json:"cluster_connection,omitempty"`
	Scope             string             `json:"scope"`
	Namespace         string             `json:"namespace,omitempty"`
	Trigger           string             `json:"trigger,omitempty"`
	AutoDeletePod     *bool              `json:"auto_delete_pod,omitempty"`
}

type WatcherStatusResponse struct {
	Watcher *domain.WatcherStatus `json:"watcher"`
}

// CreateWatcher godoc
// @Summary Create watcher
// @Description Create a named watcher and start it. A start failure leaves the watcher persisted in the error state.
// @Tags Watchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateWatcherRequest true "Watcher configuration"
// @Success 200 {object} SuccessResponse[WatcherStatusResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers [post]
func (h *Handler) CreateWatcher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateWatcherRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	watcher := &domain.WatcherConfig{
		Name:        req.Name,
		ClusterName: req.ClusterName,
		Scope:       domain.WatcherScope(req.Scope),
		Namespace:   req.Namespace,
		TriggerKind: domain.TriggerKind(req.Trigger),
		// Checkpointed pods are deleted by default so the mutated
		// replacement can be scheduled in their place.
		AutoDeletePod: true,
	}
	if req.ClusterConnection != nil {
		watcher.ClusterConnection = domain.ClusterConnection{
			APIEndpoint:    req.ClusterConnection.APIEndpoint,
			CredentialsRef: req.ClusterConnection.CredentialsRef,
		}
	}
	if req.AutoDeletePod != nil {
		watcher.AutoDeletePod = *req.AutoDeletePod
	}

	status, err := h.Svc.CreateWatcher(ctx, &claims, watcher)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	respData := WatcherStatusResponse{Watcher: status}
	response := NewSuccessResponse(&respData)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

type UpdateWatcherRequest struct {
	ClusterName       *string            `json:"cluster_name,omitempty"`
	ClusterConnection *ClusterConnection `json:"cluster_connection,omitempty"`
	Scope             *string            `json:"scope,omitempty"`
	Namespace         *string            `json:"namespace,omitempty"`
	Trigger           *string            `json:"trigger,omitempty"`
	AutoDeletePod     *bool              `json:"auto_delete_pod,omitempty"`
}

// UpdateWatcher godoc
// @Summary Update watcher
// @Description Update a stopped watcher's configuration. Active watchers must be stopped first.
// @Tags Watchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Watcher name"
// @Param request body UpdateWatcherRequest true "Fields to update"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers/{name} [put]
func (h *Handler) UpdateWatcher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateWatcherRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	opt := &domain.UpdateWatcherOptions{
		ClusterName:   req.ClusterName,
		Namespace:     req.Namespace,
		AutoDeletePod: req.AutoDeletePod,
	}
	if req.ClusterConnection != nil {
		opt.ClusterConnection = &domain.ClusterConnection{
			APIEndpoint:    req.ClusterConnection.APIEndpoint,
			CredentialsRef: req.ClusterConnection.CredentialsRef,
		}
	}
	if req.Scope != nil {
		scope := domain.WatcherScope(*req.Scope)
		opt.Scope = &scope
	}
	if req.Trigger != nil {
		trigger := domain.TriggerKind(*req.Trigger)
		opt.TriggerKind = &trigger
	}

	err = h.Svc.UpdateWatcher(ctx, &claims, h.GetPathParam(r, "name"), opt)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	response := NewSuccessResponse[EmptyResponse](nil)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

// DeleteWatcher godoc
// @Summary Delete watcher
// @Description Stop a watcher if it is running and remove its configuration and dispatch history.
// @Tags Watchers
// @Produce json
// @Security BearerAuth
// @Param name path string true "Watcher name"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers/{name} [delete]
func (h *Handler) DeleteWatcher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	err := h.Svc.DeleteWatcher(ctx, &claims, h.GetPathParam(r, "name"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	response := NewSuccessResponse[EmptyResponse](nil)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

// StartWatcher godoc
// @Summary Start watcher
// @Description Start a watcher's watch loop. Starting an already running watcher is a no-op.
// @Tags Watchers
// @Produce json
// @Security BearerAuth
// @Param name path string true "Watcher name"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers/{name}/start [post]
func (h *Handler) StartWatcher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	err := h.Svc.StartWatcher(ctx, &claims, h.GetPathParam(r, "name"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	response := NewSuccessResponse[EmptyResponse](nil)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

// StopWatcher godoc
// @Summary Stop watcher
// @Description Signal a watcher's loop to terminate and wait for it to exit. Idempotent.
// @Tags Watchers
// @Produce json
// @Security BearerAuth
// @Param name path string true "Watcher name"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers/{name}/stop [post]
func (h *Handler) StopWatcher(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := h.GetClaimsFromContext(ctx)
	if !ok {
		h.ErrorResponse(ctx, w, http.StatusUnauthorized, "Unauthorized", errors.New("claims not found"))
		return
	}

	err := h.Svc.StopWatcher(ctx, &claims, h.GetPathParam(r, "name"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	response := NewSuccessResponse[EmptyResponse](nil)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

// GetWatcherStatus godoc
// @Summary Get watcher status
// @Description Return the runtime status snapshot of one watcher.
// @Tags Watchers
// @Produce json
// @Param name path string true "Watcher name"
// @Success 200 {object} SuccessResponse[WatcherStatusResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers/{name} [get]
func (h *Handler) GetWatcherStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status, err := h.Svc.GetWatcherStatus(ctx, h.GetPathParam(r, "name"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	respData := WatcherStatusResponse{Watcher: status}
	response := NewSuccessResponse(&respData)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}

type ListWatchersResponse struct {
	Watchers []*domain.WatcherStatus `json:"watchers"`
}

// ListWatcherStatuses godoc
// @Summary List watcher statuses
// @Description Return the runtime status snapshots of every watcher, sorted by name.
// @Tags Watchers
// @Produce json
// @Success 200 {object} SuccessResponse[ListWatchersResponse]
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/watchers [get]
func (h *Handler) ListWatcherStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	statuses, err := h.Svc.ListWatcherStatuses(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	respData := ListWatchersResponse{Watchers: statuses}
	response := NewSuccessResponse(&respData)
	h.JSONResponse(ctx, w, http.StatusOK, response)
}
