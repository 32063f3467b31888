package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("watcher name already exists")
	ErrWatcherNotFound = errors.New("watcher not found")
	ErrWatcherActive   = errors.New("watcher is active")
	ErrInvalidScope    = errors.New("invalid watch scope")
	ErrNilQueryInput   = errors.New("query options is nil")
	ErrNoKubeConfig    = errors.New("kubernetes configuration not provided")
	ErrNoClient        = errors.New("kubernetes client is not initialized")
)

// ConfigurationError marks a failure that no amount of retrying will fix,
// such as a bad kubeconfig, an unknown namespace, or a rejected credential.
// A watch loop that hits one stops retrying and parks the watcher in the
// error state.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(reason string, err error) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Err: err}
}

// ConnectivityError marks a transient failure talking to the cluster. The
// watch loop treats it as retryable and reconnects with backoff.
type ConnectivityError struct {
	Reason string
	Err    error
}

func (e *ConnectivityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connectivity error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("connectivity error: %s", e.Reason)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

func NewConnectivityError(reason string, err error) *ConnectivityError {
	return &ConnectivityError{Reason: reason, Err: err}
}

// IsConfigurationError reports whether any error in err's chain is a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsConnectivityError reports whether any error in err's chain is a
// ConnectivityError.
func IsConnectivityError(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}
