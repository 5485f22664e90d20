// ABOUTME: Error taxonomy for the bridge operation surface.
// ABOUTME: Every failure is reported to the caller; nothing is fatal or retried here.
package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateRange means a request's end instant precedes its
	// start instant. Zero-duration ranges are valid.
	ErrInvalidDateRange = errors.New("invalid date range: end is before start")

	// ErrAuthorizationPromptInFlight means a permission prompt is
	// already pending. Concurrent requests are rejected, not queued.
	ErrAuthorizationPromptInFlight = errors.New("an authorization prompt is already in flight")

	// ErrNoActiveUIContext means the platform had no foreground UI to
	// attach the permission prompt to.
	ErrNoActiveUIContext = errors.New("no active UI context to present the permission prompt")
)

// PlatformUnavailableError means the native health store cannot be
// used on this platform.
type PlatformUnavailableError struct {
	Reason string
}

func (e *PlatformUnavailableError) Error() string {
	return fmt.Sprintf("platform unavailable: %s", e.Reason)
}

// NativeOperationError wraps a failure raised by the native store
// during an async operation. The original cause is preserved for
// errors.Is/As; no retry is attempted at this layer.
type NativeOperationError struct {
	Op  string
	Err error
}

func (e *NativeOperationError) Error() string {
	return fmt.Sprintf("native %s failed: %v", e.Op, e.Err)
}

func (e *NativeOperationError) Unwrap() error {
	return e.Err
}
