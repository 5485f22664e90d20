// ABOUTME: Store port abstracting the platform health store.
// ABOUTME: Defines the contract adapters (devstore, memstore, unavailable) implement.
package native

import (
	"context"
	"errors"
)

// Sentinel errors surfaced by Store implementations.
var (
	// ErrNoUIContext means a permission prompt was requested but the
	// platform has no foreground UI to attach it to.
	ErrNoUIContext = errors.New("no active UI context for permission prompt")

	// ErrPromptCancelled means the user dismissed the permission prompt
	// before it resolved.
	ErrPromptCancelled = errors.New("permission prompt cancelled")
)

// UnavailableError means the platform health store cannot serve any
// operation, with the platform's reason why.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return "health store unavailable: " + e.Reason
}

// Store is the port to a native health store. Implementations own
// persistence and OS-level authorization semantics; this layer only
// translates.
//
// All calls are single-shot: one logical unit of work completing via
// one return. No retries, timeouts, or cancellation are layered on top
// of what the passed context provides.
type Store interface {
	// Platform names the backing platform ("healthconnect", "healthkit", ...).
	Platform() string

	// Available reports whether the store can be used, with a
	// human-readable reason when it cannot.
	Available(ctx context.Context) (bool, string)

	// GrantedPermissions returns the live set of granted permission
	// tokens. Tokens absent from the map are not granted.
	GrantedPermissions(ctx context.Context) (map[string]bool, error)

	// RequestPermissions launches the platform permission prompt for
	// the given tokens and blocks until it resolves. The resulting
	// grant set must be re-queried via GrantedPermissions; the nil
	// return here only means the prompt completed.
	RequestPermissions(ctx context.Context, tokens []string) error

	// ReadRecords fetches one page of records. A non-empty
	// NextPageToken on the result means more pages remain.
	ReadRecords(ctx context.Context, q RecordQuery) (*RecordPage, error)

	// InsertRecord stores one record.
	InsertRecord(ctx context.Context, rec *Record) error

	// Close releases any resources held by the adapter.
	Close() error
}
