// ABOUTME: Fallback native store for platforms without a health store.
// ABOUTME: Reports not-available and fails every operation with the platform reason.
package unavailable

import (
	"context"

	"github.com/openhealth/healthbridge/internal/native"
)

// Store is the fallback adapter used when no native health store
// exists on the current platform (the web-shell case).
type Store struct {
	platform string
	reason   string
}

// New creates a fallback store reporting the given platform and reason.
func New(platform, reason string) *Store {
	if reason == "" {
		reason = "no native health store on this platform"
	}
	return &Store{platform: platform, reason: reason}
}

func (s *Store) Platform() string { return s.platform }

func (s *Store) Available(ctx context.Context) (bool, string) {
	return false, s.reason
}

func (s *Store) err() error {
	return &native.UnavailableError{Reason: s.reason}
}

func (s *Store) GrantedPermissions(ctx context.Context) (map[string]bool, error) {
	return nil, s.err()
}

func (s *Store) RequestPermissions(ctx context.Context, tokens []string) error {
	return s.err()
}

func (s *Store) ReadRecords(ctx context.Context, q native.RecordQuery) (*native.RecordPage, error) {
	return nil, s.err()
}

func (s *Store) InsertRecord(ctx context.Context, rec *native.Record) error {
	return s.err()
}

func (s *Store) Close() error { return nil }
