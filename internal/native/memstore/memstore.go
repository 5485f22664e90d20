// ABOUTME: In-memory native store for unit tests.
// ABOUTME: Seedable records, scriptable prompt outcomes, request log, failure injection.
package memstore

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/openhealth/healthbridge/internal/native"
)

// Store is a lightweight simulation of a platform health store. It
// honors page sizes and continuation tokens the way Health Connect
// does, and records every read query for assertions.
type Store struct {
	mu      sync.Mutex
	records []native.Record
	grants  map[string]bool

	// QueryLog records every ReadRecords call.
	QueryLog []native.RecordQuery

	// ReadErr, InsertErr, and GrantsErr are returned from the matching
	// call when non-nil.
	ReadErr   error
	InsertErr error
	GrantsErr error

	// PromptErr fails RequestPermissions when non-nil (e.g.
	// native.ErrPromptCancelled, native.ErrNoUIContext).
	PromptErr error

	// PromptDenied lists tokens the simulated user refuses; all other
	// prompted tokens are granted.
	PromptDenied []string

	// PromptStarted, when non-nil, receives one signal per prompt
	// before it blocks on PromptRelease.
	PromptStarted chan struct{}

	// PromptRelease, when non-nil, holds each prompt open until a
	// value is received, so tests can overlap a second request.
	PromptRelease chan struct{}

	// PromptCount counts prompts issued.
	PromptCount int

	// PromptLog records the token set of every prompt.
	PromptLog [][]string

	// InsertOrigin is attached to inserted records, standing in for
	// the platform's own data-origin attribution.
	InsertOrigin *native.Origin
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{grants: make(map[string]bool)}
}

// Seed adds records to the store in the given order. Pages are served
// in seed order; callers are expected to sort.
func (s *Store) Seed(records ...native.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}

// Grant marks permission tokens as granted without a prompt.
func (s *Store) Grant(tokens ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tok := range tokens {
		s.grants[tok] = true
	}
}

// Records returns a copy of everything currently stored.
func (s *Store) Records() []native.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]native.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Platform() string { return "memory" }

func (s *Store) Available(ctx context.Context) (bool, string) { return true, "" }

func (s *Store) GrantedPermissions(ctx context.Context) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GrantsErr != nil {
		return nil, s.GrantsErr
	}
	out := make(map[string]bool, len(s.grants))
	for tok, ok := range s.grants {
		out[tok] = ok
	}
	return out, nil
}

func (s *Store) RequestPermissions(ctx context.Context, tokens []string) error {
	s.mu.Lock()
	s.PromptCount++
	s.PromptLog = append(s.PromptLog, append([]string(nil), tokens...))
	started := s.PromptStarted
	release := s.PromptRelease
	s.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PromptErr != nil {
		return s.PromptErr
	}

	denied := make(map[string]bool, len(s.PromptDenied))
	for _, tok := range s.PromptDenied {
		denied[tok] = true
	}
	for _, tok := range tokens {
		if !denied[tok] {
			s.grants[tok] = true
		}
	}
	return nil
}

func (s *Store) ReadRecords(ctx context.Context, q native.RecordQuery) (*native.RecordPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.QueryLog = append(s.QueryLog, q)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}

	var matched []native.Record
	for _, rec := range s.records {
		if rec.RecordType != q.RecordType {
			continue
		}
		if rec.StartTime.Before(q.Start) || !rec.StartTime.Before(q.End) {
			continue
		}
		matched = append(matched, rec)
	}

	offset := 0
	if q.PageToken != "" {
		n, err := strconv.Atoi(q.PageToken)
		if err != nil {
			return nil, err
		}
		offset = n
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = len(matched)
	}

	page := &native.RecordPage{}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	if offset < end {
		page.Records = append(page.Records, matched[offset:end]...)
	}
	if end < len(matched) {
		page.NextPageToken = strconv.Itoa(end)
	}
	return page, nil
}

func (s *Store) InsertRecord(ctx context.Context, rec *native.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.InsertErr != nil {
		return s.InsertErr
	}

	stored := *rec
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.Origin == nil {
		stored.Origin = s.InsertOrigin
	}
	s.records = append(s.records, stored)
	return nil
}

func (s *Store) Close() error { return nil }
