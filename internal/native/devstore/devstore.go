// ABOUTME: Badger-backed native store for local development.
// ABOUTME: Simulates a device health store with persisted records, grants, and page tokens.
package devstore

import (
	"context"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/openhealth/healthbridge/internal/native"
)

const (
	recordPrefix = "rec:"
	grantPrefix  = "grant:"

	// devAppID is the originating-application id attached to records
	// this store inserts.
	devAppID = "dev.openhealth.healthbridge"
)

// Store persists health records and permission grants in a local
// Badger database. It stands in for a device health store: reads are
// paginated with continuation tokens and permission prompts always
// resolve as granted.
type Store struct {
	db       *badger.DB
	platform string
}

// Open opens (or creates) a dev store at dir. The platform label is
// what IsAvailable reports, defaulting to "dev" when empty.
func Open(dir, platform string) (*Store, error) {
	if platform == "" {
		platform = "dev"
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open dev store: %w", err)
	}
	return &Store{db: db, platform: platform}, nil
}

func (s *Store) Platform() string { return s.platform }

func (s *Store) Available(ctx context.Context) (bool, string) { return true, "" }

func (s *Store) Close() error {
	return s.db.Close()
}

// recordKey orders records by type, then start instant, then id, so a
// prefix scan walks one record kind in time order.
func recordKey(rec *native.Record) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%s", recordPrefix, rec.RecordType, rec.StartTime.UTC().UnixNano(), rec.ID))
}

// GrantedPermissions returns all persisted permission grants.
func (s *Store) GrantedPermissions(ctx context.Context) (map[string]bool, error) {
	granted := make(map[string]bool)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(grantPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			token := string(it.Item().Key()[len(grantPrefix):])
			granted[token] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return granted, nil
}

// RequestPermissions simulates the platform prompt by granting every
// requested token and persisting the grants.
func (s *Store) RequestPermissions(ctx context.Context, tokens []string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, token := range tokens {
			if err := txn.Set([]byte(grantPrefix+token), []byte{1}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("persist grants: %w", err)
	}
	return nil
}

// RevokePermissions removes persisted grants, so denied states can be
// exercised against the dev store.
func (s *Store) RevokePermissions(tokens []string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, token := range tokens {
			if err := txn.Delete([]byte(grantPrefix + token)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("revoke grants: %w", err)
	}
	return nil
}

// InsertRecord stores one record, assigning an id and the dev app
// origin when absent.
func (s *Store) InsertRecord(ctx context.Context, rec *native.Record) error {
	stored := *rec
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.Origin == nil {
		stored.Origin = &native.Origin{AppID: devAppID}
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(&stored), data)
	})
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// ReadRecords serves one page of records of a single kind within
// [q.Start, q.End). The continuation token is the key of the last
// record on the previous page.
func (s *Store) ReadRecords(ctx context.Context, q native.RecordQuery) (*native.RecordPage, error) {
	prefix := []byte(recordPrefix + q.RecordType + ":")
	lower := []byte(fmt.Sprintf("%s%020d:", prefix, q.Start.UTC().UnixNano()))
	upper := fmt.Sprintf("%s%020d:", prefix, q.End.UTC().UnixNano())

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	page := &native.RecordPage{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		if q.PageToken != "" {
			it.Seek([]byte(q.PageToken))
			// The token names the last key already served.
			if it.Valid() && string(it.Item().Key()) == q.PageToken {
				it.Next()
			}
		} else {
			it.Seek(lower)
		}

		var lastKey string
		for ; it.Valid(); it.Next() {
			key := string(it.Item().Key())
			if key >= upper {
				break
			}
			if len(page.Records) == pageSize {
				page.NextPageToken = lastKey
				return nil
			}

			var rec native.Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			page.Records = append(page.Records, rec)
			lastKey = key
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return page, nil
}
