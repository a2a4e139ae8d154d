package bolt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

// Storage layout: one bucket, two JSON-valued keys, mirroring the
// browser-storage design the service replaces.
const (
	defaultBucket  = "account"
	keyUsers       = "registeredUsers"
	keyCurrentUser = "currentUser"
)

// Store persists the account records in a local BoltDB file.
type Store struct {
	db     *bolt.DB
	bucket []byte
	logger *zap.Logger
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(defaultBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(defaultBucket),
		logger: logger,
	}, nil
}

func (s *Store) LoadUsers(ctx context.Context) ([]domain.User, bool, error) {
	raw, err := s.get(ctx, keyUsers)
	if err != nil || raw == nil {
		return nil, false, err
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		// Corrupt record: report absence so the manager can reseed.
		s.logger.Warn("corrupt user list record, discarding",
			zap.String("key", keyUsers), zap.Error(err))
		_ = s.delete(ctx, keyUsers)
		return nil, false, nil
	}
	return users, true, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.put(ctx, keyUsers, payload)
}

func (s *Store) LoadSession(ctx context.Context) (*domain.SessionUser, bool, error) {
	raw, err := s.get(ctx, keyCurrentUser)
	if err != nil || raw == nil {
		return nil, false, err
	}

	var session domain.SessionUser
	if err := json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn("corrupt session record, discarding",
			zap.String("key", keyCurrentUser), zap.Error(err))
		_ = s.delete(ctx, keyCurrentUser)
		return nil, false, nil
	}
	return &session, true, nil
}

func (s *Store) SaveSession(ctx context.Context, session *domain.SessionUser) error {
	if session == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.put(ctx, keyCurrentUser, payload)
}

func (s *Store) ClearSession(ctx context.Context) error {
	return s.delete(ctx, keyCurrentUser)
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database file is still usable.
func (s *Store) Ping() error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(func(tx *bolt.Tx) error { return nil })
}

// Stats exposes Bolt statistics for the health endpoint.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	return raw, err
}

func (s *Store) put(ctx context.Context, key string, value []byte) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
}

func (s *Store) delete(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

var _ repository.AccountStore = (*Store)(nil)
