package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	boltdb "go.etcd.io/bbolt"

	"github.com/organilive/storefront/domain"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storefront.db")
	store, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestUsersRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	_, ok, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store holds no user list")

	users := []domain.User{
		{ID: 1, Email: "a@b.com", Password: "secret", RegisteredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Email: "c@d.com", Password: "secret2", RegisteredAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.SaveUsers(ctx, users))

	got, ok, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, users, got)
}

func TestSessionRoundTripAndClear(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	session := domain.SessionUser{
		ID:          1,
		Email:       "a@b.com",
		FirstName:   "Ana",
		LastAccess:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Stats:       domain.DefaultStatistics(),
		Preferences: domain.DefaultPreferences(),
	}
	require.NoError(t, store.SaveSession(ctx, &session))

	got, ok, err := store.LoadSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, session, *got)

	require.NoError(t, store.ClearSession(ctx))
	_, ok, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an absent session is fine.
	assert.NoError(t, store.ClearSession(ctx))
}

func TestSaveSessionRejectsNil(t *testing.T) {
	store, _ := openTestStore(t)
	err := store.SaveSession(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestCorruptRecordsAreDiscarded(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveUsers(ctx, []domain.User{{ID: 1, Email: "a@b.com"}}))
	require.NoError(t, store.Close())

	// Scribble over both records behind the store's back.
	raw, err := boltdb.Open(path, 0o600, &boltdb.Options{Timeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, raw.Update(func(tx *boltdb.Tx) error {
		b := tx.Bucket([]byte(defaultBucket))
		if err := b.Put([]byte(keyUsers), []byte("{not json")); err != nil {
			return err
		}
		return b.Put([]byte(keyCurrentUser), []byte("also not json"))
	}))
	require.NoError(t, raw.Close())

	store, err = Open(path, nil)
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "corrupt list reads as absent")

	_, ok, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "corrupt session reads as absent")

	// The corrupt keys were dropped, so the next read takes the fast path.
	_, ok, err = store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContextCancellationStopsOperations(t *testing.T) {
	store, _ := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.LoadUsers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.SaveUsers(ctx, nil), context.Canceled)
}

func TestPing(t *testing.T) {
	store, _ := openTestStore(t)
	assert.NoError(t, store.Ping())

	require.NoError(t, store.Close())
	assert.Error(t, store.Ping())
}
