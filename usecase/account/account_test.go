package account

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organilive/storefront/domain"
)

// memStore is an in-memory AccountStore so the manager can be exercised
// without a real storage backend.
type memStore struct {
	users   []domain.User
	usersOK bool

	session   *domain.SessionUser
	sessionOK bool

	loadErr error
	saveErr error

	savedUsers    int
	savedSessions int
	clears        int
}

func (s *memStore) LoadUsers(ctx context.Context) ([]domain.User, bool, error) {
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	return s.users, s.usersOK, nil
}

func (s *memStore) SaveUsers(ctx context.Context, users []domain.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.users = append([]domain.User(nil), users...)
	s.usersOK = true
	s.savedUsers++
	return nil
}

func (s *memStore) LoadSession(ctx context.Context) (*domain.SessionUser, bool, error) {
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	return s.session, s.sessionOK, nil
}

func (s *memStore) SaveSession(ctx context.Context, session *domain.SessionUser) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *session
	s.session = &copied
	s.sessionOK = true
	s.savedSessions++
	return nil
}

func (s *memStore) ClearSession(ctx context.Context) error {
	s.session = nil
	s.sessionOK = false
	s.clears++
	return nil
}

func newTestManager(t *testing.T, store *memStore) *Manager {
	t.Helper()
	m := New(store, nil)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	require.NoError(t, m.Start(context.Background()))
	return m
}

func register(t *testing.T, m *Manager, email, password string) domain.User {
	t.Helper()
	user, err := m.Register(context.Background(), RegisterInput{
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     email,
		Password:  password,
		Phone:     "+57 300 555 5555",
	})
	require.NoError(t, err)
	return user
}

func TestStartSeedsDemoUsersWhenStoreEmpty(t *testing.T) {
	store := &memStore{}
	m := newTestManager(t, store)

	assert.Len(t, m.users, 2)
	assert.Equal(t, 1, store.savedUsers)
	assert.False(t, m.Authenticated())
}

func TestStartRestoresPersistedSession(t *testing.T) {
	session := domain.SessionUser{ID: 2, Email: "usuario@test.com"}
	store := &memStore{
		users:     seedUsers(),
		usersOK:   true,
		session:   &session,
		sessionOK: true,
	}
	m := newTestManager(t, store)

	got, ok := m.Session()
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}

func TestStartTreatsLoadErrorAsAbsence(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk gone")}
	m := New(store, nil)

	require.NoError(t, m.Start(context.Background()))
	assert.False(t, m.Authenticated())
	assert.Len(t, m.users, 2, "unreadable list falls back to the seed accounts")
}

func TestRegisterGrowsListWithUniqueMonotonicIDs(t *testing.T) {
	store := &memStore{}
	m := newTestManager(t, store)
	before := len(m.users)

	seen := make(map[int64]struct{})
	for i := range m.users {
		seen[m.users[i].ID] = struct{}{}
	}

	// The clock is frozen, so uniqueness must come from the monotonic
	// bump, not from time advancing between calls.
	var prev int64
	for i := 0; i < 5; i++ {
		user := register(t, m, "user"+string(rune('a'+i))+"@test.com", "Pass1234")
		_, dup := seen[user.ID]
		require.False(t, dup, "id %d already assigned", user.ID)
		seen[user.ID] = struct{}{}
		assert.Greater(t, user.ID, prev)
		prev = user.ID
	}

	assert.Len(t, m.users, before+5)
	assert.Equal(t, 6, store.savedUsers) // seed write plus one per registration
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	m := newTestManager(t, &memStore{})
	register(t, m, "a@b.com", "Pass1234")

	_, err := m.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginSuccessNeverExposesPassword(t *testing.T) {
	m := newTestManager(t, &memStore{})
	register(t, m, "a@b.com", "Pass1234")

	session, err := m.Login(context.Background(), "a@b.com", "Pass1234")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", session.Email)
	assert.True(t, m.Authenticated())

	raw, err := json.Marshal(session)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestLoginBackfillsDerivedDefaults(t *testing.T) {
	m := newTestManager(t, &memStore{})

	session, err := m.Login(context.Background(), "admin@organi.live", "123456")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultStatistics(), session.Stats)
	assert.Equal(t, domain.DefaultPreferences(), session.Preferences)
	assert.Equal(t, m.now(), session.LastAccess)
}

func TestLoginFailureIsGenericAndMutatesNothing(t *testing.T) {
	store := &memStore{}
	m := newTestManager(t, store)
	register(t, m, "a@b.com", "Pass1234")
	savedBefore := store.savedSessions
	usersBefore := append([]domain.User(nil), m.users...)

	for _, tc := range []struct{ email, password string }{
		{"a@b.com", "wrong"},
		{"A@B.COM", "Pass1234"}, // matching is case-sensitive
		{"nobody@b.com", "Pass1234"},
	} {
		_, err := m.Login(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	assert.False(t, m.Authenticated())
	assert.Equal(t, savedBefore, store.savedSessions)
	assert.Equal(t, usersBefore, m.users)
}

func TestLogoutIsIdempotentAndPreservesCredentials(t *testing.T) {
	store := &memStore{}
	m := newTestManager(t, store)
	register(t, m, "a@b.com", "Pass1234")

	_, err := m.Login(context.Background(), "a@b.com", "Pass1234")
	require.NoError(t, err)

	m.Logout(context.Background())
	assert.False(t, m.Authenticated())
	assert.Equal(t, 1, store.clears)

	m.Logout(context.Background())
	assert.Equal(t, 1, store.clears, "second logout must be a no-op")

	// Logout must not touch the registered-user list.
	_, err = m.Login(context.Background(), "a@b.com", "Pass1234")
	assert.NoError(t, err)
}

func TestUpdateUserIsIdempotentAndPatchesBothRecords(t *testing.T) {
	store := &memStore{}
	m := newTestManager(t, store)
	user := register(t, m, "a@b.com", "Pass1234")
	_, err := m.Login(context.Background(), "a@b.com", "Pass1234")
	require.NoError(t, err)

	name := "Lucia"
	phone := "+57 311 222 3333"
	patch := domain.UserPatch{FirstName: &name, Phone: &phone}

	first, err := m.UpdateUser(context.Background(), patch)
	require.NoError(t, err)
	second, err := m.UpdateUser(context.Background(), patch)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for i := range m.users {
		if m.users[i].ID == user.ID {
			assert.Equal(t, "Lucia", m.users[i].FirstName)
			assert.Equal(t, phone, m.users[i].Phone)
			// The stored record keeps its password through profile edits.
			assert.Equal(t, "Pass1234", m.users[i].Password)
		}
	}
}

func TestUpdateUserRequiresSession(t *testing.T) {
	m := newTestManager(t, &memStore{})
	name := "X"
	_, err := m.UpdateUser(context.Background(), domain.UserPatch{FirstName: &name})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestUpdatePreferencesTouchesSessionOnly(t *testing.T) {
	store := &memStore{}
	m := newTestManager(t, store)
	register(t, m, "a@b.com", "Pass1234")
	_, err := m.Login(context.Background(), "a@b.com", "Pass1234")
	require.NoError(t, err)
	usersSaves := store.savedUsers

	theme := "dark"
	session, err := m.UpdatePreferences(context.Background(), domain.PreferencesPatch{Theme: &theme})
	require.NoError(t, err)

	assert.Equal(t, "dark", session.Preferences.Theme)
	// Untouched sections keep their defaults.
	assert.Equal(t, domain.DefaultPreferences().Notifications, session.Preferences.Notifications)
	assert.Equal(t, usersSaves, store.savedUsers, "user list must not be rewritten")
}

func TestAddActivityPrependsWithFreshIDs(t *testing.T) {
	m := newTestManager(t, &memStore{})
	register(t, m, "a@b.com", "Pass1234")
	_, err := m.Login(context.Background(), "a@b.com", "Pass1234")
	require.NoError(t, err)

	first, err := m.AddActivity(context.Background(), "order", "Pedido realizado", "")
	require.NoError(t, err)
	second, err := m.AddActivity(context.Background(), "profile", "Perfil actualizado", "")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)

	session, ok := m.Session()
	require.True(t, ok)
	require.Len(t, session.Activity, 2)
	assert.Equal(t, second.ID, session.Activity[0].ID, "newest entry first")
	assert.Equal(t, first.ID, session.Activity[1].ID)
}

func TestAddActivityRequiresSession(t *testing.T) {
	m := newTestManager(t, &memStore{})
	_, err := m.AddActivity(context.Background(), "login", "x", "")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestCredentialScenario(t *testing.T) {
	// Register → login → wrong password → logout → login again.
	store := &memStore{}
	m := newTestManager(t, store)
	register(t, m, "a@b.com", "Pass1234")

	session, err := m.Login(context.Background(), "a@b.com", "Pass1234")
	require.NoError(t, err)
	raw, _ := json.Marshal(session)
	assert.NotContains(t, string(raw), "password")

	usersBefore := append([]domain.User(nil), m.users...)
	_, err = m.Login(context.Background(), "a@b.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, usersBefore, m.users)

	m.Logout(context.Background())

	_, err = m.Login(context.Background(), "a@b.com", "Pass1234")
	assert.NoError(t, err)
}

func TestPersistFailuresAreNotFatal(t *testing.T) {
	store := &memStore{usersOK: true, users: seedUsers()}
	m := newTestManager(t, store)
	store.saveErr = errors.New("disk full")

	user, err := m.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "p"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	// In-memory state stays authoritative even though the mirror write failed.
	_, err = m.Login(context.Background(), "a@b.com", "p")
	assert.NoError(t, err)
}
