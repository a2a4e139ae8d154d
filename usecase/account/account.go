package account

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

// Manager owns the session/account state: the in-memory registered-user
// list and the nullable current-session singleton. Every mutation is
// mirrored to the injected AccountStore; the store never holds the
// authoritative copy.
//
// The manager is either Anonymous (no session) or Authenticated. Login
// is the only transition into Authenticated, Logout the only one out.
type Manager struct {
	store  repository.AccountStore
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	users   []domain.User
	session *domain.SessionUser
}

// RegisterInput carries the fields collected by the registration form.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

func New(store repository.AccountStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Start loads both persisted records. An empty or unreadable user list
// falls back to the seeded demo accounts; an unreadable session record
// leaves the manager Anonymous. Store failures are logged, never fatal.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	users, ok, err := m.store.LoadUsers(ctx)
	if err != nil {
		m.logger.Warn("failed to load user list, using seed accounts", zap.Error(err))
	}
	if ok && len(users) > 0 {
		m.users = users
	} else {
		m.users = seedUsers()
		m.persistUsers(ctx)
	}

	session, ok, err := m.store.LoadSession(ctx)
	if err != nil {
		m.logger.Warn("failed to load session record", zap.Error(err))
	}
	if ok {
		m.session = session
	}

	m.logger.Info("account state loaded",
		zap.Int("users", len(m.users)),
		zap.Bool("authenticated", m.session != nil))
	return nil
}

// Register appends a new account to the registered-user list and
// persists the full list. The id is derived from the current time and
// guaranteed greater than every existing id. Duplicate emails are
// rejected here rather than trusting the caller to have checked.
func (m *Manager) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for i := range m.users {
		if m.users[i].Email == input.Email {
			return domain.User{}, domain.ErrEmailTaken
		}
		if m.users[i].ID > maxID {
			maxID = m.users[i].ID
		}
	}

	now := m.now()
	user := domain.User{
		ID:           nextID(now, maxID),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Password:     input.Password,
		Phone:        input.Phone,
		RegisteredAt: now,
	}

	m.users = append(m.users, user)
	m.persistUsers(ctx)

	m.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login matches email and password exactly (case-sensitive, plaintext)
// against the registered-user list. On success the session projection is
// built, set active and mirrored; on failure nothing is mutated and the
// error stays generic.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.SessionUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := m.validateCredentials(email, password)
	if found == nil {
		return domain.SessionUser{}, domain.ErrInvalidCredentials
	}

	session := domain.NewSessionUser(*found, m.now())
	m.session = &session
	m.persistSession(ctx)

	m.logger.Info("login", zap.Int64("user_id", session.ID))
	return session, nil
}

// Logout clears the active session and its persisted mirror. Calling it
// while Anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return
	}
	m.logger.Info("logout", zap.Int64("user_id", m.session.ID))
	m.session = nil
	if err := m.store.ClearSession(ctx); err != nil {
		m.logger.Warn("failed to clear session mirror", zap.Error(err))
	}
}

// UpdateUser shallow-merges the patch into the active session, persists
// the mirror and patches the matching registered-user entry by id.
func (m *Manager) UpdateUser(ctx context.Context, patch domain.UserPatch) (domain.SessionUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return domain.SessionUser{}, domain.ErrNoSession
	}

	patch.ApplyToSession(m.session)
	m.persistSession(ctx)

	for i := range m.users {
		if m.users[i].ID == m.session.ID {
			patch.ApplyToUser(&m.users[i])
			break
		}
	}
	m.persistUsers(ctx)

	return *m.session, nil
}

// UpdatePreferences merges the patch into the session's preferences and
// persists the session mirror only; the registered-user list is not
// touched.
func (m *Manager) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.SessionUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return domain.SessionUser{}, domain.ErrNoSession
	}

	patch.Apply(&m.session.Preferences)
	m.persistSession(ctx)

	return *m.session, nil
}

// AddActivity prepends an entry to the session's activity history and
// persists the mirror. The history is unbounded.
func (m *Manager) AddActivity(ctx context.Context, kind, action, description string) (domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return domain.Activity{}, domain.ErrNoSession
	}

	now := m.now()
	var lastID int64
	if len(m.session.Activity) > 0 {
		lastID = m.session.Activity[0].ID
	}
	entry := domain.Activity{
		ID:          nextID(now, lastID),
		Type:        kind,
		Action:      action,
		Description: description,
		Timestamp:   now,
	}

	m.session.Activity = append([]domain.Activity{entry}, m.session.Activity...)
	m.persistSession(ctx)

	return entry, nil
}

// Session returns a copy of the active session, if any.
func (m *Manager) Session() (domain.SessionUser, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return domain.SessionUser{}, false
	}
	return *m.session, true
}

// SessionUserID returns the active session's user id, if any.
func (m *Manager) SessionUserID() (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return 0, false
	}
	return m.session.ID, true
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session != nil
}

// validateCredentials stays unexported on purpose: exposing it would let
// callers learn which half of the pair failed, while Login only ever
// reports a generic mismatch.
func (m *Manager) validateCredentials(email, password string) *domain.User {
	for i := range m.users {
		if m.users[i].Email == email && m.users[i].Password == password {
			return &m.users[i]
		}
	}
	return nil
}

// persistUsers mirrors the user list. Write failures keep the in-memory
// state authoritative; the next successful write wins.
func (m *Manager) persistUsers(ctx context.Context) {
	if err := m.store.SaveUsers(ctx, m.users); err != nil {
		m.logger.Error("failed to persist user list", zap.Error(err))
	}
}

func (m *Manager) persistSession(ctx context.Context) {
	if err := m.store.SaveSession(ctx, m.session); err != nil {
		m.logger.Error("failed to persist session mirror", zap.Error(err))
	}
}

// nextID derives a unix-milli id that stays strictly above prev, so
// rapid consecutive calls within one millisecond remain unique and
// monotonically increasing.
func nextID(now time.Time, prev int64) int64 {
	id := now.UnixMilli()
	if id <= prev {
		id = prev + 1
	}
	return id
}
