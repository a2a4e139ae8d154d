package repository

import (
	"context"

	"github.com/organilive/storefront/domain"
)

// AccountStore is the persistence port for the two account records: the
// registered-user list and the current-session mirror. Implementations
// hold serialized copies only; the account manager owns the live state.
//
// Load methods report absence with (nil/empty, false, nil). A corrupt
// stored record is the implementation's problem: it must be logged and
// reported as absent, never as an error the manager has to handle.
type AccountStore interface {
	LoadUsers(ctx context.Context) ([]domain.User, bool, error)
	SaveUsers(ctx context.Context, users []domain.User) error

	LoadSession(ctx context.Context) (*domain.SessionUser, bool, error)
	SaveSession(ctx context.Context, session *domain.SessionUser) error
	ClearSession(ctx context.Context) error
}
