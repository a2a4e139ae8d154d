package account

import (
	"time"

	"github.com/organilive/storefront/domain"
)

// seedUsers returns the demo accounts installed when the store holds no
// user list yet, so a fresh deployment is immediately usable.
func seedUsers() []domain.User {
	return []domain.User{
		{
			ID:           1,
			Email:        "admin@organi.live",
			Password:     "123456",
			FirstName:    "Admin",
			LastName:     "Sistema",
			Phone:        "+57 300 000 0000",
			RegisteredAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Avatar:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:           2,
			Email:        "usuario@test.com",
			Password:     "password123",
			FirstName:    "Usuario",
			LastName:     "Prueba",
			Phone:        "+57 300 111 1111",
			RegisteredAt: time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
			Avatar:       "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		},
	}
}
