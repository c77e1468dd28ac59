package ports

import (
	"context"

	"github.com/userhub/account-system/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Implementations must enforce uniqueness of email and username atomically
// at the storage layer; application-level conflict checks are only a
// fast path ahead of that backstop.
type UserRepository interface {
	// FindByEmailOrUsername returns the first user matching either field.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Insert persists a new user and returns it with the assigned id and
	// repository-maintained timestamps.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
