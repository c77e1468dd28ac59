package ports

import (
	"context"
	"time"

	"github.com/userhub/account-system/internal/core/domain"
)

// GeneratedUser is a synthetic account record produced by Generate. It is
// returned to the caller as a downloadable artifact and never persisted,
// so the password stays in plaintext here.
type GeneratedUser struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	BirthDate   string `json:"birthDate"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Avatar      string `json:"avatar"`
	Company     string `json:"company"`
	JobPosition string `json:"jobPosition"`
	Mobile      string `json:"mobile"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// ImportResult summarizes one batch import. Errors holds one message per
// rejected record, prefixed with the record's 1-based position in the input.
type ImportResult struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// CreateUserInput carries a validated registration request into the service.
type CreateUserInput struct {
	Email       string
	Username    string
	LastName    string
	FirstName   string
	Password    string
	BirthDate   *time.Time
	City        string
	Country     string
	CountryCode string
	Avatar      string
	Company     string
	JobPosition string
	Mobile      string
	Role        string
}

// UserService is the application boundary for account management.
type UserService interface {
	// Generate produces count synthetic user records; count must be in [1,1000].
	Generate(ctx context.Context, count int) ([]GeneratedUser, error)
	// Import validates and persists a JSON array of user records with
	// per-record failure isolation.
	Import(ctx context.Context, payload []byte) (*ImportResult, error)
	// Create registers a single user.
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Profile returns one user's profile, subject to access control.
	Profile(ctx context.Context, username string, requester domain.Identity) (*domain.User, error)
	// MyProfile returns the requester's own profile, resolved by verified email.
	MyProfile(ctx context.Context, requester domain.Identity) (*domain.User, error)
	// VerifyCredentials resolves an email-or-username identifier and checks
	// the password. Used by the authentication collaborator.
	VerifyCredentials(ctx context.Context, identifier, password string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}
