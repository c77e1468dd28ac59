package domain

import "time"

// Role is the authorization level of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps an arbitrary string to a known role. Unknown or empty
// values resolve to RoleUser.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// User is the central account entity. Password always holds the bcrypt hash
// once the record has been persisted; it is never serialized.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	LastName    string     `json:"lastName"`
	FirstName   string     `json:"firstName"`
	Password    string     `json:"-"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`
	CountryCode string     `json:"countryCode,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	Company     string     `json:"company,omitempty"`
	JobPosition string     `json:"jobPosition,omitempty"`
	Mobile      string     `json:"mobile,omitempty"`
	Role        Role       `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Identity is the authenticated requester attached to a request by the
// auth middleware.
type Identity struct {
	Username string
	Email    string
	Role     Role
}

// IsZero reports whether no verified identity is attached.
func (i Identity) IsZero() bool {
	return i.Username == "" && i.Email == ""
}

// CanViewProfile reports whether the identity may read the profile of the
// given username. Admins may view anyone; everyone else only themselves.
func (i Identity) CanViewProfile(username string) bool {
	return i.Role == RoleAdmin || i.Username == username
}
