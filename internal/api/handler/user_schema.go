package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createUserRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Username    string `json:"username"    validate:"required"`
	LastName    string `json:"lastName"    validate:"required"`
	FirstName   string `json:"firstName"   validate:"required"`
	Password    string `json:"password"    validate:"required,min=6"`
	BirthDate   string `json:"birthDate"   validate:"required,datetime=2006-01-02"`
	City        string `json:"city"        validate:"required"`
	Country     string `json:"country"     validate:"required"`
	CountryCode string `json:"countryCode" validate:"required,len=2"`
	Avatar      string `json:"avatar"      validate:"omitempty,url"`
	Company     string `json:"company"     validate:"required"`
	JobPosition string `json:"jobPosition" validate:"required"`
	Mobile      string `json:"mobile"      validate:"required"`
	Role        string `json:"role"        validate:"omitempty,oneof=admin user"`
}

// Response-only types owned by the transport layer.
// The password never appears here: userResponse simply has no field for it.

type userResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	LastName    string     `json:"lastName"`
	FirstName   string     `json:"firstName"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`
	CountryCode string     `json:"countryCode,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	Company     string     `json:"company,omitempty"`
	JobPosition string     `json:"jobPosition,omitempty"`
	Mobile      string     `json:"mobile,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type importResultResponse struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
