package handler

import (
	"time"

	"github.com/userhub/account-system/internal/core/domain"
	"github.com/userhub/account-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createUserRequest) ports.CreateUserInput {
	in := ports.CreateUserInput{
		Email:       req.Email,
		Username:    req.Username,
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		Password:    req.Password,
		City:        req.City,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		Avatar:      req.Avatar,
		Company:     req.Company,
		JobPosition: req.JobPosition,
		Mobile:      req.Mobile,
		Role:        req.Role,
	}

	// Validated upstream with datetime=2006-01-02; a parse failure here
	// cannot happen for a request that passed validation.
	if t, err := time.Parse("2006-01-02", req.BirthDate); err == nil {
		in.BirthDate = &t
	}
	return in
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		LastName:    u.LastName,
		FirstName:   u.FirstName,
		BirthDate:   u.BirthDate,
		City:        u.City,
		Country:     u.Country,
		CountryCode: u.CountryCode,
		Avatar:      u.Avatar,
		Company:     u.Company,
		JobPosition: u.JobPosition,
		Mobile:      u.Mobile,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.UTC(),
		UpdatedAt:   u.UpdatedAt.UTC(),
	}
}

func toUserListResponse(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

func toImportResponse(r *ports.ImportResult) importResultResponse {
	return importResultResponse{
		Total:   r.Total,
		Success: r.Success,
		Failed:  r.Failed,
		Errors:  r.Errors,
	}
}
