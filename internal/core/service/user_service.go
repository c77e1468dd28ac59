package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/account-system/internal/core/domain"
	"github.com/userhub/account-system/internal/core/ports"
)

// birthDateLayouts are the accepted calendar-date formats for imported
// records, tried in order.
var birthDateLayouts = []string{"2006-01-02", time.RFC3339}

// requiredImportFields must be present and non-empty on every imported
// record, checked in this order.
var requiredImportFields = []string{"email", "username", "password", "firstName", "lastName"}

// UserService implements account registration, batch import, synthetic
// generation, and authorization-scoped profile access.
type UserService struct {
	repo      ports.UserRepository
	hasher    ports.PasswordHasher
	generator *Generator
	log       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, generator *Generator, log zerolog.Logger) *UserService {
	if generator == nil {
		generator = NewGenerator(0)
	}
	return &UserService{repo: repo, hasher: hasher, generator: generator, log: log}
}

// Generate produces count synthetic user records. Counts outside
// [GenerateMin, GenerateMax] fail validation before any generation happens.
func (s *UserService) Generate(_ context.Context, count int) ([]ports.GeneratedUser, error) {
	if count < GenerateMin || count > GenerateMax {
		return nil, domain.NewValidationError(
			fmt.Sprintf("count must be between %d and %d", GenerateMin, GenerateMax),
		)
	}

	users := s.generator.Generate(count)
	s.log.Info().Int("count", count).Msg("synthetic users generated")
	return users, nil
}

// importRecord is the wire shape of one element in a batch import payload.
type importRecord struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	Password    string `json:"password"`
	BirthDate   string `json:"birthDate"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Avatar      string `json:"avatar"`
	Company     string `json:"company"`
	JobPosition string `json:"jobPosition"`
	Mobile      string `json:"mobile"`
	Role        string `json:"role"`
}

// Import validates and persists a JSON array of user records. The three
// global preconditions (payload present, valid JSON, array shape) abort the
// whole operation; after that every record is processed independently and a
// failure only rejects that record. Errors are reported in input order as
// "Record <1-based position>: <reason>".
func (s *UserService) Import(ctx context.Context, payload []byte) (*ports.ImportResult, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, domain.NewValidationError("no payload provided")
	}
	if !json.Valid(trimmed) {
		return nil, domain.NewValidationError("payload is not valid JSON")
	}
	if trimmed[0] != '[' {
		return nil, domain.NewValidationError("payload must be a JSON array of users")
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, domain.NewValidationError("payload is not valid JSON")
	}

	result := &ports.ImportResult{Total: len(raw), Errors: []string{}}

	for i, message := range raw {
		if err := s.importSingle(ctx, message); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Record %d: %s", i+1, err.Error()))
			continue
		}
		result.Success++
	}

	s.log.Info().
		Int("total", result.Total).
		Int("success", result.Success).
		Int("failed", result.Failed).
		Msg("batch import finished")

	return result, nil
}

// importSingle validates and persists one record. Any returned error is
// converted by Import into a result entry; it never aborts the batch.
func (s *UserService) importSingle(ctx context.Context, message json.RawMessage) error {
	var rec importRecord
	if err := json.Unmarshal(message, &rec); err != nil {
		return fmt.Errorf("not a valid user object")
	}

	if violations := missingFields(rec); len(violations) > 0 {
		return fmt.Errorf("%s", strings.Join(violations, "; "))
	}

	email := strings.ToLower(rec.Email)
	if _, err := s.repo.FindByEmailOrUsername(ctx, email, rec.Username); err == nil {
		return domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return err
	}

	hashed, err := s.hasher.Hash(rec.Password)
	if err != nil {
		return err
	}

	var birthDate *time.Time
	if rec.BirthDate != "" {
		parsed, err := parseBirthDate(rec.BirthDate)
		if err != nil {
			return fmt.Errorf("invalid birth date %q", rec.BirthDate)
		}
		birthDate = &parsed
	}

	user := &domain.User{
		Email:       email,
		Username:    rec.Username,
		LastName:    rec.LastName,
		FirstName:   rec.FirstName,
		Password:    hashed,
		BirthDate:   birthDate,
		City:        rec.City,
		Country:     rec.Country,
		CountryCode: rec.CountryCode,
		Avatar:      rec.Avatar,
		Company:     rec.Company,
		JobPosition: rec.JobPosition,
		Mobile:      rec.Mobile,
		Role:        domain.ParseRole(rec.Role),
	}

	if _, err := s.repo.Insert(ctx, user); err != nil {
		return err
	}
	return nil
}

func missingFields(rec importRecord) []string {
	values := map[string]string{
		"email":     rec.Email,
		"username":  rec.Username,
		"password":  rec.Password,
		"firstName": rec.FirstName,
		"lastName":  rec.LastName,
	}

	var violations []string
	for _, field := range requiredImportFields {
		if values[field] == "" {
			violations = append(violations, "missing field "+field)
		}
	}
	return violations
}

func parseBirthDate(value string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// Create registers a single user. The transport layer is responsible for
// shape validation; uniqueness and hashing happen here.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(in.Email)
	if _, err := s.repo.FindByEmailOrUsername(ctx, email, in.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:       email,
		Username:    in.Username,
		LastName:    in.LastName,
		FirstName:   in.FirstName,
		Password:    hashed,
		BirthDate:   in.BirthDate,
		City:        in.City,
		Country:     in.Country,
		CountryCode: in.CountryCode,
		Avatar:      in.Avatar,
		Company:     in.Company,
		JobPosition: in.JobPosition,
		Mobile:      in.Mobile,
		Role:        domain.ParseRole(in.Role),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Profile resolves a username and enforces access control. Existence is
// checked before authorization, so unknown usernames surface not-found even
// to requesters who would not be allowed to view them.
func (s *UserService) Profile(ctx context.Context, username string, requester domain.Identity) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !requester.CanViewProfile(username) {
		s.log.Debug().
			Str("requester", requester.Username).
			Str("target", username).
			Msg("profile access denied")
		return nil, domain.ErrForbidden
	}

	return user, nil
}

// MyProfile returns the requester's own record, keyed by verified email.
func (s *UserService) MyProfile(ctx context.Context, requester domain.Identity) (*domain.User, error) {
	if requester.IsZero() || requester.Email == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByEmail(ctx, strings.ToLower(requester.Email))
}

// VerifyCredentials resolves identifier as email or username and checks the
// password against the stored hash.
func (s *UserService) VerifyCredentials(ctx context.Context, identifier, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmailOrUsername(ctx, strings.ToLower(identifier), identifier)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}
