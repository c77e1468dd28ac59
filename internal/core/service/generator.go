package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/userhub/account-system/internal/core/domain"
	"github.com/userhub/account-system/internal/core/ports"
)

const (
	// GenerateMin and GenerateMax bound the count accepted by Generate.
	GenerateMin = 1
	GenerateMax = 1000

	minAge = 18
	maxAge = 65
)

// birthDateFormat is the calendar-date layout used in generated artifacts.
const birthDateFormat = "2006-01-02"

// Generator produces plausible randomized user records for demo and test
// data. It never touches the repository: generated records are returned as
// a downloadable artifact, not written to storage.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator returns a Generator. A seed of 0 randomizes output; a fixed
// seed makes it deterministic for tests.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed), now: time.Now}
}

// Generate returns exactly count synthetic records. The caller is expected
// to have validated count against [GenerateMin, GenerateMax].
func (g *Generator) Generate(count int) []ports.GeneratedUser {
	users := make([]ports.GeneratedUser, count)
	for i := range users {
		users[i] = g.randomUser()
	}
	return users
}

// randomUser builds one record. Username and email derive from the same
// first/last name pair; the remaining fields are independently randomized.
func (g *Generator) randomUser() ports.GeneratedUser {
	f := g.faker

	firstName := f.FirstName()
	lastName := f.LastName()
	username := deriveUsername(firstName, lastName, f.Number(1, 9999))
	email := deriveEmail(firstName, lastName, f.DomainName())

	role := domain.RoleUser
	if f.Bool() {
		role = domain.RoleAdmin
	}

	now := g.now()
	birthDate := f.DateRange(
		now.AddDate(-maxAge, 0, 0),
		now.AddDate(-minAge, 0, 0),
	)

	return ports.GeneratedUser{
		FirstName:   firstName,
		LastName:    lastName,
		BirthDate:   birthDate.Format(birthDateFormat),
		City:        f.City(),
		Country:     f.Country(),
		CountryCode: f.CountryAbr(),
		Avatar:      f.ImageURL(200, 200),
		Company:     f.Company(),
		JobPosition: f.JobTitle(),
		Mobile:      f.Phone(),
		Username:    username,
		Email:       email,
		Password:    f.Password(true, true, true, false, false, f.Number(6, 10)),
		Role:        string(role),
	}
}

func deriveUsername(firstName, lastName string, n int) string {
	return strings.ToLower(fmt.Sprintf("%s.%s%d", sanitize(firstName), sanitize(lastName), n))
}

func deriveEmail(firstName, lastName, domainName string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s@%s", sanitize(firstName), sanitize(lastName), domainName))
}

// sanitize strips characters that would make a derived username or email
// address invalid (spaces, apostrophes).
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
