package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/userhub/account-system/internal/core/domain"
)

func TestGenerate_CountBounds(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	for _, count := range []int{0, -1, 1001} {
		if _, err := svc.Generate(context.Background(), count); !domain.IsValidation(err) {
			t.Fatalf("count %d: expected validation error, got %v", count, err)
		}
	}

	users, err := svc.Generate(context.Background(), 25)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(users) != 25 {
		t.Fatalf("expected 25 users, got %d", len(users))
	}
}

func TestGenerate_RecordsInternallyConsistent(t *testing.T) {
	gen := NewGenerator(42)
	now := time.Now()

	for _, u := range gen.Generate(100) {
		first := strings.ToLower(sanitize(u.FirstName))
		last := strings.ToLower(sanitize(u.LastName))

		if !strings.HasPrefix(u.Username, first+"."+last) {
			t.Fatalf("username %q not derived from name %s %s", u.Username, u.FirstName, u.LastName)
		}
		if !strings.HasPrefix(u.Email, first+"."+last+"@") {
			t.Fatalf("email %q not derived from name %s %s", u.Email, u.FirstName, u.LastName)
		}
		if len(u.CountryCode) != 2 {
			t.Fatalf("country code %q is not 2 characters", u.CountryCode)
		}
		if u.Role != string(domain.RoleAdmin) && u.Role != string(domain.RoleUser) {
			t.Fatalf("unexpected role %q", u.Role)
		}
		if len(u.Password) < 6 || len(u.Password) > 10 {
			t.Fatalf("password length %d out of [6,10]", len(u.Password))
		}

		birth, err := time.Parse(birthDateFormat, u.BirthDate)
		if err != nil {
			t.Fatalf("birth date %q not parseable: %v", u.BirthDate, err)
		}
		if birth.After(now.AddDate(-minAge, 0, 1)) || birth.Before(now.AddDate(-maxAge, 0, -1)) {
			t.Fatalf("birth date %s outside age range [%d,%d]", u.BirthDate, minAge, maxAge)
		}
		if u.Avatar == "" || !strings.HasPrefix(u.Avatar, "http") {
			t.Fatalf("expected avatar URL, got %q", u.Avatar)
		}
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	a := NewGenerator(7).Generate(5)
	b := NewGenerator(7).Generate(5)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded generators diverged at record %d", i)
		}
	}
}
