package hasher

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := New(bcrypt.MinCost)

	hashed, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatalf("expected hash, got plaintext back")
	}
	if !h.Verify("s3cret", hashed) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("wrong", hashed) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := New(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestCostFallback(t *testing.T) {
	h := New(99)
	if h.cost != DefaultCost {
		t.Fatalf("expected cost %d, got %d", DefaultCost, h.cost)
	}

	h = New(-1)
	if h.cost != DefaultCost {
		t.Fatalf("expected cost %d, got %d", DefaultCost, h.cost)
	}
}

func TestHashesAreSalted(t *testing.T) {
	h := New(bcrypt.MinCost)

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}
