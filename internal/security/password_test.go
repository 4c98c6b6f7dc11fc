package security

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("expected password to be hashed")
	}
	if !CheckPassword(hash, "correct-horse") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected wrong password to fail")
	}
}

func TestGenerateOpaqueToken(t *testing.T) {
	first, err := GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second, err := GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if first == second {
		t.Fatal("expected tokens to differ")
	}
}
