package security

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPasswordHash("secret", hash) {
		t.Error("CheckPasswordHash() = false for the correct password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("CheckPasswordHash() = true for a wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, expected distinct salts")
	}
}
