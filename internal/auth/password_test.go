package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if err := ComparePassword(hash, "secret1"); err != nil {
		t.Fatalf("expected password to match")
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatalf("expected password mismatch")
	}
}

func TestPasswordHashingIsSalted(t *testing.T) {
	first, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	second, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if first == second {
		t.Fatalf("equal plaintexts must produce distinct hashes")
	}
}
