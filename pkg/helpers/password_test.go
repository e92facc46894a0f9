package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CompareHashAndPassword(hash, "secret1") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "secret2") {
		t.Error("wrong password accepted")
	}
	if CompareHashAndPassword(hash, "") {
		t.Error("empty password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
	if !CompareHashAndPassword(h2, "secret1") {
		t.Error("second hash rejected its own password")
	}
}
