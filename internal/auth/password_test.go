package auth

import "testing"

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector; digests on disk from older deployments must
	// keep verifying.
	digest := HashPassword("password")
	want := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if digest != want {
		t.Errorf("HashPassword(\"password\") = %s, want %s", digest, want)
	}

	if HashPassword("secret123") != HashPassword("secret123") {
		t.Error("equal passwords must produce equal digests")
	}
	if HashPassword("secret123") == HashPassword("secret124") {
		t.Error("different passwords produced the same digest")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret123")

	if !VerifyPassword("secret123", digest) {
		t.Error("correct password did not verify")
	}
	if VerifyPassword("wrong-password", digest) {
		t.Error("wrong password verified")
	}
	if VerifyPassword("secret123", "") {
		t.Error("empty digest verified")
	}
}
