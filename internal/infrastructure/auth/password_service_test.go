package auth

import "testing"

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(10)

	hash, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}

	if !svc.Verify(hash, "secret123") {
		t.Error("expected verification to succeed for correct password")
	}
	if svc.Verify(hash, "wrongpassword") {
		t.Error("expected verification to fail for wrong password")
	}
}

func TestPasswordServiceImpl_SaltedHashes(t *testing.T) {
	svc := NewPasswordService(10)

	first, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Per-user random salt: identical passwords never share a digest
	if first == second {
		t.Error("expected different digests for the same password")
	}
}

func TestPasswordServiceImpl_DefaultCost(t *testing.T) {
	svc := NewPasswordService(0)

	hash, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Verify(hash, "secret123") {
		t.Error("expected verification to succeed with default cost")
	}
}
