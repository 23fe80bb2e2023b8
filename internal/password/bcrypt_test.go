package password

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "password1" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("password1", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("password2", hash) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestBcryptHasher_SaltRandomization(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ")
	}
	if !h.Verify("samepassword", first) || !h.Verify("samepassword", second) {
		t.Fatalf("both hashes must verify against the original input")
	}
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(-1)

	hash, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("password1", hash) {
		t.Fatalf("Verify rejected the original password")
	}
}
