package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !Verify("s3cret", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if Verify("wrong", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
}
