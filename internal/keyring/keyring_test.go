package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetToken(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	testToken := "abc123def456"

	err := SetToken(testToken)
	if err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	retrieved, err := GetToken()
	if err != nil {
		t.Fatalf("GetToken() failed: %v", err)
	}

	if retrieved != testToken {
		t.Errorf("GetToken() = %q, want %q", retrieved, testToken)
	}
}

func TestSetTokenEmpty(t *testing.T) {
	gokeyring.MockInit()

	err := SetToken("")
	if err == nil {
		t.Error("SetToken(\"\") should return an error")
	}
}

func TestGetTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeleteToken()

	_, err := GetToken()
	if err != ErrNotFound {
		t.Errorf("GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteToken(t *testing.T) {
	gokeyring.MockInit()

	if err := SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	if err := DeleteToken(); err != nil {
		t.Fatalf("DeleteToken() failed: %v", err)
	}

	// Verify it's gone
	_, err := GetToken()
	if err != ErrNotFound {
		t.Errorf("After DeleteToken(), GetToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteTokenNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteToken()

	err := DeleteToken()
	if err != ErrNotFound {
		t.Errorf("DeleteToken() error = %v, want %v", err, ErrNotFound)
	}
}

func TestHasToken(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteToken()
	if HasToken() {
		t.Error("HasToken() = true with empty keyring")
	}

	if err := SetToken("abc123"); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}
	if !HasToken() {
		t.Error("HasToken() = false after SetToken()")
	}
}
