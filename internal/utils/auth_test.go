package utils

import "testing"

func TestAdminJWTRoundTrip(t *testing.T) {
	token, err := GenerateAdminJWT("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	username, err := ParseAdminJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if username != "admin" {
		t.Fatalf("expected admin, got %q", username)
	}
}

func TestParseAdminJWT_Garbage(t *testing.T) {
	if _, err := ParseAdminJWT("not.a.token"); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("barrel-racer-2024")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !IsArgon2Hash(hash) {
		t.Fatalf("expected argon2 format, got %q", hash)
	}

	ok, err := VerifyPassword("barrel-racer-2024", hash)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestGenerateOrderQR(t *testing.T) {
	uri, err := GenerateOrderQR("order-123")
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	const prefix = "data:image/png;base64,"
	if len(uri) <= len(prefix) || uri[:len(prefix)] != prefix {
		t.Fatalf("expected data URI, got %q", uri[:30])
	}
}
