package auth

import "testing"

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()

	token, err := store.Create(Session{UserID: 1, Username: "john_doe", FullName: "John Doe"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Create returned an empty token")
	}

	session, err := store.Get(token)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if session == nil {
		t.Fatal("Get returned nil for a live session")
	}
	if session.UserID != 1 || session.Username != "john_doe" {
		t.Errorf("got session %+v, want user 1 john_doe", session)
	}
	if session.Token != token {
		t.Errorf("session token = %q, want %q", session.Token, token)
	}

	if err := store.Delete(token); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	session, err = store.Get(token)
	if err != nil {
		t.Fatalf("Get after delete returned error: %v", err)
	}
	if session != nil {
		t.Error("expected nil session after delete")
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()
	session, err := store.Get("no-such-token")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if session != nil {
		t.Error("expected nil session for unknown token")
	}
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	first, _ := store.Create(Session{UserID: 1})
	second, _ := store.Create(Session{UserID: 1})
	if first == second {
		t.Error("two sessions got the same token")
	}
}

func TestCookieCodecRoundTrip(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	value := codec.Encode("some-opaque-token")
	token, ok := codec.Decode(value)
	if !ok {
		t.Fatal("Decode rejected a value produced by Encode")
	}
	if token != "some-opaque-token" {
		t.Errorf("decoded token = %q, want %q", token, "some-opaque-token")
	}
}

func TestCookieCodecRejectsTampering(t *testing.T) {
	codec := NewCookieCodec("test-secret")
	value := codec.Encode("some-opaque-token")

	cases := []struct {
		name  string
		value string
	}{
		{"swapped token", "other-token" + value[len("some-opaque-token"):]},
		{"truncated signature", value[:len(value)-2]},
		{"no separator", "some-opaque-token"},
		{"empty value", ""},
		{"empty token", value[len("some-opaque-token"):]},
	}
	for _, tc := range cases {
		if _, ok := codec.Decode(tc.value); ok {
			t.Errorf("%s: Decode accepted %q", tc.name, tc.value)
		}
	}
}

func TestCookieCodecSecretsDiffer(t *testing.T) {
	value := NewCookieCodec("secret-a").Encode("token")
	if _, ok := NewCookieCodec("secret-b").Decode(value); ok {
		t.Error("cookie signed with one secret decoded with another")
	}
}
