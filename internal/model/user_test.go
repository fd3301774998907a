package model

import "testing"

func TestUser_CachedRoundTrip(t *testing.T) {
	user := &User{ID: 42, Name: "Alice"}

	cached := user.ToCachedUser()
	if cached.Name != "Alice" {
		t.Errorf("cached name = %q, want %q", cached.Name, "Alice")
	}

	restored := cached.ToUser(42)
	if *restored != *user {
		t.Errorf("restored = %+v, want %+v", restored, user)
	}
}

func TestCachedUser_ToUserUsesKeyID(t *testing.T) {
	cached := &CachedUser{Name: "Bob"}

	user := cached.ToUser(7)
	if user.ID != 7 {
		t.Errorf("ID = %d, want 7", user.ID)
	}
}
