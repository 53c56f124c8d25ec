package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.org", "first.last+tag@sub.domain.co"}
	invalid := []string{"", "no-at-sign", "user@", "@example.org", "user@host"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("passwords under 8 characters should be rejected")
	}
	if ok, msg := ValidatePassword("long enough"); !ok {
		t.Errorf("valid password rejected: %s", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeInput = %q, want %q", got, "helloworld")
	}
}
