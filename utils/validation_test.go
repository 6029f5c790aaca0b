package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+15551234567", true},
		{"1 (555) 123-4567", true},
		{"555-123-4567", true},
		{"abc", false},
		{"", false},
		{"+0123456789", false},
		{"12345678901234567", false},
	}
	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("+1 (555) 123-4567"); got != "15551234567" {
		t.Errorf("NormalizePhone = %q", got)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co", true},
		{"jane@host", false},
		{"not-an-email", false},
		{"", false},
		{"a b@example.com", false},
	}
	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
