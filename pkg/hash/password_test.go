package hash

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "correct-horse-battery",
			wantErr:  false,
		},
		{
			name:     "minimum length password",
			password: "12345678",
			wantErr:  false,
		},
		{
			name:     "too short",
			password: "1234567",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Hash(tt.password)

			if tt.wantErr {
				if err == nil {
					t.Error("Hash() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Hash() unexpected error = %v", err)
			}

			if h == tt.password {
				t.Error("Hash() returned the plaintext")
			}

			if !strings.HasPrefix(h, "$2a$12$") {
				t.Errorf("Hash() unexpected bcrypt prefix, got %s", h[:7])
			}
		})
	}
}

func TestHashSalted(t *testing.T) {
	h1, err := Hash("same-password-1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	h2, err := Hash("same-password-1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if h1 == h2 {
		t.Error("Hash() produced identical hashes for the same input, salt missing")
	}
}

func TestCompare(t *testing.T) {
	password := "pw-for-compare"
	h, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name      string
		candidate string
		wantErr   bool
	}{
		{"correct password", password, false},
		{"wrong password", "not-the-password", true},
		{"empty candidate", "", true},
		{"case sensitive", strings.ToUpper(password), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(h, tt.candidate)

			if tt.wantErr && err == nil {
				t.Error("Compare() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Compare() unexpected error = %v", err)
			}
		})
	}
}
