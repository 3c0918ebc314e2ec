package token

import (
	"testing"
	"time"
)

const testSecret = "test-secret-key-32-characters!!!"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		expiration time.Duration
	}{
		{
			name:       "standard expiration",
			userID:     "user-123",
			expiration: 15 * time.Minute,
		},
		{
			name:       "short expiration",
			userID:     "user-456",
			expiration: 1 * time.Second,
		},
		{
			name:       "long expiration",
			userID:     "user-789",
			expiration: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Generate(tt.userID, tt.expiration, testSecret)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			if tok == "" {
				t.Fatal("Generate() returned empty token")
			}

			claims, err := Validate(tok, testSecret)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}

			if claims.UserID != tt.userID {
				t.Errorf("Validate() user id = %s, want %s", claims.UserID, tt.userID)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	valid, _ := Generate("user-1", time.Hour, testSecret)
	expired, _ := Generate("user-1", -time.Hour, testSecret)
	refresh, _ := GenerateRefresh("user-1", time.Hour, testSecret)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", valid, false},
		{"expired token", expired, true},
		{"garbage token", "not.a.token", true},
		{"empty token", "", true},
		{"wrong secret", mustGenerate(t, "user-1", "other-secret"), true},
		{"refresh token on access path", refresh, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.token, testSecret)

			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateRefresh(t *testing.T) {
	refresh, err := GenerateRefresh("user-2", time.Hour, testSecret)
	if err != nil {
		t.Fatalf("GenerateRefresh() error = %v", err)
	}

	claims, err := ValidateRefresh(refresh, testSecret)
	if err != nil {
		t.Fatalf("ValidateRefresh() error = %v", err)
	}
	if claims.UserID != "user-2" {
		t.Errorf("ValidateRefresh() user id = %s, want user-2", claims.UserID)
	}

	access, _ := Generate("user-2", time.Hour, testSecret)
	if _, err := ValidateRefresh(access, testSecret); err == nil {
		t.Error("ValidateRefresh() accepted an access token")
	}
}

func mustGenerate(t *testing.T, userID, secret string) string {
	t.Helper()
	tok, err := Generate(userID, time.Hour, secret)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return tok
}
