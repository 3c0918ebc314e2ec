package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"writeit-server/pkg/token"
)

func TestAuthMiddleware(t *testing.T) {
	const secret = "middleware-test-secret"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetUserID(r)))
	})
	protected := AuthMiddleware(secret)(next)

	validToken, err := token.Generate("user-42", time.Hour, secret)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	expiredToken, _ := token.Generate("user-42", -time.Hour, secret)
	refreshToken, _ := token.GenerateRefresh("user-42", time.Hour, secret)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantBody:   "user-42",
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			header:     "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer " + expiredToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "refresh token rejected",
			header:     "Bearer " + refreshToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rr.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := GetUserID(req); got != "" {
		t.Errorf("GetUserID() = %q, want empty", got)
	}
}
