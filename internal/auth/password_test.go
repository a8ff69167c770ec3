package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		cost     int
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "pw1",
			cost:     4,
			wantErr:  nil,
		},
		{
			name:     "password at maximum length",
			password: strings.Repeat("a", 72),
			cost:     4,
			wantErr:  nil,
		},
		{
			name:     "password too long",
			password: strings.Repeat("a", 73),
			cost:     4,
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, tt.cost)
			if err != tt.wantErr {
				t.Errorf("HashPassword() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && hash == "" {
				t.Error("HashPassword() returned empty hash for valid password")
			}
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("pw1", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("pw1", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
	if err := CheckPassword("pw1", first); err != nil {
		t.Errorf("first hash should verify: %v", err)
	}
	if err := CheckPassword("pw1", second); err != nil {
		t.Errorf("second hash should verify: %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1", 4)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{
			name:     "correct password",
			password: "pw1",
			hash:     hash,
			wantErr:  nil,
		},
		{
			name:     "incorrect password",
			password: "wrong",
			hash:     hash,
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "hash of a different password",
			password: "pw2",
			hash:     hash,
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "malformed hash",
			password: "pw1",
			hash:     "not-a-bcrypt-hash",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "empty hash",
			password: "pw1",
			hash:     "",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckPassword(tt.password, tt.hash); err != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
