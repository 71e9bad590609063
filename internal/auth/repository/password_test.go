package repository

import "testing"

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "password123",
		},
		{
			name:     "complex password",
			password: "P@ssw0rd!#$%^&*()",
		},
		{
			name:     "unicode password",
			password: "mật khẩu 123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}

			if hash == "" {
				t.Error("HashPassword() returned empty string")
			}
			if hash == tt.password {
				t.Error("HashPassword() returned the original password")
			}

			if !CheckPasswordHash(tt.password, hash) {
				t.Error("CheckPasswordHash() returned false for correct password")
			}
		})
	}
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if CheckPasswordHash("wrong-password", hash) {
		t.Error("CheckPasswordHash() returned true for wrong password")
	}
	if CheckPasswordHash("correct-password", "not-a-bcrypt-hash") {
		t.Error("CheckPasswordHash() returned true for malformed hash")
	}
}

func TestHashPassword_SaltedOutput(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	// bcrypt salts every hash, so two hashes of the same input must differ
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}
