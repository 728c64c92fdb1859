package auth

import (
	"context"
)

// CredentialVerifier is the only credential path in the system: the core
// stores and compares hashes, never plaintext.
type CredentialVerifier interface {
	Hash(plaintext string) (string, error)
	Verify(hash string, candidate string) bool
}

// AuthService defines the session gates for the admin console and the
// employee self-service portal
type AuthService interface {
	// LoginAdmin verifies the admin gate password and issues an admin token
	LoginAdmin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)

	// LoginEmployee verifies an employee's link + password and issues an
	// employee token
	LoginEmployee(ctx context.Context, req EmployeeLoginRequest) (TokenResponse, error)
}
