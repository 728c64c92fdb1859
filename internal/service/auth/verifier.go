package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/auth"
)

type BcryptVerifier struct {
	cost int
}

func NewBcryptVerifier() auth.CredentialVerifier {
	return &BcryptVerifier{cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v *BcryptVerifier) Verify(hash string, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
