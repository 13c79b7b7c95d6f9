package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt digest of the password. The embedded random
// salt means the same password never produces the same digest twice.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
