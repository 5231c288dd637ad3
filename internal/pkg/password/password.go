package password

import "golang.org/x/crypto/bcrypt"

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

// Hash hashes a password using bcrypt with a per-call random salt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
