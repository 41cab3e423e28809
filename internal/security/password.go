package security

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from a plaintext password.
// bcrypt embeds a fresh random salt per call, so equal passwords never
// produce equal hashes.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a plaintext candidate.
func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
