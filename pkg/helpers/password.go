package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from the plain text password.
// The salt and cost factor are encoded in the hash itself, so verification
// needs no extra state. An error here means bcrypt itself failed and is
// treated as fatal by callers, not as user input rejection.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the bcrypt hash.
// A wrong password is just false, never an error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
