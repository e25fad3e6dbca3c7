// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
)

// SaltLen is the size of the per-user MAC key. Existing credentials were
// produced with 128-byte keys, so this must not change without re-keying
// every stored user.
const SaltLen = 128

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// HashPassword returns the HMAC-SHA512 digest of password keyed with the
// per-user salt. The salt is the MAC key, not a prefix or suffix.
func HashPassword(password, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write(password)
	return mac.Sum(nil)
}

// VerifyPassword verifies password against the stored digest and salt.
func VerifyPassword(password, salt, expected []byte) bool {
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(got, expected) == 1
}
