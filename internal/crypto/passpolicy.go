package crypto

import (
	"unicode"
	"unicode/utf8"
)

// MinPasswordLen is the minimum accepted password length in characters.
const MinPasswordLen = 10

// IsStrongPassword reports whether the password satisfies the complexity
// policy: at least MinPasswordLen characters containing at least one
// lowercase letter, one uppercase letter, one digit and one character that
// is neither a letter nor a digit. The string is scanned once.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			lower = true
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsDigit(c):
			digit = true
		case !unicode.IsLetter(c):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
