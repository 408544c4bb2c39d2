package validation

import (
	"regexp"
	"unicode"
)

// Usernames: letters, digits, dots, hyphens and underscores, 3-32 chars.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9._-]{3,32}$`)

func IsValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// IsValidPassword enforces:
// - at least 8 characters
// - contains at least one letter
// - contains at least one number
// - contains at least one special character
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter, hasDigit, hasSpecial := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

// Symbols: 1-10 uppercase letters or dots (e.g. BRK.A). Callers upcase
// the input before matching.
var symbolRe = regexp.MustCompile(`^[A-Z.]{1,10}$`)

func IsValidSymbol(symbol string) bool {
	return symbolRe.MatchString(symbol)
}
