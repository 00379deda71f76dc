package validation

import "unicode/utf8"

// MaxPasswordStrength is the highest score PasswordStrength can return
const MaxPasswordStrength = 5

// PasswordStrength scores a password from 0 to 5 for UI feedback.
// One point each for: at least 8 characters, an uppercase letter, a lowercase
// letter, a digit, and a character that is neither letter nor digit.
func PasswordStrength(password string) int {
	score := 0
	if utf8.RuneCountInString(password) >= minPasswordLength {
		score++
	}

	c := classify(password)
	for _, present := range []bool{c.upper, c.lower, c.digit, c.other} {
		if present {
			score++
		}
	}
	return score
}

type charClasses struct {
	upper   bool
	lower   bool
	digit   bool
	other   bool // anything outside A-Z, a-z, 0-9
	special bool // a member of specialChars
}

func classify(s string) charClasses {
	var c charClasses
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.other = true
			if isSpecial(r) {
				c.special = true
			}
		}
	}
	return c
}
