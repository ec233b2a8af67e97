// Package validation holds the pure, per-keystroke form checks. Nothing here
// touches the network and nothing throws on malformed input; submit buttons
// are enabled exactly when the relevant *FormValid function returns true.
package validation

import "unicode"

// Tiered password messages; an empty password yields no message.
const (
	MsgPasswordTooShort = "minimum 6 digits"
	MsgPasswordNotDigit = "digits only"
)

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func ValidCode(code string) bool {
	return code != "" && len(code) <= 4 && allDigits(code)
}

func ValidName(name string) bool {
	return name != "" && len(name) <= 40
}

// ValidPrice checks the price field as entered. Digits only: fractional
// prices are not accepted at input, whole currency units only.
func ValidPrice(price string) bool {
	return price != "" && len(price) <= 20 && allDigits(price)
}

func ValidQuantity(quantity string) bool {
	return quantity != "" && len(quantity) <= 4 && allDigits(quantity)
}

func ValidEmail(email string) bool {
	return email != "" && len(email) <= 40
}

func ValidPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 10 && allDigits(password)
}

// PasswordError returns the tiered validation message for the password
// field, or "" when there is nothing to show.
func PasswordError(password string) string {
	switch {
	case password == "":
		return ""
	case len(password) < 6:
		return MsgPasswordTooShort
	case !allDigits(password):
		return MsgPasswordNotDigit
	default:
		return ""
	}
}

func ProductFormValid(code, name, price, quantity string) bool {
	return ValidCode(code) && ValidName(name) && ValidPrice(price) && ValidQuantity(quantity)
}

// EditFormValid covers the edit screen, where the code is shown read-only.
func EditFormValid(name, price, quantity string) bool {
	return ValidName(name) && ValidPrice(price) && ValidQuantity(quantity)
}

func LoginFormValid(email, password string) bool {
	return ValidEmail(email) && ValidPassword(password)
}
