package utils

import "regexp"

// Syntactic check only: local@domain.tld with no whitespace or extra '@'.
// Deliverability (DNS/MX) is not verified here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmailAddress(email string) bool {
	return emailPattern.MatchString(email)
}
