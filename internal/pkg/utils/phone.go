package utils

import (
	"strings"
)

// EnsureLeadingPlus prepends '+' when the number does not already carry one.
// Empty input stays empty so required-field validation still fires.
func EnsureLeadingPlus(phone string) string {
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}

// NormalizeRoutingPhone strips spaces and hyphens anywhere in the number and
// guarantees a leading '+', so prefix matching always sees a canonical form.
// "966-512-345678" and "+966 512 345678" both normalize to "+966512345678".
func NormalizeRoutingPhone(phone string) string {
	s := strings.TrimSpace(phone)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return EnsureLeadingPlus(s)
}
