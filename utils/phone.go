package utils

import "strings"

// FormatPhone builds the international number WhatsApp expects: no spaces,
// dashes, plus sign or leading zeros, prefixed with the dialing code digits.
func FormatPhone(countryCode, phone string) string {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	clean = strings.TrimLeft(clean, "0")
	code := strings.TrimPrefix(strings.TrimSpace(countryCode), "+")

	if code == "" || strings.HasPrefix(clean, "+") {
		return strings.TrimPrefix(clean, "+")
	}
	return code + clean
}
