package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))

	return hex.EncodeToString(h.Sum(nil))
}

// NormalizePhone strips formatting from a North American phone number and
// prefixes the country code 1 when it is missing. Numbers are assumed to be
// NANP: other country codes are not recognised, so "+44 20 7946 0958"
// becomes "1442079460958". The result only keys log hashes and is never
// dialled.
func NormalizePhone(phone string) string {
	phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "", "+", "").Replace(phone)
	if phone == "" {
		return ""
	}
	if !strings.HasPrefix(phone, "1") {
		phone = "1" + phone
	}
	return phone
}

// HashPhone hashes the normalized form of a phone number, so differently
// formatted entries of the same number hash alike.
func HashPhone(phone string) string {
	return HashString(NormalizePhone(phone))
}
