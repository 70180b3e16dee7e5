package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a decimal item ID. Any unsigned integer is an ID, zero included;
// signs, spaces inside the number and values that overflow int are rejected.
func ParseID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ToInt converts a decimal string to int, returning fallback on failure.
func ToInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}
