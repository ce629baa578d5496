// Package policy implements the registration/password-change input rules
// of §4.1, grounded on original_source/microservices/utils/input_sanitizer.py's
// validate_password and its SQL_INJECTION_PATTERNS allowlist-by-rejection
// approach.
package policy

import (
	"regexp"
	"unicode"

	"github.com/arenaforge/duel-server/internal/apierr"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 128
)

var allowedPunctuation = "!@#$%^&*()-_=+[]{};:,.?"

var sqlShapedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|ALTER|EXEC|UNION|SCRIPT)\b`),
	regexp.MustCompile(`(--|#|/\*|\*/)`),
	regexp.MustCompile(`(?i)\bOR\b.*=.*|\bAND\b.*=.*`),
	regexp.MustCompile(`0x[0-9a-fA-F]+`),
	regexp.MustCompile(`(?i)\bCHAR\b|\bASCII\b|\bSUBSTRING\b`),
}

// ValidatePassword enforces §4.1's policy: length 8-128, at least one
// digit, at least one allowlisted punctuation character, and no
// SQL-shaped substrings.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return apierr.Invalidf("password must be at least %d characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return apierr.Invalidf("password must be at most %d characters", maxPasswordLen)
	}

	var hasDigit, hasPunct bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case containsRune(allowedPunctuation, r):
			hasPunct = true
		}
	}
	if !hasDigit {
		return apierr.Invalidf("password must contain at least one digit")
	}
	if !hasPunct {
		return apierr.Invalidf("password must contain at least one of %q", allowedPunctuation)
	}

	for _, p := range sqlShapedPatterns {
		if p.MatchString(password) {
			return apierr.Invalidf("password contains disallowed characters")
		}
	}
	return nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
