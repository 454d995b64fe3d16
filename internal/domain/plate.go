package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// canonicalPlate is the strict plate shape: three letters, a hyphen,
// three or four digits (e.g. "ABC-1234").
var canonicalPlate = regexp.MustCompile(`^[A-Z]{3}-\d{3,4}$`)

// FormatPlate canonicalizes free-text plate input as far as it can:
// strips everything but letters, digits and hyphens, uppercases, caps the
// letter segment at 3 and the digit segment at 4 characters, and inserts
// the hyphen when the input carries a letter run followed by a digit run.
//
// It is lenient on purpose — partial input like "AB" or "ABC" passes
// through unchanged so interactive callers can format as the user types.
// Use NormalizePlate before any session operation.
func FormatPlate(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	var letters, digits string
	hadHyphen := false
	if left, right, found := strings.Cut(cleaned, "-"); found {
		hadHyphen = true
		letters = takeRun(left, isLetter, 3)
		digits = takeRun(right, isDigit, 4)
	} else {
		letters = takeRun(cleaned, isLetter, 3)
		digits = takeRun(cleaned[len(leadingRun(cleaned, isLetter)):], isDigit, 4)
	}

	if digits == "" {
		if hadHyphen {
			return letters + "-"
		}
		return letters
	}
	return letters + "-" + digits
}

// NormalizePlate is the strict validator used before any session
// operation. It returns the canonical LLL-DDD[D] form, or ErrInvalidPlate
// when the input cannot canonicalize. Idempotent on its own outputs.
//
// Unlike FormatPlate it never truncates: input carrying more than 3
// letters or more than 4 digits is not a mistyped plate with extra
// characters, it is a different plate, and billing the wrong vehicle is
// worse than re-prompting.
func NormalizePlate(raw string) (string, error) {
	plate := FormatPlate(raw)
	if !canonicalPlate.MatchString(plate) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlate, raw)
	}

	var letters, digits int
	for _, r := range strings.ToUpper(raw) {
		switch {
		case r >= 'A' && r <= 'Z':
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	if letters > 3 || digits > 4 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlate, raw)
	}
	return plate, nil
}

func isLetter(r byte) bool { return r >= 'A' && r <= 'Z' }

func isDigit(r byte) bool { return r >= '0' && r <= '9' }

// takeRun returns the first up-to-max bytes of s that satisfy keep,
// skipping bytes that do not.
func takeRun(s string, keep func(byte) bool, max int) string {
	var b strings.Builder
	for i := 0; i < len(s) && b.Len() < max; i++ {
		if keep(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// leadingRun returns the longest prefix of s whose bytes satisfy keep.
func leadingRun(s string, keep func(byte) bool) string {
	for i := 0; i < len(s); i++ {
		if !keep(s[i]) {
			return s[:i]
		}
	}
	return s
}
