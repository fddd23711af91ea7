package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidSubdomain   = errors.New("invalid subdomain")
	ErrInvalidIBAN        = errors.New("invalid IBAN")
	ErrInvalidDescription = errors.New("invalid description")
)

// Validation constants
const (
	MaxNameLength        = 255
	MinNameLength        = 1
	MaxDescriptionLength = 1000
	MaxSubdomainLength   = 63
)

var (
	subdomainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	ibanCharsRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
)

// ValidateName validates a club, member or bank account display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateSubdomain validates a club subdomain label.
func ValidateSubdomain(subdomain string) error {
	if subdomain == "" || len(subdomain) > MaxSubdomainLength {
		return fmt.Errorf("%w: must be 1-%d characters", ErrInvalidSubdomain, MaxSubdomainLength)
	}

	if !subdomainRegex.MatchString(subdomain) {
		return fmt.Errorf("%w: %q is not a valid DNS label", ErrInvalidSubdomain, subdomain)
	}

	return nil
}

// ValidateIBAN validates an IBAN: character classes, length and the mod-97
// checksum from ISO 13616.
func ValidateIBAN(iban string) error {
	normalized := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))

	if !ibanCharsRegex.MatchString(normalized) {
		return fmt.Errorf("%w: malformed", ErrInvalidIBAN)
	}

	// Move the country code and check digits to the end, map letters to
	// numbers (A=10..Z=35) and take the remainder mod 97.
	rearranged := normalized[4:] + normalized[:4]

	remainder := 0
	for _, r := range rearranged {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
			remainder = (remainder*10 + v) % 97
		default:
			v = int(r-'A') + 10
			remainder = (remainder*100 + v) % 97
		}
	}

	if remainder != 1 {
		return fmt.Errorf("%w: checksum failed", ErrInvalidIBAN)
	}

	return nil
}

// ValidateDescription validates the free-text description of a ledger entry.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
