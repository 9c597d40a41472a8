package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9+\-\s]*$`)
)

// ValidateAmount checks that a money amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateID checks that an entity identifier is not blank.
func ValidateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s must not be blank", ErrInvalidArgument, field)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email must not be blank", ErrInvalidArgument)
	}

	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("%w: email is not in a valid format", ErrInvalidArgument)
	}

	return nil
}

// ValidatePhone validates phone number format. An empty phone number is valid;
// the field is optional.
func ValidatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return nil
	}

	if !phoneRegex.MatchString(strings.TrimSpace(phone)) {
		return fmt.Errorf("%w: phone number contains invalid characters", ErrInvalidArgument)
	}

	return nil
}
