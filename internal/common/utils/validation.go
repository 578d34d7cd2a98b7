package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/rupeebooks/backend/internal/domain/errors"
)

var (
	// DateRegex validates ISO 8601 date strings (YYYY-MM-DD)
	DateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// PANRegex validates permanent account numbers (AAAAA9999A)
	PANRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// ValidateISODate validates an ISO 8601 date string (YYYY-MM-DD)
func ValidateISODate(date string) error {
	if !DateRegex.MatchString(date) {
		return errors.NewValidationError("invalid date format, should be YYYY-MM-DD")
	}

	// Parse the date to ensure it's valid
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.NewValidationError("invalid date value")
	}

	return nil
}

// ValidateDateRange validates two ISO dates forming an inclusive period
func ValidateDateRange(startDate, endDate string) error {
	if err := ValidateISODate(startDate); err != nil {
		return err
	}
	if err := ValidateISODate(endDate); err != nil {
		return err
	}
	// ISO dates order lexicographically.
	if startDate > endDate {
		return errors.NewValidationError("startDate must not be after endDate")
	}
	return nil
}

// ValidatePAN validates a permanent account number. The empty string is
// accepted; whether a missing PAN is allowed is the caller's decision.
func ValidatePAN(pan string) error {
	if pan == "" {
		return nil
	}
	if !PANRegex.MatchString(pan) {
		return errors.NewValidationError("invalid PAN format, should be like ABCDE1234F")
	}
	return nil
}

// ValidateRequiredString validates that a string is not empty
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError(fieldName + " is required")
	}
	return nil
}
