package utils

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Indonesian numbers: 08xxx local form or +62 international, 9 to 13 digits
var phoneRegex = regexp.MustCompile(`^(\+62|62|0)8[0-9]{7,11}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ParseDate parses a YYYY-MM-DD form value
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// ValidBillingDay keeps the billing anchor between 1 and 28 so every month
// has the day
func ValidBillingDay(day int) bool {
	return day >= 1 && day <= 28
}

// ValidUUID reports whether a path parameter is a well-formed UUID, so a
// malformed ID answers 400 instead of leaking a database error
func ValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
