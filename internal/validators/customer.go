package validators

import (
	"regexp"
	"strings"
)

// Customer-facing formats for the booking form.

var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	// Loose international format: optional +, then digits, spaces,
	// dashes and parentheses, 8 to 20 characters.
	phoneRe = regexp.MustCompile(`^\+?[0-9\s\-\(\)]{8,20}$`)
	// 6-digit postal codes.
	postalRe = regexp.MustCompile(`^\d{6}$`)
)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func IsValidPostalCode(code string) bool {
	return postalRe.MatchString(code)
}

type CustomerFields struct {
	Name       string
	Phone      string
	Email      string
	Street     string
	City       string
	PostalCode string
}

// ValidateCustomer reports every missing or malformed field by name so
// the caller can surface them all at once.
func ValidateCustomer(f CustomerFields) map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		problems["customer_name"] = "required"
	}

	switch {
	case strings.TrimSpace(f.Phone) == "":
		problems["customer_phone"] = "required"
	case !IsValidPhone(f.Phone):
		problems["customer_phone"] = "invalid format"
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		problems["customer_email"] = "required"
	case !IsValidEmail(f.Email):
		problems["customer_email"] = "invalid format"
	}

	if strings.TrimSpace(f.Street) == "" {
		problems["address_street"] = "required"
	}
	if strings.TrimSpace(f.City) == "" {
		problems["address_city"] = "required"
	}

	switch {
	case strings.TrimSpace(f.PostalCode) == "":
		problems["address_postal_code"] = "required"
	case !IsValidPostalCode(f.PostalCode):
		problems["address_postal_code"] = "must be 6 digits"
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}
