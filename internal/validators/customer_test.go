package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odfbarbers/booking-api/internal/validators"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@shop.example.co", "x+tag@y.io"}
	invalid := []string{"", "plain", "no@tld", "@nouser.com", "two@@at.com"}

	for _, e := range valid {
		assert.True(t, validators.IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, validators.IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+1 555-1234567",
		"08012345678",
		"+234 (080) 1234-567",
		"12345678",
	}
	invalid := []string{
		"",
		"1234567",               // too short
		"123456789012345678901", // too long
		"phone number",
		"+1_555_1234",
	}

	for _, p := range valid {
		assert.True(t, validators.IsValidPhone(p), p)
	}
	for _, p := range invalid {
		assert.False(t, validators.IsValidPhone(p), p)
	}
}

func TestIsValidPostalCode(t *testing.T) {
	assert.True(t, validators.IsValidPostalCode("123456"))
	assert.False(t, validators.IsValidPostalCode("12345"))
	assert.False(t, validators.IsValidPostalCode("1234567"))
	assert.False(t, validators.IsValidPostalCode("12345a"))
	assert.False(t, validators.IsValidPostalCode(""))
}

func TestValidateCustomer(t *testing.T) {
	good := validators.CustomerFields{
		Name:       "A",
		Phone:      "+1 555-1234567",
		Email:      "a@b.com",
		Street:     "1 Main St",
		City:       "Lagos",
		PostalCode: "123456",
	}

	assert.Nil(t, validators.ValidateCustomer(good))

	t.Run("missing fields are named", func(t *testing.T) {
		problems := validators.ValidateCustomer(validators.CustomerFields{})
		assert.Equal(t, "required", problems["customer_name"])
		assert.Equal(t, "required", problems["customer_phone"])
		assert.Equal(t, "required", problems["customer_email"])
		assert.Equal(t, "required", problems["address_street"])
		assert.Equal(t, "required", problems["address_city"])
		assert.Equal(t, "required", problems["address_postal_code"])
	})

	t.Run("bad formats are named", func(t *testing.T) {
		bad := good
		bad.Phone = "nope"
		bad.Email = "nope"
		bad.PostalCode = "12"

		problems := validators.ValidateCustomer(bad)
		assert.Len(t, problems, 3)
		assert.Contains(t, problems, "customer_phone")
		assert.Contains(t, problems, "customer_email")
		assert.Contains(t, problems, "address_postal_code")
	})
}
