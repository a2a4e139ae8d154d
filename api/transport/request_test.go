package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana@example.com",
		Password:  "Pass1234",
		Phone:     "+57 300 5555",
	}
}

func TestRegisterValidateAcceptsGoodForm(t *testing.T) {
	r := validRegister()
	assert.Empty(t, r.Validate())
}

func TestRegisterValidateNames(t *testing.T) {
	r := validRegister()
	r.FirstName = "A"
	r.LastName = "  B  "

	fields := r.Validate()
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
}

func TestRegisterValidateEmail(t *testing.T) {
	for _, email := range []string{"", "plain", "a@b", "a b@c.com"} {
		r := validRegister()
		r.Email = email
		assert.Contains(t, r.Validate(), "email", "email %q should be rejected", email)
	}
}

func TestRegisterValidatePhone(t *testing.T) {
	for _, phone := range []string{"", "123", "abc12345678", "+57 300 123 456 789 000"} {
		r := validRegister()
		r.Phone = phone
		assert.Contains(t, r.Validate(), "phone", "phone %q should be rejected", phone)
	}
}

func TestRegisterValidatePassword(t *testing.T) {
	cases := map[string]string{
		"":          "required",
		"Pa1":       "too short",
		"alllower1": "no uppercase",
		"ALLUPPER1": "no lowercase",
		"NoDigits":  "no digit",
	}
	for password, reason := range cases {
		r := validRegister()
		r.Password = password
		assert.Contains(t, r.Validate(), "password", "password %q: %s", password, reason)
	}
}

func TestProfilePatchCarriesOnlySetFields(t *testing.T) {
	name := "Lucia"
	r := ProfileUpdateRequest{FirstName: &name}

	patch := r.Patch()
	assert.Equal(t, &name, patch.FirstName)
	assert.Nil(t, patch.LastName)
	assert.Nil(t, patch.Email)
	assert.False(t, patch.IsZero())

	assert.True(t, (&ProfileUpdateRequest{}).Patch().IsZero())
}
