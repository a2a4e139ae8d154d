package transport

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/organilive/storefront/domain"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{8,15}$`)
)

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// Validate applies the registration form rules and returns per-field
// messages, empty when the request is acceptable.
func (r *RegisterRequest) Validate() map[string]string {
	fields := make(map[string]string)

	if len(strings.TrimSpace(r.FirstName)) < 2 {
		fields["first_name"] = "first name must have at least 2 characters"
	}
	if len(strings.TrimSpace(r.LastName)) < 2 {
		fields["last_name"] = "last name must have at least 2 characters"
	}
	switch {
	case r.Email == "":
		fields["email"] = "email is required"
	case !emailPattern.MatchString(r.Email):
		fields["email"] = "email is not valid"
	}
	switch {
	case r.Phone == "":
		fields["phone"] = "phone is required"
	case !phonePattern.MatchString(r.Phone):
		fields["phone"] = "phone is not valid"
	}
	switch {
	case r.Password == "":
		fields["password"] = "password is required"
	case len(r.Password) < 8:
		fields["password"] = "password must have at least 8 characters"
	case !passwordStrongEnough(r.Password):
		fields["password"] = "password must contain an uppercase letter, a lowercase letter and a digit"
	}

	return fields
}

func passwordStrongEnough(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is a partial profile edit; absent fields stay
// untouched.
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Avatar    *string `json:"avatar"`
}

func (r *ProfileUpdateRequest) Patch() domain.UserPatch {
	return domain.UserPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Avatar:    r.Avatar,
	}
}

// PreferencesUpdateRequest replaces preference sections wholesale.
type PreferencesUpdateRequest struct {
	Notifications *domain.Notifications `json:"notifications"`
	Language      *string               `json:"language"`
	Region        *string               `json:"region"`
	Theme         *string               `json:"theme"`
	Privacy       *domain.Privacy       `json:"privacy"`
}

func (r *PreferencesUpdateRequest) Patch() domain.PreferencesPatch {
	return domain.PreferencesPatch{
		Notifications: r.Notifications,
		Language:      r.Language,
		Region:        r.Region,
		Theme:         r.Theme,
		Privacy:       r.Privacy,
	}
}

// ActivityRequest appends one entry to the session's history.
type ActivityRequest struct {
	Type        string `json:"type"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// CartAddRequest bumps a product's cart quantity by Quantity (which may
// be negative to decrement); zero defaults to one.
type CartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
