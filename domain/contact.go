package domain

// ContactMessage is a contact-form submission forwarded to the external
// endpoint. Phone is optional.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ContactResult is the endpoint's acknowledgement.
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ContactInfo carries the display-only contact constants read from the
// environment at start. None of the values are validated.
type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	WhatsApp string `json:"whatsapp"`
}
