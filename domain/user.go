package domain

import (
	"strings"
	"time"
)

// User is a registered account exactly as it sits in the stored user
// list, password included. The password never leaves this type: session
// projections are built through NewSessionUser.
type User struct {
	ID           int64        `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Email        string       `json:"email"`
	Password     string       `json:"password,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Avatar       string       `json:"avatar,omitempty"`
	RegisteredAt time.Time    `json:"registered_at"`
	Stats        *Statistics  `json:"stats,omitempty"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	Activity     []Activity   `json:"activity,omitempty"`
}

// SessionUser is the authenticated user's projection: the matching User
// with the password stripped and derived fields filled in at login time.
type SessionUser struct {
	ID           int64       `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Avatar       string      `json:"avatar,omitempty"`
	RegisteredAt time.Time   `json:"registered_at"`
	LastAccess   time.Time   `json:"last_access"`
	Stats        Statistics  `json:"stats"`
	Preferences  Preferences `json:"preferences"`
	Activity     []Activity  `json:"activity,omitempty"`
}

// Statistics is the per-account usage summary shown on the dashboard.
type Statistics struct {
	OrdersPlaced      int     `json:"orders_placed"`
	ProductsPurchased int     `json:"products_purchased"`
	TotalSavings      float64 `json:"total_savings"`
	LoyaltyPoints     int     `json:"loyalty_points"`
}

// Preferences groups the account settings editable from the preferences
// screen. Top-level sections are replaced wholesale when patched.
type Preferences struct {
	Notifications Notifications `json:"notifications"`
	Language      string        `json:"language"`
	Region        string        `json:"region"`
	Theme         string        `json:"theme"`
	Privacy       Privacy       `json:"privacy"`
}

type Notifications struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

type Privacy struct {
	PublicProfile bool `json:"public_profile"`
	ShareData     bool `json:"share_data"`
}

// Activity is one entry of the session's activity history, newest first.
type Activity struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Action      string    `json:"action"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// DefaultStatistics returns the demo statistics applied when the stored
// record carries none.
func DefaultStatistics() Statistics {
	return Statistics{
		OrdersPlaced:      12,
		ProductsPurchased: 45,
		TotalSavings:      125000,
		LoyaltyPoints:     850,
	}
}

// DefaultPreferences returns the preference set applied at first login.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: Notifications{Email: true, Push: true, SMS: false},
		Language:      "es",
		Region:        "CO",
		Theme:         "light",
		Privacy:       Privacy{PublicProfile: false, ShareData: false},
	}
}

// NewSessionUser builds the session projection of u: password dropped,
// missing derived fields back-filled with defaults, last access stamped.
func NewSessionUser(u User, now time.Time) SessionUser {
	s := SessionUser{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Avatar:       u.Avatar,
		RegisteredAt: u.RegisteredAt,
		LastAccess:   now,
		Activity:     u.Activity,
	}
	if s.FirstName == "" {
		s.FirstName = "Usuario"
	}
	if s.LastName == "" {
		s.LastName = "Demo"
	}
	if s.Phone == "" {
		s.Phone = "+57 300 123 4567"
	}
	if u.Stats != nil {
		s.Stats = *u.Stats
	} else {
		s.Stats = DefaultStatistics()
	}
	if u.Preferences != nil {
		s.Preferences = *u.Preferences
	} else {
		s.Preferences = DefaultPreferences()
	}
	return s
}

// DisplayName joins the name parts for greetings and avatars.
func (s *SessionUser) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// UserPatch carries the fields a profile edit may change. Nil fields are
// left untouched (shallow merge).
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// IsZero reports whether the patch changes nothing.
func (p UserPatch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Phone == nil && p.Avatar == nil
}

// ApplyToSession merges the patch into a session projection.
func (p UserPatch) ApplyToSession(s *SessionUser) {
	if s == nil {
		return
	}
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Avatar != nil {
		s.Avatar = *p.Avatar
	}
}

// ApplyToUser merges the patch into a stored record.
func (p UserPatch) ApplyToUser(u *User) {
	if u == nil {
		return
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}

// PreferencesPatch replaces preference sections wholesale, matching the
// shallow-merge behavior of the preferences screen.
type PreferencesPatch struct {
	Notifications *Notifications `json:"notifications,omitempty"`
	Language      *string        `json:"language,omitempty"`
	Region        *string        `json:"region,omitempty"`
	Theme         *string        `json:"theme,omitempty"`
	Privacy       *Privacy       `json:"privacy,omitempty"`
}

// Apply merges the patch into prefs.
func (p PreferencesPatch) Apply(prefs *Preferences) {
	if prefs == nil {
		return
	}
	if p.Notifications != nil {
		prefs.Notifications = *p.Notifications
	}
	if p.Language != nil {
		prefs.Language = *p.Language
	}
	if p.Region != nil {
		prefs.Region = *p.Region
	}
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
	if p.Privacy != nil {
		prefs.Privacy = *p.Privacy
	}
}
