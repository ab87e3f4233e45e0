package models

import "time"

// Manager represents an account entity used for authentication and ownership.
// A manager owns clients and curates the properties assigned to them; other
// managers gain access to a client only through an explicit share.
// Sensitive fields must never be exposed outside trusted boundaries.
type Manager struct {
	// ManagerID is the internal unique identifier of the manager.
	ManagerID string `json:"id"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// Name is the display name shown on admin pages and documents.
	Name string `json:"name"`

	// Phone is optional contact information.
	Phone string `json:"phone,omitempty"`

	// PasswordHash stores the bcrypt hash of the manager's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Manager model.
func (m Manager) TableName() string {
	return "property_managers"
}
