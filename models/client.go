package models

import "time"

// ClientStatus is the lifecycle state of a client relationship.
type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "active"
	ClientStatusPending ClientStatus = "pending"
	ClientStatusClosed  ClientStatus = "closed"
)

// Valid reports whether s is one of the known client statuses.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusPending, ClientStatusClosed:
		return true
	}
	return false
}

// Client is a persisted client record. A client is owned by exactly one
// manager and may additionally be visible to other managers through
// [ClientShare] rows; sharing grants read/manage access without changing
// ownership.
//
// Slug is globally unique and addresses the client's public portfolio page.
type Client struct {
	ClientID  string       `json:"id"`
	ManagerID string       `json:"manager_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Status    ClientStatus `json:"status"`
	Slug      string       `json:"slug"`

	// LastAccessed is bumped when the client views their portfolio.
	LastAccessed *time.Time `json:"last_accessed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientWithDetails is a Client enriched with list-page aggregates.
type ClientWithDetails struct {
	Client

	// PropertyCount is the number of properties currently assigned.
	PropertyCount int `json:"property_count"`
}

// ClientShare grants another manager access to a client without transferring
// ownership. A client can be shared at most once with any given manager.
type ClientShare struct {
	ShareID             string    `json:"id"`
	ClientID            string    `json:"client_id"`
	SharedWithManagerID string    `json:"shared_with_manager_id"`
	SharedByManagerID   string    `json:"shared_by_manager_id"`
	CreatedAt           time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}
