package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAgent   Role = "agent"
	RoleAnalyst Role = "analyst"
)

type InvitationStatus string

const (
	InvitationUninvited InvitationStatus = "uninvited"
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
)

// Identity records are owned by the identity services and read-only here.
// The JSON tags match the camelCase wire format those services expose.

type User struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type Employee struct {
	ID               string           `json:"id"`
	ClientID         string           `json:"clientId"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Role             Role             `json:"role"`
	InvitationStatus InvitationStatus `json:"invitationStatus"`
	InvitationDate   time.Time        `json:"invitationDate"`
}

type Client struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmailIncidents string `json:"emailIncidents"`
}

type CreatorKind string

const (
	CreatorKindUser     CreatorKind = "user"
	CreatorKindEmployee CreatorKind = "employee"
)

// Creator is the polymorphic created_by reference. Exactly one of User or
// Employee is set, matching Kind.
type Creator struct {
	Kind     CreatorKind
	User     *User
	Employee *Employee
}
