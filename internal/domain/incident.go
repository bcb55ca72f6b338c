package domain

import "time"

type Channel string

const (
	ChannelWeb    Channel = "web"
	ChannelMobile Channel = "mobile"
	ChannelEmail  Channel = "email"
)

type Action string

const (
	ActionCreated   Action = "created"
	ActionEscalated Action = "escalated"
	ActionClosed    Action = "closed"
)

type Incident struct {
	ID           string    `bson:"_id"`
	ClientID     string    `bson:"client_id"`
	Name         string    `bson:"name"`
	Channel      Channel   `bson:"channel"`
	ReportedBy   string    `bson:"reported_by"`
	CreatedBy    string    `bson:"created_by"`
	AssignedTo   string    `bson:"assigned_to"`
	LastModified time.Time `bson:"last_modified"`
}

// HistoryEntry is an append-only record of an incident state transition.
// Seq 0 always exists and carries the created action.
type HistoryEntry struct {
	IncidentID  string    `bson:"incident_id"`
	ClientID    string    `bson:"client_id"`
	Seq         int       `bson:"seq"`
	Date        time.Time `bson:"date"`
	Action      Action    `bson:"action"`
	Description string    `bson:"description"`
}
