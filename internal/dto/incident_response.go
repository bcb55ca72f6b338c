package dto

type HistoryEntryResponse struct {
	Seq         int    `json:"seq"`
	Date        string `json:"date"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

type UserIncidentResponse struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Channel string                 `json:"channel"`
	History []HistoryEntryResponse `json:"history"`
}

type ReportedByResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EmployeeIncidentResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	ReportedBy ReportedByResponse `json:"reportedBy"`
	FilingDate string             `json:"filingDate"`
	Status     string             `json:"status"`
}

type EmployeeIncidentsResponse struct {
	Incidents      []EmployeeIncidentResponse `json:"incidents"`
	TotalPages     int                        `json:"totalPages"`
	CurrentPage    int                        `json:"currentPage"`
	TotalIncidents int                        `json:"totalIncidents"`
}

type IncidentSummaryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Channel    string `json:"channel"`
	FilingDate string `json:"filingDate"`
	Status     string `json:"status"`
}

// IdentityResponse carries a resolved identity reference. Role is "user" when
// the reference resolved to a user, the employee's actual role otherwise.
type IdentityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type IncidentDetailResponse struct {
	ID         string                 `json:"id"`
	ClientID   string                 `json:"clientId"`
	Name       string                 `json:"name"`
	Channel    string                 `json:"channel"`
	ReportedBy IdentityResponse       `json:"reportedBy"`
	CreatedBy  IdentityResponse       `json:"createdBy"`
	AssignedTo IdentityResponse       `json:"assignedTo"`
	History    []HistoryEntryResponse `json:"history"`
}
