package repository

import (
	"context"

	"github.com/abcall/incident-query-service/internal/domain"
)

type IncidentRepository interface {
	GetIncidentsByReporter(ctx context.Context, clientID string, reporterID string) (data []domain.Incident, err error)
	GetIncidentsByAssignee(ctx context.Context, clientID string, assigneeID string, offset int64, limit int64) (data []domain.Incident, err error)
	CountIncidentsByAssignee(ctx context.Context, clientID string, assigneeID string) (count int64, err error)
	GetIncidentsByClient(ctx context.Context, clientID string) (data []domain.Incident, err error)
	GetIncidentByID(ctx context.Context, clientID string, incidentID string) (incident domain.Incident, err error)
	GetIncidentHistory(ctx context.Context, clientID string, incidentID string) (entries []domain.HistoryEntry, err error)
}

// Identity repositories return nil without an error when the record does not
// exist; absence is data, not a failure.

type UserRepository interface {
	GetUser(ctx context.Context, userID string, clientID string) (user *domain.User, err error)
}

type EmployeeRepository interface {
	GetEmployee(ctx context.Context, employeeID string, clientID string) (employee *domain.Employee, err error)
}

type ClientRepository interface {
	GetClient(ctx context.Context, clientID string) (client *domain.Client, err error)
}
