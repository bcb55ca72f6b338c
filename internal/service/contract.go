package service

import (
	"context"

	"github.com/abcall/incident-query-service/internal/dto"
	pkgdto "github.com/abcall/incident-query-service/pkg/dto"
)

type IncidentService interface {
	GetUserIncidents(ctx context.Context, claims dto.UserClaims) (data []dto.UserIncidentResponse, err error)
	GetEmployeeIncidents(ctx context.Context, claims dto.UserClaims, filter pkgdto.Filter) (data dto.EmployeeIncidentsResponse, err error)
	GetClientIncidents(ctx context.Context, clientID string) (data []dto.IncidentSummaryResponse, err error)
	GetIncidentDetail(ctx context.Context, claims dto.UserClaims, incidentID string) (data dto.IncidentDetailResponse, err error)
}
