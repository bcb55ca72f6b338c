package service

import (
	"context"

	"github.com/abcall/incident-query-service/internal/domain"
	"github.com/abcall/incident-query-service/internal/dto"
	"github.com/abcall/incident-query-service/internal/repository"
	pkgdto "github.com/abcall/incident-query-service/pkg/dto"
	"github.com/abcall/incident-query-service/pkg/errs"
	"github.com/abcall/incident-query-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var allowedPageSizes = []int{5, 10, 20}

type IncidentServiceImpl struct {
	incidentRepo repository.IncidentRepository
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	clientRepo   repository.ClientRepository
}

func CreateNewIncidentService(incidentRepo repository.IncidentRepository, userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository, clientRepo repository.ClientRepository) IncidentService {
	return &IncidentServiceImpl{
		incidentRepo: incidentRepo,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
	}
}

func (s *IncidentServiceImpl) GetUserIncidents(ctx context.Context, claims dto.UserClaims) (data []dto.UserIncidentResponse, err error) {
	incidents, err := s.incidentRepo.GetIncidentsByReporter(ctx, claims.ClientID, claims.Subject)
	if err != nil {
		return
	}

	data = make([]dto.UserIncidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		history, err := s.incidentRepo.GetIncidentHistory(ctx, incident.ClientID, incident.ID)
		if err != nil {
			return nil, err
		}

		data = append(data, dto.UserIncidentResponse{
			ID:      incident.ID,
			Name:    incident.Name,
			Channel: string(incident.Channel),
			History: historyToResponse(history),
		})
	}

	return data, nil
}

// GetEmployeeIncidents serves the paginated assignee view. The count and the
// page fetch share the same filter and ordering but run as two independent
// queries; the totals may be stale relative to the page under concurrent
// writes.
func (s *IncidentServiceImpl) GetEmployeeIncidents(ctx context.Context, claims dto.UserClaims, filter pkgdto.Filter) (data dto.EmployeeIncidentsResponse, err error) {
	if !isAllowedPageSize(filter.PageSize) {
		return data, errs.ErrInvalidPageSize
	}

	if filter.PageNumber < 1 {
		return data, errs.ErrInvalidPageNumber
	}

	totalIncidents, err := s.incidentRepo.CountIncidentsByAssignee(ctx, claims.ClientID, claims.Subject)
	if err != nil {
		return
	}

	totalPages := (int(totalIncidents) + filter.PageSize - 1) / filter.PageSize

	offset := int64(filter.PageNumber-1) * int64(filter.PageSize)
	incidents, err := s.incidentRepo.GetIncidentsByAssignee(ctx, claims.ClientID, claims.Subject, offset, int64(filter.PageSize))
	if err != nil {
		return
	}

	// Enrichments are independent of each other, so they run concurrently.
	// The indexed slice keeps the response in fetch order no matter which
	// lookup finishes first; the first failure fails the whole request.
	enriched := make([]dto.EmployeeIncidentResponse, len(incidents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(filter.PageSize)

	for i, incident := range incidents {
		i, incident := i, incident
		g.Go(func() error {
			resp, err := s.buildEmployeeIncident(gctx, incident)
			if err != nil {
				return err
			}

			enriched[i] = resp
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return
	}

	data.Incidents = enriched
	data.TotalPages = totalPages
	data.CurrentPage = filter.PageNumber
	data.TotalIncidents = int(totalIncidents)

	return data, nil
}

func (s *IncidentServiceImpl) GetClientIncidents(ctx context.Context, clientID string) (data []dto.IncidentSummaryResponse, err error) {
	client, err := s.clientRepo.GetClient(ctx, clientID)
	if err != nil {
		return
	}

	if client == nil {
		return nil, errs.ErrNotFound
	}

	incidents, err := s.incidentRepo.GetIncidentsByClient(ctx, clientID)
	if err != nil {
		return
	}

	// A tenant with zero incidents gets an empty list, not an error.
	data = make([]dto.IncidentSummaryResponse, 0, len(incidents))
	for _, incident := range incidents {
		history, err := s.incidentRepo.GetIncidentHistory(ctx, incident.ClientID, incident.ID)
		if err != nil {
			return nil, err
		}

		if len(history) == 0 {
			log.Ctx(ctx).Error().Str("component", "GetClientIncidents").Str("incident_id", incident.ID).Msg("incident has no history")
			return nil, errs.ErrDataIntegrity
		}

		data = append(data, dto.IncidentSummaryResponse{
			ID:         incident.ID,
			Name:       incident.Name,
			Channel:    string(incident.Channel),
			FilingDate: utils.FormatTimestamp(history[0].Date),
			Status:     string(history[len(history)-1].Action),
		})
	}

	return data, nil
}

func (s *IncidentServiceImpl) GetIncidentDetail(ctx context.Context, claims dto.UserClaims, incidentID string) (data dto.IncidentDetailResponse, err error) {
	incident, err := s.incidentRepo.GetIncidentByID(ctx, claims.ClientID, incidentID)
	if err != nil {
		return
	}

	reporter, err := s.userRepo.GetUser(ctx, incident.ReportedBy, incident.ClientID)
	if err != nil {
		return
	}

	if reporter == nil {
		log.Ctx(ctx).Error().Str("component", "GetIncidentDetail").Str("incident_id", incident.ID).Str("user_id", incident.ReportedBy).Msg("reporter not found")
		return data, errs.ErrDataIntegrity
	}

	creator, err := s.resolveCreator(ctx, incident.CreatedBy, incident.ClientID)
	if err != nil {
		return
	}

	assignee, err := s.employeeRepo.GetEmployee(ctx, incident.AssignedTo, incident.ClientID)
	if err != nil {
		return
	}

	if assignee == nil {
		log.Ctx(ctx).Error().Str("component", "GetIncidentDetail").Str("incident_id", incident.ID).Str("employee_id", incident.AssignedTo).Msg("assignee not found")
		return data, errs.ErrDataIntegrity
	}

	history, err := s.incidentRepo.GetIncidentHistory(ctx, incident.ClientID, incident.ID)
	if err != nil {
		return
	}

	data.ID = incident.ID
	data.ClientID = incident.ClientID
	data.Name = incident.Name
	data.Channel = string(incident.Channel)
	data.ReportedBy = dto.IdentityResponse{
		ID:    reporter.ID,
		Name:  reporter.Name,
		Email: reporter.Email,
		Role:  string(domain.CreatorKindUser),
	}
	data.CreatedBy = creatorToResponse(creator)
	data.AssignedTo = dto.IdentityResponse{
		ID:    assignee.ID,
		Name:  assignee.Name,
		Email: assignee.Email,
		Role:  string(assignee.Role),
	}
	data.History = historyToResponse(history)

	return data, nil
}

func (s *IncidentServiceImpl) buildEmployeeIncident(ctx context.Context, incident domain.Incident) (resp dto.EmployeeIncidentResponse, err error) {
	reporter, err := s.userRepo.GetUser(ctx, incident.ReportedBy, incident.ClientID)
	if err != nil {
		return
	}

	// A valid incident always has a resolvable reporter.
	if reporter == nil {
		log.Ctx(ctx).Error().Str("component", "buildEmployeeIncident").Str("incident_id", incident.ID).Str("user_id", incident.ReportedBy).Msg("reporter not found")
		return resp, errs.ErrDataIntegrity
	}

	history, err := s.incidentRepo.GetIncidentHistory(ctx, incident.ClientID, incident.ID)
	if err != nil {
		return
	}

	if len(history) == 0 {
		log.Ctx(ctx).Error().Str("component", "buildEmployeeIncident").Str("incident_id", incident.ID).Msg("incident has no history")
		return resp, errs.ErrDataIntegrity
	}

	resp.ID = incident.ID
	resp.Name = incident.Name
	resp.ReportedBy = dto.ReportedByResponse{
		ID:    reporter.ID,
		Name:  reporter.Name,
		Email: reporter.Email,
	}
	resp.FilingDate = utils.FormatTimestamp(history[0].Date)
	resp.Status = string(history[len(history)-1].Action)

	return resp, nil
}

// resolveCreator resolves the polymorphic created_by reference. The user store
// takes priority when the id is ambiguous between the two identity stores.
func (s *IncidentServiceImpl) resolveCreator(ctx context.Context, creatorID string, clientID string) (creator domain.Creator, err error) {
	user, err := s.userRepo.GetUser(ctx, creatorID, clientID)
	if err != nil {
		return
	}

	if user != nil {
		return domain.Creator{Kind: domain.CreatorKindUser, User: user}, nil
	}

	employee, err := s.employeeRepo.GetEmployee(ctx, creatorID, clientID)
	if err != nil {
		return
	}

	if employee != nil {
		return domain.Creator{Kind: domain.CreatorKindEmployee, Employee: employee}, nil
	}

	log.Ctx(ctx).Error().Str("component", "resolveCreator").Str("creator_id", creatorID).Msg("creator not found")
	return creator, errs.ErrDataIntegrity
}

func creatorToResponse(creator domain.Creator) dto.IdentityResponse {
	if creator.Kind == domain.CreatorKindUser {
		return dto.IdentityResponse{
			ID:    creator.User.ID,
			Name:  creator.User.Name,
			Email: creator.User.Email,
			Role:  string(domain.CreatorKindUser),
		}
	}

	return dto.IdentityResponse{
		ID:    creator.Employee.ID,
		Name:  creator.Employee.Name,
		Email: creator.Employee.Email,
		Role:  string(creator.Employee.Role),
	}
}

func historyToResponse(history []domain.HistoryEntry) []dto.HistoryEntryResponse {
	entries := make([]dto.HistoryEntryResponse, 0, len(history))
	for _, entry := range history {
		entries = append(entries, dto.HistoryEntryResponse{
			Seq:         entry.Seq,
			Date:        utils.FormatTimestamp(entry.Date),
			Action:      string(entry.Action),
			Description: entry.Description,
		})
	}

	return entries
}

func isAllowedPageSize(size int) bool {
	for _, allowed := range allowedPageSizes {
		if size == allowed {
			return true
		}
	}

	return false
}
