package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abcall/incident-query-service/internal/domain"
	"github.com/abcall/incident-query-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// Employees are served by the client service, so this repository points at the
// same base URL as RestClientRepositoryImpl.
type RestEmployeeRepositoryImpl struct {
	restBase
}

func CreateNewRestEmployeeRepository(baseURL string, token string) EmployeeRepository {
	return &RestEmployeeRepositoryImpl{restBase: createRestBase(baseURL, token, "client-service-employees")}
}

func (r *RestEmployeeRepositoryImpl) GetEmployee(ctx context.Context, employeeID string, clientID string) (*domain.Employee, error) {
	resp, err := r.authenticatedGet(ctx, fmt.Sprintf("%s/api/v1/employees/%s/%s", r.baseURL, clientID, employeeID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetEmployee").Msg("")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var employee domain.Employee
		if err := json.Unmarshal(resp.Body, &employee); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetEmployee").Msg("")
			return nil, err
		}
		return &employee, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Str("component", "GetEmployee").Msg("unexpected response from client service")
		return nil, errs.ErrUpstreamService
	}
}
