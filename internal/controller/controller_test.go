package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abcall/incident-query-service/internal/dto"
	"github.com/abcall/incident-query-service/internal/middleware"
	pkgdto "github.com/abcall/incident-query-service/pkg/dto"
	"github.com/abcall/incident-query-service/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIncidentService struct {
	userIncidents     []dto.UserIncidentResponse
	employeeIncidents dto.EmployeeIncidentsResponse
	clientIncidents   []dto.IncidentSummaryResponse
	detail            dto.IncidentDetailResponse
	err               error

	lastFilter pkgdto.Filter
	calls      int
}

func (s *fakeIncidentService) GetUserIncidents(ctx context.Context, claims dto.UserClaims) ([]dto.UserIncidentResponse, error) {
	s.calls++
	return s.userIncidents, s.err
}

func (s *fakeIncidentService) GetEmployeeIncidents(ctx context.Context, claims dto.UserClaims, filter pkgdto.Filter) (dto.EmployeeIncidentsResponse, error) {
	s.calls++
	s.lastFilter = filter
	return s.employeeIncidents, s.err
}

func (s *fakeIncidentService) GetClientIncidents(ctx context.Context, clientID string) ([]dto.IncidentSummaryResponse, error) {
	s.calls++
	return s.clientIncidents, s.err
}

func (s *fakeIncidentService) GetIncidentDetail(ctx context.Context, claims dto.UserClaims, incidentID string) (dto.IncidentDetailResponse, error) {
	s.calls++
	return s.detail, s.err
}

func setupServer(svc *fakeIncidentService) *echo.Echo {
	e := echo.New()
	g := e.Group("/api/v1")
	CreateIncidentController(g, svc, middleware.RequiresToken())
	return e
}

func userInfoHeader(t *testing.T, claims jwt.MapClaims) string {
	encoded, err := utils.EncodeUserInfo(claims)
	require.NoError(t, err)
	return encoded
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "emp-1",
		"cid":  "acme",
		"role": "agent",
		"aud":  "incidents",
	}
}

func doRequest(e *echo.Echo, target string, userInfo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userInfo != "" {
		req.Header.Set(middleware.UserInfoHeader, userInfo)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetEmployeeIncidentsMissingToken(t *testing.T) {
	svc := &fakeIncidentService{}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/employees/me/incidents", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGetEmployeeIncidentsMissingClaimField(t *testing.T) {
	svc := &fakeIncidentService{}
	e := setupServer(svc)

	claims := validClaims()
	delete(claims, "cid")

	rec := doRequest(e, "/api/v1/employees/me/incidents", userInfoHeader(t, claims))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cid"`)
	assert.Zero(t, svc.calls)
}

func TestGetEmployeeIncidentsDefaultsPagination(t *testing.T) {
	svc := &fakeIncidentService{}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/employees/me/incidents", userInfoHeader(t, validClaims()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.lastFilter.PageSize)
	assert.Equal(t, 1, svc.lastFilter.PageNumber)
}

func TestGetEmployeeIncidentsNonNumericPageSize(t *testing.T) {
	svc := &fakeIncidentService{}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/employees/me/incidents?page_size=abc", userInfoHeader(t, validClaims()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGetEmployeeIncidentsEnvelope(t *testing.T) {
	svc := &fakeIncidentService{
		employeeIncidents: dto.EmployeeIncidentsResponse{
			Incidents:      []dto.EmployeeIncidentResponse{},
			TotalPages:     3,
			CurrentPage:    2,
			TotalIncidents: 12,
		},
	}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/employees/me/incidents?page_size=5&page_number=2", userInfoHeader(t, validClaims()))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Incidents      []json.RawMessage `json:"incidents"`
			TotalPages     int               `json:"totalPages"`
			CurrentPage    int               `json:"currentPage"`
			TotalIncidents int               `json:"totalIncidents"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 3, body.Data.TotalPages)
	assert.Equal(t, 2, body.Data.CurrentPage)
	assert.Equal(t, 12, body.Data.TotalIncidents)
	assert.NotNil(t, body.Data.Incidents)
}

func TestGetIncidentDetailInvalidID(t *testing.T) {
	svc := &fakeIncidentService{}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/incidents/not-a-uuid", userInfoHeader(t, validClaims()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGetIncidentDetailValidID(t *testing.T) {
	svc := &fakeIncidentService{detail: dto.IncidentDetailResponse{ID: "0d3f8c5e-4a5b-4c6d-8e9f-0a1b2c3d4e5f"}}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/incidents/0d3f8c5e-4a5b-4c6d-8e9f-0a1b2c3d4e5f", userInfoHeader(t, validClaims()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestGetClientIncidentsEmptyListIsSuccess(t *testing.T) {
	svc := &fakeIncidentService{clientIncidents: []dto.IncidentSummaryResponse{}}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/clients/acme/incidents", userInfoHeader(t, validClaims()))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Data   []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestGetUserIncidents(t *testing.T) {
	svc := &fakeIncidentService{userIncidents: []dto.UserIncidentResponse{
		{ID: "i-1", Name: "lost badge", Channel: "mobile", History: []dto.HistoryEntryResponse{}},
	}}
	e := setupServer(svc)

	rec := doRequest(e, "/api/v1/users/me/incidents", userInfoHeader(t, validClaims()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"channel":"mobile"`)
}
