package controller

import (
	"strconv"

	"github.com/abcall/incident-query-service/internal/middleware"
	"github.com/abcall/incident-query-service/internal/service"
	pkgdto "github.com/abcall/incident-query-service/pkg/dto"
	"github.com/abcall/incident-query-service/pkg/errs"
	"github.com/abcall/incident-query-service/pkg/response"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize   = 5
	defaultPageNumber = 1
)

type Controller struct {
	service service.IncidentService
}

func CreateIncidentController(e *echo.Group, service service.IncidentService, requiresToken echo.MiddlewareFunc) {
	c := Controller{
		service: service,
	}
	e.GET("/users/me/incidents", c.GetUserIncidents, requiresToken)
	e.GET("/employees/me/incidents", c.GetEmployeeIncidents, requiresToken)
	e.GET("/clients/:client_id/incidents", c.GetClientIncidents, requiresToken)
	e.GET("/incidents/:incident_id", c.GetIncidentDetail, requiresToken)
}

func (c *Controller) GetUserIncidents(e echo.Context) error {
	claims, ok := middleware.GetUserClaims(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.GetUserIncidents(e.Request().Context(), claims)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetEmployeeIncidents(e echo.Context) error {
	claims, ok := middleware.GetUserClaims(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	filter := pkgdto.Filter{PageSize: defaultPageSize, PageNumber: defaultPageNumber}

	if raw := e.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetEmployeeIncidents").Msg("")
			return response.WriteErrorResponse(e, errs.ErrInvalidPageSize, nil)
		}
		filter.PageSize = pageSize
	}

	if raw := e.QueryParam("page_number"); raw != "" {
		pageNumber, err := strconv.Atoi(raw)
		if err != nil {
			log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetEmployeeIncidents").Msg("")
			return response.WriteErrorResponse(e, errs.ErrInvalidPageNumber, nil)
		}
		filter.PageNumber = pageNumber
	}

	resp, err := c.service.GetEmployeeIncidents(e.Request().Context(), claims, filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetClientIncidents(e echo.Context) error {
	clientID := e.Param("client_id")

	resp, err := c.service.GetClientIncidents(e.Request().Context(), clientID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetIncidentDetail(e echo.Context) error {
	claims, ok := middleware.GetUserClaims(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	incidentID := e.Param("incident_id")
	if _, err := uuid.Parse(incidentID); err != nil {
		return response.WriteErrorResponse(e, errs.ErrInvalidIncidentID, nil)
	}

	resp, err := c.service.GetIncidentDetail(e.Request().Context(), claims, incidentID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
