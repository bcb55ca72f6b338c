package middleware

import (
	"github.com/abcall/incident-query-service/internal/dto"
	"github.com/abcall/incident-query-service/pkg/errs"
	"github.com/abcall/incident-query-service/pkg/response"
	"github.com/abcall/incident-query-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// UserInfoHeader carries the caller's claims, decoded and forwarded by the
// API gateway as base64url JSON. Token validation happens upstream.
const UserInfoHeader = "X-Apigateway-Api-Userinfo"

const claimsContextKey = "claims"

// RequiresToken extracts the forwarded claims and rejects requests missing
// the header or any of the sub, cid, role and aud fields, naming the field.
func RequiresToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			encoded := c.Request().Header.Get(UserInfoHeader)
			if encoded == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			claims, err := utils.DecodeUserInfo(encoded)
			if err != nil {
				log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "RequiresToken").Msg("")
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			userClaims := dto.UserClaims{}
			fields := []struct {
				name string
				dst  *string
			}{
				{"sub", &userClaims.Subject},
				{"cid", &userClaims.ClientID},
				{"role", &userClaims.Role},
				{"aud", &userClaims.Audience},
			}

			for _, field := range fields {
				value, ok := claims[field.name].(string)
				if !ok || value == "" {
					return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, []response.ValidationError{{Field: field.name, Tag: "required"}})
				}
				*field.dst = value
			}

			c.Set(claimsContextKey, userClaims)

			return next(c)
		}
	}
}

// GetUserClaims returns the claims stored by RequiresToken.
func GetUserClaims(c echo.Context) (dto.UserClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(dto.UserClaims)
	return claims, ok
}
