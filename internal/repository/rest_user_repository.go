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

type RestUserRepositoryImpl struct {
	restBase
}

func CreateNewRestUserRepository(baseURL string, token string) UserRepository {
	return &RestUserRepositoryImpl{restBase: createRestBase(baseURL, token, "user-service")}
}

func (r *RestUserRepositoryImpl) GetUser(ctx context.Context, userID string, clientID string) (*domain.User, error) {
	resp, err := r.authenticatedGet(ctx, fmt.Sprintf("%s/api/v1/users/%s/%s", r.baseURL, clientID, userID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUser").Msg("")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var user domain.User
		if err := json.Unmarshal(resp.Body, &user); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetUser").Msg("")
			return nil, err
		}
		return &user, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Str("component", "GetUser").Msg("unexpected response from user service")
		return nil, errs.ErrUpstreamService
	}
}
