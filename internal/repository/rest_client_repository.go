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

type RestClientRepositoryImpl struct {
	restBase
}

func CreateNewRestClientRepository(baseURL string, token string) ClientRepository {
	return &RestClientRepositoryImpl{restBase: createRestBase(baseURL, token, "client-service")}
}

func (r *RestClientRepositoryImpl) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	resp, err := r.authenticatedGet(ctx, fmt.Sprintf("%s/api/v1/clients/%s", r.baseURL, clientID))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetClient").Msg("")
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var client domain.Client
		if err := json.Unmarshal(resp.Body, &client); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "GetClient").Msg("")
			return nil, err
		}
		return &client, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Str("component", "GetClient").Msg("unexpected response from client service")
		return nil, errs.ErrUpstreamService
	}
}
