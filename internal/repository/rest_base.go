package repository

import (
	"context"
	"net/http"

	circuitbreaker "github.com/abcall/incident-query-service/internal/infrastructure/circuit-breaker"
	"github.com/abcall/incident-query-service/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

// restBase holds what every REST-backed identity repository needs: the
// downstream base URL, an optional static bearer token and a circuit breaker
// guarding the transport.
type restBase struct {
	baseURL string
	token   string
	cb      *gobreaker.CircuitBreaker[httpclient.HttpResponse]
}

func createRestBase(baseURL string, token string, breakerName string) restBase {
	return restBase{
		baseURL: baseURL,
		token:   token,
		cb:      circuitbreaker.CreateCircuitBreaker(breakerName),
	}
}

func (r *restBase) authenticatedGet(ctx context.Context, url string) (httpclient.HttpResponse, error) {
	headers := map[string]string{}
	if r.token != "" {
		headers["Authorization"] = "Bearer " + r.token
	}

	return r.cb.Execute(func() (httpclient.HttpResponse, error) {
		return httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:     url,
			Method:  http.MethodGet,
			Headers: headers,
		})
	})
}
