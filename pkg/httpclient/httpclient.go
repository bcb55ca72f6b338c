package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpRequest is a struct to hold request parameters
type HttpRequest struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

// HttpResponse holds the status code and raw body of a completed request
type HttpResponse struct {
	StatusCode int
	Body       []byte
}

// SendRequest sends an HTTP request based on the given HttpRequest struct
func SendRequest(ctx context.Context, req HttpRequest) (HttpResponse, error) {
	request, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewBuffer(req.Body))
	if err != nil {
		return HttpResponse{}, fmt.Errorf("failed to create request: %v", err)
	}

	// Add headers to the request
	for key, value := range req.Headers {
		request.Header.Set(key, value)
	}

	// Create an HTTP client with a timeout
	client := &http.Client{Timeout: 10 * time.Second}

	// Send the request
	response, err := client.Do(request)
	if err != nil {
		return HttpResponse{}, fmt.Errorf("request failed: %v", err)
	}
	defer response.Body.Close()

	// Read the response body
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return HttpResponse{StatusCode: response.StatusCode}, fmt.Errorf("failed to read response body: %v", err)
	}

	return HttpResponse{StatusCode: response.StatusCode, Body: body}, nil
}
