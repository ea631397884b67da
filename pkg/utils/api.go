package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type API struct {
	client  *http.Client
	baseURL string
}

// NewAPI returns a JSON client. The default client has no timeout; callers
// bound requests through the context.
func NewAPI(baseURL string) *API {
	return &API{client: http.DefaultClient, baseURL: baseURL}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Get issues a GET for baseURL+path and decodes the JSON body into v.
// The status code is not inspected.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
