package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_Get(t *testing.T) {
	var gotQuery, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"value":42}`))
	}))
	defer server.Close()

	api := NewAPI(server.URL)
	var out struct {
		Value int `json:"value"`
	}
	err := api.Get(context.Background(), "/thing", url.Values{"q": {"x"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
	assert.Equal(t, "q=x", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
}

func TestAPI_GetInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	var out map[string]any
	err := NewAPI(server.URL).Get(context.Background(), "/", nil, &out)
	assert.Error(t, err)
}
