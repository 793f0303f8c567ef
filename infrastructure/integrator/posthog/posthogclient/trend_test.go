package posthogclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	posthogdomain "github.com/vfg2006/daily-report/infrastructure/integrator/posthog/domain"
	"github.com/vfg2006/daily-report/internal/config"
)

func TestPostHogClient_QueryTrend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/4321/insights", r.URL.Path)
		assert.Equal(t, "Bearer phx_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"events": [{"id": "$pageview", "type": "events"}],
			"date_from": "2026-10-15",
			"date_to": "2026-10-15",
			"insight": "TRENDS"
		}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[{"label":"$pageview","count":42,"data":[40,null,2],"days":["2026-10-15"]}]}`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		PostHog: config.PostHog{APIKey: "phx_secret", ProjectID: "4321", Host: server.URL + "/"},
	})

	resp, err := client.QueryTrend(context.Background(), TrendParams{
		Event:    posthogdomain.EventPageView,
		DateFrom: "2026-10-15",
		DateTo:   "2026-10-15",
	})

	require.NoError(t, err)
	require.Len(t, resp.Result, 1)
	assert.Len(t, resp.Result[0].Data, 3)
	assert.Nil(t, resp.Result[0].Data[1])
	assert.Equal(t, int64(42), resp.Sum())
}

func TestPostHogClient_QueryTrend_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"authentication_error","code":"invalid_api_key","detail":"Invalid personal API key.","attr":null}`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		PostHog: config.PostHog{APIKey: "bad", ProjectID: "1", Host: server.URL},
	})

	_, err := client.QueryTrend(context.Background(), TrendParams{Event: posthogdomain.EventSessionStart})

	require.Error(t, err)
	var apiErr *posthogdomain.ErrorResponse
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "posthog: 401 invalid_api_key: Invalid personal API key.", err.Error())
}

func TestPostHogClient_QueryTrend_MissingCredentials(t *testing.T) {
	client := NewClient(&config.Config{PostHog: config.PostHog{APIKey: "phx"}})

	_, err := client.QueryTrend(context.Background(), TrendParams{Event: posthogdomain.EventPageView})

	var missing *config.MissingConfigError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "POSTHOG_PROJECT_ID", missing.Name)
}

func TestTrendResponse_Sum(t *testing.T) {
	one, half := 1.0, 0.5
	var nilResp *posthogdomain.TrendResponse

	assert.Equal(t, int64(0), nilResp.Sum())
	assert.Equal(t, int64(0), (&posthogdomain.TrendResponse{}).Sum())
	assert.Equal(t, int64(2), (&posthogdomain.TrendResponse{
		Result: []posthogdomain.TrendSeries{{Data: []*float64{&one, nil, &half, &half}}},
	}).Sum())
}
