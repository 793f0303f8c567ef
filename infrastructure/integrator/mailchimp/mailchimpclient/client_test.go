package mailchimpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mailchimpdomain "github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/pkg/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		Mailchimp: config.Mailchimp{
			APIKey:  "secret-us21",
			Server:  "us21",
			BaseURL: server.URL + "/3.0/",
		},
	})
}

func TestMailchimpClient_ListCampaigns(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/3.0/campaigns", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("count"))
		assert.Equal(t, "sent", r.URL.Query().Get("status"))
		assert.Equal(t, "send_time", r.URL.Query().Get("sort_field"))
		assert.Equal(t, "DESC", r.URL.Query().Get("sort_dir"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "anystring", user)
		assert.Equal(t, "secret-us21", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"campaigns":[{"id":"a1","status":"sent","emails_sent":120,"settings":{"title":"Outubro"}},{"id":"b2","status":"sent"}],"total_items":2}`))
	})

	campaigns, err := client.ListCampaigns(context.Background(), ListCampaignsParams{
		Count:     10,
		Status:    "sent",
		SortField: "send_time",
		SortDir:   "DESC",
	})

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "a1", campaigns[0].ID)
	assert.Equal(t, int64(120), campaigns[0].EmailsSent)
	assert.Equal(t, "Outubro", campaigns[0].Settings.Title)
	assert.Equal(t, "b2", campaigns[1].ID)
}

func TestMailchimpClient_ListCampaigns_NoCampaignsField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_items":0}`))
	})

	campaigns, err := client.ListCampaigns(context.Background(), ListCampaignsParams{Count: 10})

	require.NoError(t, err)
	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}

func TestMailchimpClient_GetCampaignReport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3.0/reports/42ab", r.URL.Path)
		w.Write([]byte(`{"id":"42ab","emails_sent":100,"opens":{"opens_total":40,"unique_opens":25},"clicks":{"clicks_total":9,"unique_clicks":5}}`))
	})

	report, err := client.GetCampaignReport(context.Background(), "42ab")

	require.NoError(t, err)
	assert.Equal(t, int64(100), report.EmailsSent)
	assert.Equal(t, int64(25), report.Opens.UniqueOpens)
	assert.Equal(t, int64(5), report.Clicks.UniqueClicks)
}

func TestMailchimpClient_ProblemResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"https://mailchimp.com/developer/marketing/docs/errors/","title":"Resource Not Found","status":404,"detail":"The requested resource could not be found.","instance":"abc"}`))
	})

	_, err := client.GetCampaignReport(context.Background(), "missing")

	require.Error(t, err)
	var problem *mailchimpdomain.ErrorResponse
	require.True(t, errors.As(err, &problem))
	assert.Equal(t, 404, problem.Status)
	assert.Equal(t, "mailchimp: 404 Resource Not Found: The requested resource could not be found.", err.Error())
}

func TestMailchimpClient_NonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream down`))
	})

	_, err := client.ListCampaigns(context.Background(), ListCampaignsParams{})

	require.Error(t, err)
	var statusErr *utils.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestMailchimpClient_MissingCredentials(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	tests := []struct {
		name     string
		cfg      config.Mailchimp
		expected string
	}{
		{
			name:     "Sem chave",
			cfg:      config.Mailchimp{BaseURL: server.URL, Server: "us21"},
			expected: "missing required configuration: MAILCHIMP_API_KEY",
		},
		{
			name:     "Sem servidor e sem URL base",
			cfg:      config.Mailchimp{APIKey: "key"},
			expected: "missing required configuration: MAILCHIMP_SERVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&config.Config{Mailchimp: tt.cfg})

			_, err := client.ListCampaigns(context.Background(), ListCampaignsParams{})

			require.Error(t, err)
			var missing *config.MissingConfigError
			assert.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.expected, err.Error())
		})
	}

	assert.False(t, called)
}

func TestMailchimpClient_BaseURLFromServer(t *testing.T) {
	c := &MailchimpClient{config: &config.Config{Mailchimp: config.Mailchimp{Server: " us21 "}}}

	base, err := c.baseURL()

	require.NoError(t, err)
	assert.Equal(t, "https://us21.api.mailchimp.com/3.0", base)
}
