package posthogclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	posthogdomain "github.com/vfg2006/daily-report/infrastructure/integrator/posthog/domain"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/pkg/utils"
)

type TrendParams struct {
	Event    string
	DateFrom string
	DateTo   string
}

// QueryTrend executa uma consulta de tendência de um único evento no intervalo informado
func (c *PostHogClient) QueryTrend(ctx context.Context, params TrendParams) (*posthogdomain.TrendResponse, error) {
	apiKey, err := config.Require("POSTHOG_API_KEY", c.config.PostHog.APIKey)
	if err != nil {
		return nil, err
	}
	projectID, err := config.Require("POSTHOG_PROJECT_ID", c.config.PostHog.ProjectID)
	if err != nil {
		return nil, err
	}

	host := strings.TrimRight(strings.TrimSpace(c.config.PostHog.Host), "/")
	if host == "" {
		host = "https://app.posthog.com"
	}
	endpoint := fmt.Sprintf("%s/api/projects/%s/insights", host, url.PathEscape(projectID))

	query := posthogdomain.TrendQuery{
		Events:   []posthogdomain.TrendEvent{{ID: params.Event, Type: "events"}},
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
		Insight:  posthogdomain.InsightTrends,
	}
	payload, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a consulta")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("event", params.Event).Debug("posthog: trend query ", utils.PrettyJson(payload))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := utils.ReadResponse(resp)
	if err != nil {
		return nil, decodeError(err)
	}

	var response posthogdomain.TrendResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &response, nil
}

func decodeError(err error) error {
	var statusErr *utils.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var apiErr posthogdomain.ErrorResponse
	if jsonErr := json.Unmarshal(statusErr.Body, &apiErr); jsonErr != nil || apiErr.Detail == "" {
		return statusErr
	}
	apiErr.StatusCode = statusErr.StatusCode

	return &apiErr
}
