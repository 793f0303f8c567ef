package posthogclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	posthogdomain "github.com/vfg2006/daily-report/infrastructure/integrator/posthog/domain"
	"github.com/vfg2006/daily-report/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	QueryTrend(ctx context.Context, params TrendParams) (*posthogdomain.TrendResponse, error)
}

type PostHogClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &PostHogClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
