package reporting

import (
	"context"

	"github.com/vfg2006/daily-report/internal/domain"
)

// CampaignFetcher obtém as métricas de e-mail marketing. Falhas vêm dentro do próprio resultado.
type CampaignFetcher interface {
	FetchCampaignMetrics(ctx context.Context) domain.CampaignMetrics
}

// TrafficFetcher obtém as métricas de tráfego do site do dia anterior
type TrafficFetcher interface {
	FetchTrafficMetrics(ctx context.Context) domain.TrafficMetrics
}
