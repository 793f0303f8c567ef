package posthog

import (
	"context"
	"time"

	posthogdomain "github.com/vfg2006/daily-report/infrastructure/integrator/posthog/domain"
	"github.com/vfg2006/daily-report/infrastructure/integrator/posthog/posthogclient"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/internal/domain"
	"github.com/vfg2006/daily-report/pkg/log"
	"github.com/vfg2006/daily-report/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Integrator struct {
	cfg    *config.Config
	Client posthogclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client posthogclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// FetchTrafficMetrics soma page views e inícios de sessão do dia anterior (UTC).
// As duas consultas rodam em paralelo; se qualquer uma falhar o resultado inteiro é
// zerado com Error preenchido, sem aproveitar a outra série.
func (s *Integrator) FetchTrafficMetrics(ctx context.Context) domain.TrafficMetrics {
	logger := log.ForContext(ctx)

	if err := s.cfg.PostHog.Validate(); err != nil {
		logger.WithError(err).Error("posthog: configuração incompleta")
		return domain.NewFailedTrafficMetrics(err)
	}

	date := utils.Yesterday(s.now())

	var pageViews, sessions int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.trendSum(gctx, posthogdomain.EventPageView, date)
		pageViews = total
		return err
	})
	g.Go(func() error {
		total, err := s.trendSum(gctx, posthogdomain.EventSessionStart, date)
		sessions = total
		return err
	})

	if err := g.Wait(); err != nil {
		logger.WithFields(log.Fields{
			"date":  date,
			"error": err.Error(),
		}).Error("posthog: failed to query trends")
		return domain.NewFailedTrafficMetrics(err)
	}

	metrics := domain.TrafficMetrics{
		PageViews: pageViews,
		Sessions:  sessions,
		NewUsers:  domain.EstimateNewUsers(sessions),
	}

	logger.WithFields(log.Fields{
		"date":       date,
		"page_views": metrics.PageViews,
		"sessions":   metrics.Sessions,
		"new_users":  metrics.NewUsers,
	}).Info("posthog: traffic metrics aggregated")

	return metrics
}

func (s *Integrator) trendSum(ctx context.Context, event, date string) (int64, error) {
	resp, err := s.Client.QueryTrend(ctx, posthogclient.TrendParams{
		Event:    event,
		DateFrom: date,
		DateTo:   date,
	})
	if err != nil {
		return 0, err
	}

	return resp.Sum(), nil
}
