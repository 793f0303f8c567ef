package mailchimp

import (
	"context"
	"time"

	"github.com/pkg/errors"
	mailchimpdomain "github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/mailchimpclient"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/internal/domain"
	"github.com/vfg2006/daily-report/pkg/log"
	"github.com/vfg2006/daily-report/pkg/utils"
)

const (
	defaultCampaignLimit = 10
	defaultReportLimit   = 5
)

type Integrator struct {
	cfg    *config.Config
	Client mailchimpclient.Client
	pause  func(ctx context.Context, d time.Duration) error
}

func New(cfg *config.Config, client mailchimpclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
		pause:  sleep,
	}
}

// FetchCampaignMetrics soma envios, aberturas e cliques dos relatórios das campanhas mais
// recentes. Nunca retorna erro: falhas de configuração ou da listagem viram um resultado
// zerado com Error preenchido, e falhas em relatórios individuais apenas são registradas.
func (s *Integrator) FetchCampaignMetrics(ctx context.Context) domain.CampaignMetrics {
	logger := log.ForContext(ctx)

	if err := s.cfg.Mailchimp.Validate(); err != nil {
		logger.WithError(err).Error("mailchimp: configuração incompleta")
		return domain.NewFailedCampaignMetrics(err)
	}

	campaigns, err := s.Client.ListCampaigns(ctx, mailchimpclient.ListCampaignsParams{
		Count:     s.campaignLimit(),
		Status:    mailchimpdomain.StatusSent,
		SortField: "send_time",
		SortDir:   "DESC",
	})
	if err != nil {
		logger.WithError(err).Error("mailchimp: failed to list campaigns")
		return domain.NewFailedCampaignMetrics(err)
	}

	selected := campaigns
	if limit := s.reportLimit(); len(selected) > limit {
		selected = selected[:limit]
	}

	totals := campaignTotals{}
	for i, campaign := range selected {
		if i > 0 {
			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			if err := s.pause(ctx, s.cfg.Mailchimp.RequestDelay); err != nil {
				totals = totals.fail(campaign.ID, err)
				break
			}
		}

		report, err := s.Client.GetCampaignReport(ctx, campaign.ID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaign.ID,
				"status":      failureStatus(err),
			}).Warn("mailchimp: failed to get campaign report")
			totals = totals.fail(campaign.ID, err)
			continue
		}

		totals = totals.add(report)
	}

	metrics := totals.metrics(len(campaigns))

	logger.WithFields(log.Fields{
		"campaigns":      metrics.CampaignCount,
		"reports":        len(selected),
		"failed_reports": len(totals.failures),
		"emails_sent":    metrics.EmailsSent,
		"open_rate":      metrics.OpenRate,
		"click_rate":     metrics.ClickRate,
	}).Info("mailchimp: campaign metrics aggregated")

	return metrics
}

func (s *Integrator) campaignLimit() int {
	if s.cfg.Mailchimp.CampaignLimit > 0 {
		return s.cfg.Mailchimp.CampaignLimit
	}
	return defaultCampaignLimit
}

func (s *Integrator) reportLimit() int {
	if s.cfg.Mailchimp.ReportLimit > 0 {
		return s.cfg.Mailchimp.ReportLimit
	}
	return defaultReportLimit
}

// failureStatus prefere o status HTTP devolvido pela API à mensagem do erro
func failureStatus(err error) any {
	var problem *mailchimpdomain.ErrorResponse
	if errors.As(err, &problem) {
		return problem.Status
	}
	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return err.Error()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
