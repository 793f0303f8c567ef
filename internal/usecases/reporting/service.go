package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/daily-report/internal/domain"
	"github.com/vfg2006/daily-report/pkg/log"
)

// Service executa o pipeline completo: agregações em paralelo, composição e envio
type Service struct {
	campaigns  CampaignFetcher
	traffic    TrafficFetcher
	composer   *Composer
	dispatcher *Dispatcher
	now        func() time.Time
}

func NewService(campaigns CampaignFetcher, traffic TrafficFetcher, composer *Composer, dispatcher *Dispatcher) *Service {
	return &Service{
		campaigns:  campaigns,
		traffic:    traffic,
		composer:   composer,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Run gera e envia o relatório de uma execução. Só retorna erro quando a composição ou o
// envio falham; problemas nas fontes de dados aparecem no próprio relatório.
func (s *Service) Run(ctx context.Context) error {
	ctx, _ = log.WithRunID(ctx)
	logger := log.ForContext(ctx)
	startTime := time.Now()

	logger.Info("iniciando execução do relatório diário")

	var (
		wg       sync.WaitGroup
		campaign domain.CampaignMetrics
		traffic  domain.TrafficMetrics
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		campaign = s.campaigns.FetchCampaignMetrics(ctx)
	}()
	go func() {
		defer wg.Done()
		traffic = s.traffic.FetchTrafficMetrics(ctx)
	}()
	wg.Wait()

	if campaign.Failed() {
		logger.WithField("error", campaign.Error).Warn("relatório seguirá sem dados de e-mail marketing")
	}
	if traffic.Failed() {
		logger.WithField("error", traffic.Error).Warn("relatório seguirá sem dados de tráfego")
	}

	report, err := s.composer.Compose(campaign, traffic, s.now())
	if err != nil {
		return err
	}

	if err := s.dispatcher.Dispatch(ctx, report); err != nil {
		logger.WithError(err).Error("falha ao enviar relatório diário")
		return err
	}

	logger.WithFields(log.Fields{
		"date":        report.ISODate,
		"campaigns":   campaign.CampaignCount,
		"page_views":  traffic.PageViews,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("relatório diário enviado")

	return nil
}
