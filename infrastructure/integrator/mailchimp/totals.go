package mailchimp

import (
	mailchimpdomain "github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/daily-report/internal/domain"
	"github.com/vfg2006/daily-report/pkg/utils"
)

// reportFailure registra um relatório de campanha que não pôde ser obtido
type reportFailure struct {
	CampaignID string
	Err        error
}

// campaignTotals acumula os contadores dos relatórios e as falhas por campanha.
// Uma falha contribui com zero para todas as somas.
type campaignTotals struct {
	sent     int64
	opens    int64
	clicks   int64
	failures []reportFailure
}

func (t campaignTotals) add(report *mailchimpdomain.CampaignReport) campaignTotals {
	if report == nil {
		return t
	}
	t.sent += nonNegative(report.EmailsSent)
	t.opens += nonNegative(report.Opens.UniqueOpens)
	t.clicks += nonNegative(report.Clicks.UniqueClicks)
	return t
}

func (t campaignTotals) fail(campaignID string, err error) campaignTotals {
	t.failures = append(t.failures, reportFailure{CampaignID: campaignID, Err: err})
	return t
}

func (t campaignTotals) metrics(campaignCount int) domain.CampaignMetrics {
	return domain.CampaignMetrics{
		CampaignCount: campaignCount,
		EmailsSent:    t.sent,
		OpenRate:      utils.Percentage(t.opens, t.sent),
		ClickRate:     utils.Percentage(t.clicks, t.sent),
	}
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
