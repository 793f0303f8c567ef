package reporting

import (
	_ "embed"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/osteele/liquid"
	"github.com/pkg/errors"
	"github.com/vfg2006/daily-report/internal/domain"
	"github.com/vfg2006/daily-report/pkg/utils"
)

const subjectPrefix = "📊 Daily Analytics Report — "

//go:embed templates/daily_report.liquid
var dailyReportTemplate string

// Composer renderiza o relatório diário a partir das duas agregações.
// O template é compilado uma única vez em NewComposer.
type Composer struct {
	template *liquid.Template
}

func NewComposer() (*Composer, error) {
	engine := liquid.NewEngine()

	// {{ n | count }} => 1,234,567
	engine.RegisterFilter("count", func(n int64) string {
		return utils.FormatCount(n)
	})

	tpl, err := engine.ParseString(dailyReportTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao compilar template do relatório")
	}

	return &Composer{template: tpl}, nil
}

// Compose não tem efeitos colaterais. Valores fora do formato esperado são normalizados
// antes de chegar ao template: taxa inválida vira "0.0" e contador negativo vira 0.
func (c *Composer) Compose(campaign domain.CampaignMetrics, traffic domain.TrafficMetrics, now time.Time) (domain.Report, error) {
	human := utils.HumanDate(now)

	bindings := map[string]any{
		"human_date": human,
		"iso_date":   utils.ISODate(now),
		"campaign": map[string]any{
			"campaigns":   nonNegative(int64(campaign.CampaignCount)),
			"emails_sent": nonNegative(campaign.EmailsSent),
			"open_rate":   safeRate(campaign.OpenRate),
			"click_rate":  safeRate(campaign.ClickRate),
			"unavailable": campaign.Failed(),
			"error":       campaign.Error,
		},
		"traffic": map[string]any{
			"page_views":  nonNegative(traffic.PageViews),
			"sessions":    nonNegative(traffic.Sessions),
			"new_users":   nonNegative(traffic.NewUsers),
			"unavailable": traffic.Failed(),
			"error":       traffic.Error,
		},
	}

	out, err := c.template.RenderString(bindings)
	if err != nil {
		return domain.Report{}, errors.Wrap(err, "erro ao renderizar relatório")
	}

	return domain.Report{
		ISODate:   utils.ISODate(now),
		HumanDate: human,
		Subject:   subjectPrefix + human,
		HTML:      out,
	}, nil
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

func safeRate(rate string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return domain.ZeroRate
	}
	return utils.FormatOneDecimal(v)
}
