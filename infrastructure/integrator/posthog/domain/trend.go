package posthogdomain

import "math"

const (
	EventPageView     = "$pageview"
	EventSessionStart = "$session_start"

	InsightTrends = "TRENDS"
)

type TrendEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type TrendQuery struct {
	Events   []TrendEvent `json:"events"`
	DateFrom string       `json:"date_from"`
	DateTo   string       `json:"date_to"`
	Insight  string       `json:"insight"`
}

type TrendSeries struct {
	Label string     `json:"label"`
	Count float64    `json:"count"`
	Data  []*float64 `json:"data"`
	Days  []string   `json:"days"`
}

type TrendResponse struct {
	Result []TrendSeries `json:"result"`
}

// Sum soma as amostras da primeira série. Amostras nulas contam como zero.
func (r *TrendResponse) Sum() int64 {
	if r == nil || len(r.Result) == 0 {
		return 0
	}

	var total float64
	for _, sample := range r.Result[0].Data {
		if sample == nil || math.IsNaN(*sample) || math.IsInf(*sample, 0) {
			continue
		}
		total += *sample
	}

	if total < 0 {
		return 0
	}
	return int64(math.Round(total))
}
