package mailchimpdomain

const StatusSent = "sent"

type Campaign struct {
	ID         string           `json:"id"`
	WebID      int64            `json:"web_id"`
	Type       string           `json:"type"`
	Status     string           `json:"status"`
	EmailsSent int64            `json:"emails_sent"`
	SendTime   string           `json:"send_time"`
	Settings   CampaignSettings `json:"settings"`
}

type CampaignSettings struct {
	SubjectLine string `json:"subject_line"`
	Title       string `json:"title"`
}

type CampaignReport struct {
	ID            string `json:"id"`
	CampaignTitle string `json:"campaign_title"`
	EmailsSent    int64  `json:"emails_sent"`
	Opens         Opens  `json:"opens"`
	Clicks        Clicks `json:"clicks"`
	SendTime      string `json:"send_time"`
}

type Opens struct {
	OpensTotal  int64   `json:"opens_total"`
	UniqueOpens int64   `json:"unique_opens"`
	OpenRate    float64 `json:"open_rate"`
}

type Clicks struct {
	ClicksTotal  int64   `json:"clicks_total"`
	UniqueClicks int64   `json:"unique_clicks"`
	ClickRate    float64 `json:"click_rate"`
}
