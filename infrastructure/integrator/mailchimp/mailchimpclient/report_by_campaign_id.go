package mailchimpclient

import (
	"context"
	"net/url"

	mailchimpdomain "github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/domain"
)

func (c *MailchimpClient) GetCampaignReport(ctx context.Context, campaignID string) (*mailchimpdomain.CampaignReport, error) {
	base, err := c.baseURL()
	if err != nil {
		return nil, err
	}

	var report mailchimpdomain.CampaignReport
	if err := c.get(ctx, base+"/reports/"+url.PathEscape(campaignID), &report); err != nil {
		return nil, err
	}

	return &report, nil
}
