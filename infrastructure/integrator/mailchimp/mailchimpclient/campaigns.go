package mailchimpclient

import (
	"context"
	"net/url"
	"strconv"

	mailchimpdomain "github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/domain"
)

type ListCampaignsParams struct {
	Count     int
	Status    string
	SortField string
	SortDir   string
}

type ResponseCampaigns struct {
	Campaigns  []mailchimpdomain.Campaign `json:"campaigns"`
	TotalItems int                        `json:"total_items"`
}

func (c *MailchimpClient) ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]mailchimpdomain.Campaign, error) {
	base, err := c.baseURL()
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Count > 0 {
		query.Set("count", strconv.Itoa(params.Count))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.SortField != "" {
		query.Set("sort_field", params.SortField)
	}
	if params.SortDir != "" {
		query.Set("sort_dir", params.SortDir)
	}

	endpoint := base + "/campaigns"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var response ResponseCampaigns
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if response.Campaigns == nil {
		return []mailchimpdomain.Campaign{}, nil
	}

	return response.Campaigns, nil
}
