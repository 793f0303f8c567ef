package mailchimpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	mailchimpdomain "github.com/vfg2006/daily-report/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]mailchimpdomain.Campaign, error)
	GetCampaignReport(ctx context.Context, campaignID string) (*mailchimpdomain.CampaignReport, error)
}

type MailchimpClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &MailchimpClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// baseURL monta o endpoint a partir do datacenter (ex.: us21) ou usa MAILCHIMP_BASE_URL
func (c *MailchimpClient) baseURL() (string, error) {
	if base := strings.TrimSpace(c.config.Mailchimp.BaseURL); base != "" {
		return strings.TrimRight(base, "/"), nil
	}

	server, err := config.Require("MAILCHIMP_SERVER", c.config.Mailchimp.Server)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.api.mailchimp.com/3.0", server), nil
}

func (c *MailchimpClient) get(ctx context.Context, endpoint string, out any) error {
	apiKey, err := config.Require("MAILCHIMP_API_KEY", c.config.Mailchimp.APIKey)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	// A Mailchimp aceita qualquer usuário no Basic Auth; apenas a chave importa
	req.SetBasicAuth("anystring", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := utils.ReadResponse(resp)
	if err != nil {
		return decodeError(err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

// decodeError converte o corpo de erro da API em ErrorResponse quando possível
func decodeError(err error) error {
	var statusErr *utils.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var problem mailchimpdomain.ErrorResponse
	if jsonErr := json.Unmarshal(statusErr.Body, &problem); jsonErr != nil || problem.Title == "" {
		return statusErr
	}
	if problem.Status == 0 {
		problem.Status = statusErr.StatusCode
	}

	return &problem
}
