package domain

// ZeroRate é a taxa exibida quando nenhum e-mail foi enviado
const ZeroRate = "0.0"

// CampaignMetrics resume as campanhas de e-mail consideradas em uma execução.
// OpenRate e ClickRate são sempre strings com uma casa decimal.
type CampaignMetrics struct {
	CampaignCount int    `json:"campaigns"`
	EmailsSent    int64  `json:"emailsSent"`
	OpenRate      string `json:"openRate"`
	ClickRate     string `json:"clickRate"`
	Error         string `json:"error,omitempty"`
}

// NewFailedCampaignMetrics cria o resultado zerado usado quando a agregação inteira falha
func NewFailedCampaignMetrics(err error) CampaignMetrics {
	m := CampaignMetrics{
		OpenRate:  ZeroRate,
		ClickRate: ZeroRate,
	}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

func (m CampaignMetrics) Failed() bool {
	return m.Error != ""
}
