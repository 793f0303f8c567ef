package domain

// NewUsersRatio é a fração fixa de sessões usada como estimativa de novos usuários
const NewUsersRatio = 0.3

// TrafficMetrics resume o tráfego do site no dia anterior (UTC)
type TrafficMetrics struct {
	PageViews int64  `json:"pageViews"`
	Sessions  int64  `json:"sessions"`
	NewUsers  int64  `json:"newUsers"`
	Error     string `json:"error,omitempty"`
}

// NewFailedTrafficMetrics cria o resultado zerado usado quando a agregação falha
func NewFailedTrafficMetrics(err error) TrafficMetrics {
	m := TrafficMetrics{}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

// EstimateNewUsers calcula floor(sessions * 0.3). Não é um valor medido.
func EstimateNewUsers(sessions int64) int64 {
	if sessions <= 0 {
		return 0
	}
	return sessions * 3 / 10
}

func (m TrafficMetrics) Failed() bool {
	return m.Error != ""
}
