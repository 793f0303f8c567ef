package posthogdomain

import "fmt"

// ErrorResponse representa o corpo de erro da API do PostHog
type ErrorResponse struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	Detail     string `json:"detail"`
	Attr       string `json:"attr"`
	StatusCode int    `json:"-"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("posthog: %d %s: %s", e.StatusCode, e.Code, e.Detail)
}
