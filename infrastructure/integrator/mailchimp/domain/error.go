package mailchimpdomain

import "fmt"

// ErrorResponse é o documento de erro (RFC 7807) devolvido pela API da Mailchimp
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

func (e *ErrorResponse) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("mailchimp: %d %s", e.Status, e.Title)
	}
	return fmt.Sprintf("mailchimp: %d %s: %s", e.Status, e.Title, e.Detail)
}
