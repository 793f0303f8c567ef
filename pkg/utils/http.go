package utils

import (
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody limita quanto do corpo de uma resposta de erro é lido
const maxErrorBody = 64 << 10

// StatusError representa uma resposta HTTP fora da faixa 2xx
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Error on Request: %s status: %s", e.URL, e.Status)
}

// ReadResponse lê o corpo de resp e retorna StatusError quando o status não é 2xx
func ReadResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
		if resp.Request != nil {
			statusErr.URL = resp.Request.URL.Redacted()
		}
		return nil, statusErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}
