package config

import (
	"fmt"
	"strings"
)

// MissingConfigError indica uma variável obrigatória ausente ou em branco
type MissingConfigError struct {
	Name string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Name)
}

// Require retorna o valor sem espaços nas bordas ou MissingConfigError quando ele está vazio.
// Valores compostos apenas de espaços contam como ausentes.
func Require(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &MissingConfigError{Name: name}
	}
	return trimmed, nil
}
