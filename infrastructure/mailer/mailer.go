package mailer

import (
	"context"
	"fmt"

	"github.com/vfg2006/daily-report/internal/config"
)

// Message é um e-mail HTML com um único destinatário
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender entrega uma mensagem pelo transporte configurado
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New cria o Sender do transporte definido em MAIL_TRANSPORT (smtp ou ses)
func New(ctx context.Context, cfg config.Mail) (Sender, error) {
	switch cfg.Transport {
	case "", config.MailTransportSMTP:
		return NewSMTPSender(cfg), nil
	case config.MailTransportSES:
		return NewSESSender(ctx, cfg)
	default:
		return nil, fmt.Errorf("mailer: transporte desconhecido: %q", cfg.Transport)
	}
}
