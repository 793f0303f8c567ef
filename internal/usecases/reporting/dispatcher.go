package reporting

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/daily-report/infrastructure/mailer"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/internal/domain"
	"github.com/vfg2006/daily-report/pkg/log"
)

// Dispatcher entrega o relatório. Diferente das agregações, qualquer falha aqui é fatal.
type Dispatcher struct {
	cfg    config.Mail
	sender mailer.Sender
}

func NewDispatcher(cfg config.Mail, sender mailer.Sender) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		sender: sender,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, report domain.Report) error {
	if err := d.cfg.Validate(); err != nil {
		return err
	}

	msg := mailer.Message{
		From:    strings.TrimSpace(d.cfg.User),
		To:      d.cfg.To(),
		Subject: report.Subject,
		HTML:    report.HTML,
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Debug("enviando relatório")

	if err := d.sender.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "erro ao enviar relatório")
	}

	return nil
}
