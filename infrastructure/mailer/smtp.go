package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/daily-report/internal/config"
	"github.com/vfg2006/daily-report/pkg/utils"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender envia pelo SMTP autenticado da conta (Gmail por padrão).
// smtp.SendMail negocia STARTTLS quando o servidor oferece.
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	sendMail sendMailFunc
	now      func() time.Time
}

func NewSMTPSender(cfg config.Mail) *SMTPSender {
	host := strings.TrimSpace(cfg.SMTPHost)
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	return &SMTPSender{
		host:     host,
		port:     port,
		user:     strings.TrimSpace(cfg.User),
		password: strings.TrimSpace(cfg.Password),
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := buildMessage(msg, s.now())
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	auth := smtp.PlainAuth("", s.user, s.password, s.host)

	if err := s.sendMail(addr, auth, msg.From, []string{msg.To}, body); err != nil {
		return errors.Wrapf(err, "smtp: falha ao enviar para %s", msg.To)
	}

	logrus.WithFields(logrus.Fields{
		"transport": "smtp",
		"host":      s.host,
		"to":        msg.To,
	}).Info("mailer: message sent")

	return nil
}

// buildMessage monta a mensagem MIME com corpo HTML em base64
func buildMessage(msg Message, now time.Time) ([]byte, error) {
	messageID, err := utils.GenerateID(24)
	if err != nil {
		return nil, errors.Wrap(err, "smtp: erro ao gerar Message-ID")
	}

	var buf bytes.Buffer
	writeHeader(&buf, "From", msg.From)
	writeHeader(&buf, "To", msg.To)
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader(&buf, "Date", now.Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", fmt.Sprintf("<%s@%s>", messageID, senderDomain(msg.From)))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", `text/html; charset="UTF-8"`)
	writeHeader(&buf, "Content-Transfer-Encoding", "base64")
	buf.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString([]byte(msg.HTML))
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, name, value string) {
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}

func senderDomain(from string) string {
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		return strings.Trim(from[i+1:], "> ")
	}
	return "localhost"
}
