package mail

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"coatingshop/internal/config"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"go.uber.org/zap"
	gopkgmail "gopkg.in/gomail.v2"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

// ErrUnknownTemplate is returned when a notification names a template that is
// not bundled with the binary.
var ErrUnknownTemplate = errors.New("unknown email template")

// ErrRender is returned when a bundled template fails to execute against the
// notification data.
var ErrRender = errors.New("email template render failed")

type dialer interface {
	DialAndSend(m ...*gopkgmail.Message) error
}

// SMTPMailer renders a notification into a multipart text/html message and
// delivers it in a single SMTP attempt.
type SMTPMailer struct {
	from   string
	dialer dialer
	html   *htmltemplate.Template
	text   *texttemplate.Template
	log    *zap.Logger
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.MailConfig, log *zap.Logger) (*SMTPMailer, error) {
	d := gopkgmail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.SSL
	return newSMTPMailer(cfg.From, d, log)
}

func newSMTPMailer(from string, d dialer, log *zap.Logger) (*SMTPMailer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &SMTPMailer{from: from, dialer: d, html: html, text: text, log: log.Named("mail")}, nil
}

func (s *SMTPMailer) Send(ctx context.Context, n entities.EmailNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	htmlBody, err := s.renderHTML(n.Template, n.Data)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	plainBody, err := s.renderPlain(n.Template, n.Data)
	if err != nil {
		return fmt.Errorf("render plain: %w", err)
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.To)
	if n.ReplyTo != "" {
		m.SetHeader("Reply-To", n.ReplyTo)
	}
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	s.log.Debug("email sent", zap.String("template", n.Template), zap.String("to", n.To))
	return nil
}

func (s *SMTPMailer) renderHTML(name string, data map[string]any) (string, error) {
	t := s.html.Lookup(name + ".html")
	if t == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	return buf.String(), nil
}

func (s *SMTPMailer) renderPlain(name string, data map[string]any) (string, error) {
	t := s.text.Lookup(name + ".txt")
	if t == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	return buf.String(), nil
}
