package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/mail.v2"
)

const (
	senderName = "Natours"

	subjectWelcome = "Welcome to the Natours Family!"
	subjectReset   = "Your password reset token (valid for only 10 minutes)"
)

//go:embed templates
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Mailer sends account emails over SMTP. With no host configured messages
// are only logged.
type Mailer struct {
	dialer dialer
	from   string
	logger logger.Logger
}

func NewMailer(cfg MailerConfig, logger logger.Logger) *Mailer {
	m := &Mailer{from: cfg.From, logger: logger}
	if cfg.Host == "" {
		logger.Warn("email host is empty, emails will only be logged")
		return m
	}

	m.dialer = mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return m
}

func (m *Mailer) SendWelcome(ctx context.Context, user *domain.User, url string) error {
	return m.send(ctx, user, "welcome", subjectWelcome, url)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, user *domain.User, url string) error {
	return m.send(ctx, user, "password_reset", subjectReset, url)
}

func (m *Mailer) send(ctx context.Context, user *domain.User, tmpl, subject, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := struct {
		FirstName string
		URL       string
	}{
		FirstName: user.FirstName(),
		URL:       url,
	}

	var text, html bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&text, tmpl+".txt", data); err != nil {
		return fmt.Errorf("render %s text: %w", tmpl, err)
	}
	if err := htmlTemplates.ExecuteTemplate(&html, tmpl+".html", data); err != nil {
		return fmt.Errorf("render %s html: %w", tmpl, err)
	}

	if m.dialer == nil {
		m.logger.Info("email not sent (no smtp host)",
			logger.String("to", user.Email),
			logger.String("subject", subject),
		)
		return nil
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.from, senderName)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text.String())
	msg.AddAlternative("text/html", html.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %s email: %w", tmpl, err)
	}

	m.logger.Debug("email sent",
		logger.String("to", user.Email),
		logger.String("template", tmpl),
	)
	return nil
}
