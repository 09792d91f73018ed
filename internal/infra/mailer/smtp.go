package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"gopkg.in/gomail.v2"

	"inkpress/internal/domain/entity"
	"inkpress/internal/resilience/circuitbreaker"
	"inkpress/pkg/config"
)

// SMTPConfig holds SMTP relay settings, loaded from environment variables.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// MailsPerSecond and Burst bound the outbound send rate.
	MailsPerSecond float64
	Burst          int
}

// LoadSMTPConfig reads SMTP settings from the environment.
// Mail is considered disabled when SMTP_HOST is unset.
func LoadSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host:           config.GetEnvString("SMTP_HOST", ""),
		Port:           config.GetEnvInt("SMTP_PORT", 587),
		Username:       config.GetEnvString("SMTP_USERNAME", ""),
		Password:       config.GetEnvString("SMTP_PASSWORD", ""),
		From:           config.GetEnvString("SMTP_FROM", ""),
		MailsPerSecond: 1.0,
		Burst:          config.GetEnvInt("SMTP_BURST", 3),
	}
}

// Enabled reports whether enough configuration is present to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// SMTPMailer delivers comment notifications over SMTP. Sends pass
// through a token bucket rate limiter and a circuit breaker, so a dead
// relay stops costing a connection attempt per comment.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	limiter *RateLimiter
	breaker *circuitbreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewSMTPMailer creates an SMTPMailer from the given configuration.
func NewSMTPMailer(cfg SMTPConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		limiter: NewRateLimiter(cfg.MailsPerSecond, cfg.Burst),
		breaker: circuitbreaker.New(circuitbreaker.SMTPConfig()),
		logger:  logger,
	}
}

var bodyTemplate = template.Must(template.New("comment-mail").Parse(`
<p><strong>{{.Name}}</strong> commented on article #{{.ArticleID}}:</p>
<blockquote>{{.Content}}</blockquote>
{{- if .Parent}}
<p>In reply to <strong>{{.Parent.Name}}</strong>:</p>
<blockquote>{{.ParentContent}}</blockquote>
{{- end}}
{{- if .Website}}
<p>Website: {{.Website}}</p>
{{- end}}
`))

// Send implements Mailer.
func (m *SMTPMailer) Send(ctx context.Context, to string, detail *entity.CommentDetail) error {
	if to == "" {
		return &entity.ValidationError{Field: "to", Message: "is required"}
	}
	if detail == nil {
		return &entity.ValidationError{Field: "detail", Message: "is required"}
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("Send: rate limit wait: %w", err)
	}

	body, err := m.renderBody(detail)
	if err != nil {
		return fmt.Errorf("Send: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("New comment from %s", detail.Name))
	msg.SetBody("text/html", body)

	_, err = m.breaker.Execute(func() (interface{}, error) {
		// gomail has no context support; honor cancellation up front.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, m.dialer.DialAndSend(msg)
	})
	if err != nil {
		return fmt.Errorf("Send: %w", err)
	}

	m.logger.Debug("notification mail sent",
		slog.String("to", to),
		slog.Int64("comment_id", detail.ID))
	return nil
}

// renderBody builds the HTML mail body. Content fields arrive already
// rendered to HTML by the read path, so they are inserted as-is.
func (m *SMTPMailer) renderBody(detail *entity.CommentDetail) (string, error) {
	data := struct {
		Name          string
		ArticleID     int64
		Content       template.HTML
		Website       string
		Parent        *entity.Comment
		ParentContent template.HTML
	}{
		Name:      detail.Name,
		ArticleID: detail.ArticleID,
		Content:   template.HTML(detail.Content),
		Website:   detail.Website,
		Parent:    detail.Parent,
	}
	if detail.Parent != nil {
		data.ParentContent = template.HTML(detail.Parent.Content)
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail body: %w", err)
	}
	return buf.String(), nil
}
