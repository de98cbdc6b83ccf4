package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elisdimitrova/psysite/internal/config"
)

// Processor hands a captured submission to whatever acts on it. The site
// itself only needs the submission logged; delivery is pluggable.
type Processor interface {
	Process(ctx context.Context, sub Submission) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, sub Submission) error

func (f ProcessorFunc) Process(ctx context.Context, sub Submission) error { return f(ctx, sub) }

// LogProcessor writes the submission to the log.
type LogProcessor struct {
	logger *log.Logger
}

func NewLogProcessor(logger *log.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

func (p *LogProcessor) Process(_ context.Context, sub Submission) error {
	p.logger.Info("form submission",
		"id", sub.ID,
		"kind", sub.Kind,
		"name", sub.Name,
		"email", sub.Email,
		"phone", sub.Phone,
		"service", sub.Service,
		"message", sub.Message,
	)
	return nil
}

// WebhookProcessor POSTs the submission as JSON.
type WebhookProcessor struct {
	url    string
	client *http.Client
}

// NewWebhookProcessor creates a WebhookProcessor with a 10 second timeout.
func NewWebhookProcessor(url string) *WebhookProcessor {
	return &WebhookProcessor{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *WebhookProcessor) Process(ctx context.Context, sub Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshalling submission: %w", err)
	}
	return p.SendWebhook(ctx, payload)
}

// SendWebhook POSTs payload to the configured URL.
func (p *WebhookProcessor) SendWebhook(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPProcessor emails the submission to the site owner.
type SMTPProcessor struct {
	cfg  config.SMTPConfig
	send SendMailFunc
}

func NewSMTPProcessor(cfg config.SMTPConfig) *SMTPProcessor {
	return &SMTPProcessor{cfg: cfg, send: smtp.SendMail}
}

func (p *SMTPProcessor) Process(_ context.Context, sub Submission) error {
	var auth smtp.Auth
	if p.cfg.Username != "" {
		auth = smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.Host)
	}
	from := p.cfg.From
	if from == "" {
		from = p.cfg.Username
	}
	addr := p.cfg.Host + ":" + strconv.Itoa(p.cfg.Port)
	if err := p.send(addr, auth, from, []string{p.cfg.To}, composeMail(from, p.cfg.To, sub)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}

func composeMail(from, to string, sub Submission) []byte {
	subjects := map[Kind]string{
		KindConsultation: "Нова заявка за консултация",
		KindNewsletter:   "Нов абонат за бюлетина",
		KindGiveaway:     "Заявка за безплатна книга",
	}

	var body strings.Builder
	if sub.Name != "" {
		fmt.Fprintf(&body, "Име: %s\r\n", sub.Name)
	}
	fmt.Fprintf(&body, "Имейл: %s\r\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&body, "Телефон: %s\r\n", sub.Phone)
	}
	if sub.Service != "" {
		fmt.Fprintf(&body, "Услуга: %s\r\n", sub.Service)
	}
	if sub.Message != "" {
		fmt.Fprintf(&body, "\r\n%s\r\n", sub.Message)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", headerSafe(sub.Email))
	fmt.Fprintf(&msg, "Subject: %s: %s\r\n", subjects[sub.Kind], headerSafe(sub.Name))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body.String())
	return []byte(msg.String())
}

// headerSafe drops line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// Multi runs every processor and joins their errors.
type Multi []Processor

func (m Multi) Process(ctx context.Context, sub Submission) error {
	var errs []error
	for _, p := range m {
		if err := p.Process(ctx, sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewProcessor builds the processor chain for cfg. Logging is always on;
// the webhook and SMTP processors are added when configured.
func NewProcessor(cfg config.FormsConfig, logger *log.Logger) Processor {
	chain := Multi{NewLogProcessor(logger)}
	if cfg.WebhookURL != "" {
		chain = append(chain, NewWebhookProcessor(cfg.WebhookURL))
	}
	if cfg.SMTP.Enabled() {
		chain = append(chain, NewSMTPProcessor(cfg.SMTP))
	}
	return chain
}
