package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/griffix/backend/internal/domain/order"
	"github.com/griffix/backend/internal/infrastructure/config"
)

// Mailer sends the two emails produced by a checkout submission.
type Mailer interface {
	// SendOwnerNotification emails the full order to the shop owner
	SendOwnerNotification(ctx context.Context, o *order.Order) error

	// SendCustomerConfirmation emails payment instructions to the customer
	SendCustomerConfirmation(ctx context.Context, o *order.Order) error
}

// LoggingMailer is the Mailer used before SMTP credentials exist: it
// records that an order came in and sends nothing, so checkouts keep
// working on a fresh deployment.
type LoggingMailer struct {
	logger *zap.Logger
}

// NewLoggingMailer creates a mailer that only logs.
func NewLoggingMailer(logger *zap.Logger) *LoggingMailer {
	return &LoggingMailer{logger: logger}
}

// SendOwnerNotification logs the order instead of emailing it
func (m *LoggingMailer) SendOwnerNotification(ctx context.Context, o *order.Order) error {
	m.logger.Info("owner notification skipped, smtp not configured",
		zap.String("order_id", o.OrderID),
		zap.Float64("total", o.Total))
	return nil
}

// SendCustomerConfirmation logs the order instead of emailing it
func (m *LoggingMailer) SendCustomerConfirmation(ctx context.Context, o *order.Order) error {
	m.logger.Info("customer confirmation skipped, smtp not configured",
		zap.String("order_id", o.OrderID),
		zap.String("recipient", o.Customer.Email))
	return nil
}

// SMTPMailer implements Mailer over an SMTP relay.
type SMTPMailer struct {
	cfg         config.SMTPConfig
	paypalMeURL string

	ownerTmpl    *template.Template
	customerTmpl *template.Template
}

// NewSMTPMailer creates a mailer from the SMTP configuration. The
// PayPal.me base URL may be empty, in which case the payment link is
// left out of the customer email.
func NewSMTPMailer(cfg config.SMTPConfig, paypalMeURL string) (*SMTPMailer, error) {
	ownerTmpl, err := template.New("owner").Funcs(templateFuncs).Parse(ownerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse owner template: %w", err)
	}
	customerTmpl, err := template.New("customer").Funcs(templateFuncs).Parse(customerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse customer template: %w", err)
	}
	return &SMTPMailer{
		cfg:          cfg,
		paypalMeURL:  paypalMeURL,
		ownerTmpl:    ownerTmpl,
		customerTmpl: customerTmpl,
	}, nil
}

// SendOwnerNotification emails the full order to the shop owner
func (m *SMTPMailer) SendOwnerNotification(ctx context.Context, o *order.Order) error {
	if m.cfg.OwnerEmail == "" {
		return fmt.Errorf("owner email is not configured")
	}

	var body bytes.Buffer
	if err := m.ownerTmpl.Execute(&body, newEmailData(o, m.paypalMeURL)); err != nil {
		return fmt.Errorf("render owner email: %w", err)
	}

	subject := fmt.Sprintf("New Order #%s — $%.2f", o.OrderID, o.Total)
	return m.send(ctx, m.cfg.OwnerEmail, subject, body.String())
}

// SendCustomerConfirmation emails payment instructions to the customer
func (m *SMTPMailer) SendCustomerConfirmation(ctx context.Context, o *order.Order) error {
	var body bytes.Buffer
	if err := m.customerTmpl.Execute(&body, newEmailData(o, m.paypalMeURL)); err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmed — #%s — Griffix Racing", o.OrderID)
	return m.send(ctx, o.Customer.Email, subject, body.String())
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	return m.sendWithReplyTo(ctx, to, subject, htmlBody, "")
}

func (m *SMTPMailer) sendWithReplyTo(ctx context.Context, to, subject, htmlBody, replyTo string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return fmt.Errorf("invalid reply-to %q: %w", replyTo, err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	if m.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(m.cfg.Timeout))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
