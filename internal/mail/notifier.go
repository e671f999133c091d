// Package mail sends the shop's operational emails.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"printshop-service/internal/config"
	"printshop-service/internal/domain/quote"
	"printshop-service/pkg/mailer"
	"printshop-service/pkg/mailer/providers"
	"printshop-service/pkg/mailer/strategies"
	"printshop-service/pkg/mailer/templates"
)

const quoteSubjectFmt = "New quote request from %s"

var errSendFailed = errors.New("notification send failed")

// Notifier emails the shop inbox about incoming quote requests. When both
// Resend and SendGrid keys are configured, Resend is tried first with
// SendGrid as failover.
type Notifier struct {
	service  *mailer.EmailService
	template *templates.TypedTemplate[templates.QuoteNotificationContext]
	notifyTo string
}

func NewNotifier(cfg *config.MailConfig) (*Notifier, error) {
	var providerList []providers.EmailProvider
	if cfg.ResendAPIKey != "" {
		providerList = append(providerList, providers.NewResendProvider(providers.ResendConfig{APIKey: cfg.ResendAPIKey}))
	}
	if cfg.SendGridAPIKey != "" {
		providerList = append(providerList, providers.NewSendGridProvider(providers.SendGridConfig{APIKey: cfg.SendGridAPIKey}))
	}

	service, err := mailer.NewEmailService(mailer.EmailServiceConfig{
		Providers:   providerList,
		Strategy:    &strategies.FailoverStrategy{},
		DefaultFrom: cfg.From,
	})
	if err != nil {
		return nil, err
	}

	template, err := templates.QuoteNotificationTemplate()
	if err != nil {
		return nil, err
	}

	return &Notifier{
		service:  service,
		template: template,
		notifyTo: cfg.NotifyTo,
	}, nil
}

// SendQuoteNotification emails the quote details to the shop inbox and
// returns the provider message ID.
func (n *Notifier) SendQuoteNotification(ctx context.Context, q *quote.Quote) (string, error) {
	contactName := strings.TrimSpace(q.FirstName + " " + q.LastName)

	result, err := mailer.SendWithTypedTemplate(n.service, n.template, templates.QuoteNotificationContext{
		ContactName: contactName,
		Company:     q.Company,
		Email:       q.Email,
		Phone:       q.Phone,
		Industry:    q.Industry,
		Service:     q.Service,
		Quantity:    q.Quantity,
		Urgency:     q.Urgency,
		Message:     q.Message,
	}, &providers.EmailData{
		To:      []string{n.notifyTo},
		Subject: fmt.Sprintf(quoteSubjectFmt, contactName),
		ReplyTo: q.Email,
	})
	if err != nil {
		return "", err
	}
	if result == nil || !result.Success {
		return "", errSendFailed
	}

	return result.MessageID, nil
}
