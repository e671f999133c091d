package templates

import (
	"strings"

	"printshop-service/pkg/mailer/registry"
)

type QuoteNotificationContext struct {
	ContactName string
	Company     string
	Email       string
	Phone       string
	Industry    string
	Service     string
	Quantity    string
	Urgency     string
	Message     string
}

// QuoteNotificationTemplate renders the internal email sent to the shop
// when a quote request comes in.
func QuoteNotificationTemplate() (*TypedTemplate[QuoteNotificationContext], error) {
	htmlTmpl := `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>New Quote Request</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2>New Quote Request</h2>
		<p><strong>{{.ContactName}}</strong>{{if .Company}} from <strong>{{.Company}}</strong>{{end}} has requested a quote.</p>
		<table style="width: 100%; border-collapse: collapse;">
			<tr><td style="padding: 6px 0; color: #666;">Email</td><td style="padding: 6px 0;">{{.Email}}</td></tr>
			{{if .Phone}}<tr><td style="padding: 6px 0; color: #666;">Phone</td><td style="padding: 6px 0;">{{.Phone}}</td></tr>{{end}}
			{{if .Industry}}<tr><td style="padding: 6px 0; color: #666;">Industry</td><td style="padding: 6px 0;">{{.Industry}}</td></tr>{{end}}
			{{if .Service}}<tr><td style="padding: 6px 0; color: #666;">Service</td><td style="padding: 6px 0;">{{.Service}}</td></tr>{{end}}
			{{if .Quantity}}<tr><td style="padding: 6px 0; color: #666;">Quantity</td><td style="padding: 6px 0;">{{.Quantity}}</td></tr>{{end}}
			{{if .Urgency}}<tr><td style="padding: 6px 0; color: #666;">Urgency</td><td style="padding: 6px 0;">{{.Urgency}}</td></tr>{{end}}
		</table>
		{{if .Message}}<p style="margin-top: 20px; color: #666;">Message:</p>
		<p style="background: #f6f6f6; padding: 12px; border-radius: 5px;">{{.Message}}</p>{{end}}
	</div>
</body>
</html>
`

	textTmpl := `
New Quote Request

{{.ContactName}}{{if .Company}} from {{.Company}}{{end}} has requested a quote.

Email: {{.Email}}
{{if .Phone}}Phone: {{.Phone}}
{{end}}{{if .Industry}}Industry: {{.Industry}}
{{end}}{{if .Service}}Service: {{.Service}}
{{end}}{{if .Quantity}}Quantity: {{.Quantity}}
{{end}}{{if .Urgency}}Urgency: {{.Urgency}}
{{end}}{{if .Message}}
Message:
{{.Message}}
{{end}}`

	parser := func(context QuoteNotificationContext) (QuoteNotificationContext, error) {
		context.ContactName = strings.TrimSpace(context.ContactName)
		context.Company = strings.TrimSpace(context.Company)
		context.Email = strings.TrimSpace(context.Email)

		if context.ContactName == "" {
			return context, registry.ErrQuoteContactRequired
		}
		if context.Email == "" {
			return context, registry.ErrQuoteEmailRequired
		}

		return context, nil
	}

	return NewTemplate(registry.TemplateNameQuoteNotification, htmlTmpl, textTmpl, parser)
}
