package providers

// EmailProvider is one transactional email backend. Providers are ordered
// by the strategy in use; see strategies.FailoverStrategy.
type EmailProvider interface {
	Send(emailData *EmailData) (*EmailResult, error)
	Verify() (bool, error)
	GetName() string
}

type BaseProvider struct {
	APIKey       string
	ProviderName string
}

func (p *BaseProvider) GetName() string {
	return p.ProviderName
}

// EmailData is the provider-neutral message shape. From falls back to the
// service default when empty.
type EmailData struct {
	To      []string
	From    string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
	CC      []string
	BCC     []string
}

type EmailResult struct {
	Success   bool
	MessageID string
	Error     string
	Provider  string
}
