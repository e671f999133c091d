package strategies

import (
	"errors"
	"testing"

	"printshop-service/pkg/mailer/providers"
	"printshop-service/pkg/mailer/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name   string
	result *providers.EmailResult
	err    error
	calls  int
}

func (p *stubProvider) Send(_ *providers.EmailData) (*providers.EmailResult, error) {
	p.calls++
	return p.result, p.err
}

func (p *stubProvider) Verify() (bool, error) { return true, nil }

func (p *stubProvider) GetName() string { return p.name }

func testEmail() *providers.EmailData {
	return &providers.EmailData{
		To:      []string{"shop@printshop.test"},
		From:    "noreply@printshop.test",
		Subject: "New quote request",
		HTML:    "<p>hi</p>",
	}
}

func TestFailoverUsesPrimary(t *testing.T) {
	primary := &stubProvider{name: "resend", result: &providers.EmailResult{Success: true, MessageID: "m1", Provider: "resend"}}
	backup := &stubProvider{name: "sendgrid", result: &providers.EmailResult{Success: true, MessageID: "m2", Provider: "sendgrid"}}

	s := &FailoverStrategy{}
	result, err := s.Send(testEmail(), []providers.EmailProvider{primary, backup})

	require.NoError(t, err)
	assert.Equal(t, "m1", result.MessageID)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, backup.calls)
}

func TestFailoverFallsBack(t *testing.T) {
	primary := &stubProvider{name: "resend", err: errors.New("api down")}
	backup := &stubProvider{name: "sendgrid", result: &providers.EmailResult{Success: true, MessageID: "m2", Provider: "sendgrid"}}

	s := &FailoverStrategy{}
	result, err := s.Send(testEmail(), []providers.EmailProvider{primary, backup})

	require.NoError(t, err)
	assert.Equal(t, "m2", result.MessageID)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, backup.calls)
}

func TestFailoverAllFail(t *testing.T) {
	primary := &stubProvider{name: "resend", err: errors.New("api down")}
	backup := &stubProvider{name: "sendgrid", result: &providers.EmailResult{Success: false, Error: "rate limited"}}

	s := &FailoverStrategy{}
	result, err := s.Send(testEmail(), []providers.EmailProvider{primary, backup})

	require.ErrorIs(t, err, registry.ErrAllProvidersFailed)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "api down")
	assert.Contains(t, result.Error, "rate limited")
}

func TestFailoverNoProviders(t *testing.T) {
	s := &FailoverStrategy{}
	_, err := s.Send(testEmail(), nil)
	assert.ErrorIs(t, err, registry.ErrNoProvidersConfigured)
}
