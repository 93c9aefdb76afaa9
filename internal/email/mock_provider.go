package email

import "reviewdeck_backend/internal/logger"

// MockProvider logs instead of sending. Used in development and when no
// SMTP host is configured.
type MockProvider struct{}

func (p *MockProvider) Send(to, subject, body string) error {
	logger.Info("mock email", "to", to, "subject", subject)
	return nil
}
