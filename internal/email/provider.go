// Package email sends the platform's notification mail. Delivery mechanics
// beyond a thin provider interface are out of scope for this service.
package email

// Provider sends a single message.
type Provider interface {
	Send(to, subject, body string) error
}
