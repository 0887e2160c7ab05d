package mocks

import (
	"context"
	"sync"

	"github.com/tasknest/tasknest-api/internal/platform/email"
)

// MockMailer implements email.Mailer for testing. Calls are recorded so
// tests can assert on fire-and-forget sends.
type MockMailer struct {
	SendWelcomeFn func(ctx context.Context, to, name string) error
	SendGoodbyeFn func(ctx context.Context, to, name string) error

	Err error

	mu           sync.Mutex
	welcomeSends []string
	goodbyeSends []string
}

var _ email.Mailer = (*MockMailer)(nil)

func (m *MockMailer) SendWelcome(ctx context.Context, to, name string) error {
	m.mu.Lock()
	m.welcomeSends = append(m.welcomeSends, to)
	m.mu.Unlock()

	if m.SendWelcomeFn != nil {
		return m.SendWelcomeFn(ctx, to, name)
	}
	return m.Err
}

func (m *MockMailer) SendGoodbye(ctx context.Context, to, name string) error {
	m.mu.Lock()
	m.goodbyeSends = append(m.goodbyeSends, to)
	m.mu.Unlock()

	if m.SendGoodbyeFn != nil {
		return m.SendGoodbyeFn(ctx, to, name)
	}
	return m.Err
}

// WelcomeSends returns the recipients of recorded welcome mails.
func (m *MockMailer) WelcomeSends() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.welcomeSends...)
}

// GoodbyeSends returns the recipients of recorded goodbye mails.
func (m *MockMailer) GoodbyeSends() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.goodbyeSends...)
}
