package services

import (
	"sync"
)

// MockNotificationService is a mock implementation of NotificationService for testing
type MockNotificationService struct {
	mu       sync.Mutex
	sent     []OrderNotification
	failWith error
}

// NewMockNotificationService creates a new mock notification service
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SetAsMockForTesting sets this mock as the global notification service instance for testing
func (m *MockNotificationService) SetAsMockForTesting() {
	SetNotificationService(m)
}

// FailWith makes every subsequent send return err
func (m *MockNotificationService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// SendOrderNotification records the notification instead of delivering it
func (m *MockNotificationService) SendOrderNotification(n OrderNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, n)
	return nil
}

// Sent returns a copy of the notifications recorded so far
func (m *MockNotificationService) Sent() []OrderNotification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]OrderNotification, len(m.sent))
	copy(out, m.sent)
	return out
}
