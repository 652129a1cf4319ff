package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jevohngg/happy-valley-tree-orders/models"
)

// Checkout session errors returned by the draft store.
var (
	ErrSessionNotFound  = &SessionError{Code: "SESSION_NOT_FOUND", Message: "Checkout session not found or expired"}
	ErrAlreadySubmitted = &SessionError{Code: "ALREADY_SUBMITTED", Message: "This order has already been submitted"}
	ErrSubmitInProgress = &SessionError{Code: "SUBMIT_IN_PROGRESS", Message: "Order submission is already in progress"}
)

// SessionError represents a checkout-session error with a stable code
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return e.Message
}

// CheckoutSession holds one browser session's wizard position and order
// draft. The draft is session-local and never persisted until submission.
type CheckoutSession struct {
	Token       string            `json:"token"`
	Step        models.Step       `json:"step"`
	Draft       models.OrderDraft `json:"draft"`
	OrderNumber string            `json:"order_number,omitempty"`
	Submitted   bool              `json:"submitted"`

	submitting bool
	updatedAt  time.Time
}

// DraftStore keeps checkout sessions in memory, keyed by an opaque token.
// Sessions are private to one browser session, so process-local storage is
// all they need; losing them on restart matches the session-only contract.
type DraftStore struct {
	mu       sync.Mutex
	sessions map[string]*CheckoutSession
	ttl      time.Duration
	now      func() time.Time
}

// DefaultSessionTTL is how long an idle checkout session survives.
const DefaultSessionTTL = 4 * time.Hour

var draftStoreInstance *DraftStore

// InitDraftStore initializes the global draft store
func InitDraftStore(ttl time.Duration) *DraftStore {
	draftStoreInstance = NewDraftStore(ttl)
	return draftStoreInstance
}

// GetDraftStore returns the initialized draft store instance
func GetDraftStore() *DraftStore {
	if draftStoreInstance == nil {
		draftStoreInstance = NewDraftStore(DefaultSessionTTL)
	}
	return draftStoreInstance
}

// SetDraftStore sets the draft store instance (primarily for testing)
func SetDraftStore(store *DraftStore) {
	draftStoreInstance = store
}

// NewDraftStore creates an empty store with the given idle TTL
func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		sessions: make(map[string]*CheckoutSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new checkout session at the tree step with an empty draft
func (s *DraftStore) Create() CheckoutSession {
	session := &CheckoutSession{
		Token: uuid.NewString(),
		Step:  models.StepTree,
		Draft: models.OrderDraft{
			Trees:   []models.TreeItem{},
			Stands:  []models.StandItem{},
			Wreaths: []models.WreathItem{},
		},
		updatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[session.Token] = session
	return *session
}

// Get returns a copy of the session for token
func (s *DraftStore) Get(token string) (CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return CheckoutSession{}, ErrSessionNotFound
	}
	return *session, nil
}

// Update applies fn to the session's draft and replaces it with the result.
// The stored draft is swapped wholesale, never mutated in place.
func (s *DraftStore) Update(token string, fn func(models.OrderDraft) models.OrderDraft) (CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return CheckoutSession{}, ErrSessionNotFound
	}
	if session.Submitted || session.submitting {
		return CheckoutSession{}, ErrAlreadySubmitted
	}

	session.Draft = fn(session.Draft)
	session.updatedAt = s.now()
	return *session, nil
}

// SetStep moves the session to step
func (s *DraftStore) SetStep(token string, step models.Step) (CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return CheckoutSession{}, ErrSessionNotFound
	}
	if session.Submitted || session.submitting {
		return CheckoutSession{}, ErrAlreadySubmitted
	}

	session.Step = step
	session.updatedAt = s.now()
	return *session, nil
}

// BeginSubmit marks the session as submitting and returns its draft. A
// second call before FinishSubmit or FailSubmit is refused, which is the
// double-click guard for order submission.
func (s *DraftStore) BeginSubmit(token string) (CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return CheckoutSession{}, ErrSessionNotFound
	}
	if session.Submitted {
		return CheckoutSession{}, ErrAlreadySubmitted
	}
	if session.submitting {
		return CheckoutSession{}, ErrSubmitInProgress
	}

	session.submitting = true
	session.updatedAt = s.now()
	return *session, nil
}

// FinishSubmit records a successful submission and moves the session to the
// terminal confirmation step.
func (s *DraftStore) FinishSubmit(token, orderNumber string) (CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return CheckoutSession{}, ErrSessionNotFound
	}

	session.submitting = false
	session.Submitted = true
	session.OrderNumber = orderNumber
	session.Step = models.StepConfirmation
	session.updatedAt = s.now()
	return *session, nil
}

// FailSubmit clears the submitting flag so the customer can retry
func (s *DraftStore) FailSubmit(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.liveLocked(token); ok {
		session.submitting = false
		session.updatedAt = s.now()
	}
}

// Delete removes the session for token
func (s *DraftStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len reports the number of live sessions
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.sessions)
}

// liveLocked returns the session for token if it has not passed its TTL,
// deleting it when it has. Caller must hold mu.
func (s *DraftStore) liveLocked(token string) (*CheckoutSession, bool) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(session.updatedAt) > s.ttl {
		delete(s.sessions, token)
		return nil, false
	}
	return session, true
}

// sweepLocked drops every expired session. Caller must hold mu.
func (s *DraftStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for token, session := range s.sessions {
		if session.updatedAt.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
}
