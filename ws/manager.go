package ws

import (
	"sync"
	"time"

	"upipay_backend/internal/logger"
	"upipay_backend/internal/models"
)

// StatusMessage is the push sent to subscribers when a transaction
// transitions.
type StatusMessage struct {
	Type      string                   `json:"type"`
	Reference string                   `json:"reference"`
	Status    models.TransactionStatus `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
}

// Manager maps transaction references to the live connections interested
// in them. It is the only shared mutable structure in the process; a single
// coarse lock guards it. The registry carries no persistent state — on
// restart clients re-subscribe and the polling fallback covers the gap.
type Manager struct {
	mu sync.RWMutex
	// subscriptions: reference -> set of clients.
	subscriptions map[string]map[*Client]bool
	// byClient tracks each client's single current interest.
	byClient map[*Client]string
}

func NewManager() *Manager {
	return &Manager{
		subscriptions: make(map[string]map[*Client]bool),
		byClient:      make(map[*Client]string),
	}
}

// Subscribe registers the client's interest in a reference. A client holds
// one subscription at a time; re-subscribing replaces the prior interest.
func (m *Manager) Subscribe(client *Client, reference string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(client)

	set, ok := m.subscriptions[reference]
	if !ok {
		set = make(map[*Client]bool)
		m.subscriptions[reference] = set
	}
	set[client] = true
	m.byClient[client] = reference

	logger.Debug("ws client subscribed", "reference", reference, "subscribers", len(set))
}

// Unsubscribe removes the client from whatever set it belonged to. Empty
// reference entries are pruned so the registry cannot grow unbounded.
func (m *Manager) Unsubscribe(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(client)
}

func (m *Manager) removeLocked(client *Client) {
	reference, ok := m.byClient[client]
	if !ok {
		return
	}
	delete(m.byClient, client)

	set := m.subscriptions[reference]
	delete(set, client)
	if len(set) == 0 {
		delete(m.subscriptions, reference)
	}
}

// PublishStatus delivers a transition to every live subscriber of the
// reference. Delivery is best-effort, at most once per connection per
// call: a client whose send buffer is full or closed is dropped silently.
func (m *Manager) PublishStatus(reference string, status models.TransactionStatus, at time.Time) {
	msg := StatusMessage{
		Type:      "payment_status",
		Reference: reference,
		Status:    status,
		Timestamp: at,
	}

	m.mu.RLock()
	set := m.subscriptions[reference]
	targets := make([]*Client, 0, len(set))
	for client := range set {
		targets = append(targets, client)
	}
	m.mu.RUnlock()

	delivered := 0
	for _, client := range targets {
		if client.trySend(msg) {
			delivered++
		} else {
			m.Unsubscribe(client)
		}
	}

	if len(targets) > 0 {
		logger.Debug("payment status broadcast",
			"reference", reference, "status", status, "delivered", delivered)
	}
}

// SubscriberCount reports how many connections watch a reference.
func (m *Manager) SubscriberCount(reference string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions[reference])
}
