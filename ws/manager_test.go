package ws

import (
	"testing"
	"time"

	"upipay_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(m *Manager, buffer int) *Client {
	return &Client{manager: m, Send: make(chan any, buffer)}
}

func receiveStatus(t *testing.T, c *Client) StatusMessage {
	t.Helper()
	select {
	case raw := <-c.Send:
		msg, ok := raw.(StatusMessage)
		require.True(t, ok, "expected a StatusMessage, got %T", raw)
		return msg
	default:
		t.Fatal("no message queued")
		return StatusMessage{}
	}
}

func TestPublishStatus_ReachesSubscriber(t *testing.T) {
	t.Parallel()
	m := NewManager()
	client := newTestClient(m, 16)
	m.Subscribe(client, "REF123")

	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	m.PublishStatus("REF123", models.TransactionStatusSuccess, at)

	msg := receiveStatus(t, client)
	assert.Equal(t, "payment_status", msg.Type)
	assert.Equal(t, "REF123", msg.Reference)
	assert.Equal(t, models.TransactionStatusSuccess, msg.Status)
	assert.Equal(t, at, msg.Timestamp)

	// Exactly one message per call.
	select {
	case extra := <-client.Send:
		t.Fatalf("unexpected second message: %v", extra)
	default:
	}
}

func TestPublishStatus_OnlyMatchingReference(t *testing.T) {
	t.Parallel()
	m := NewManager()
	interested := newTestClient(m, 16)
	other := newTestClient(m, 16)
	m.Subscribe(interested, "REF123")
	m.Subscribe(other, "REF456")

	m.PublishStatus("REF123", models.TransactionStatusFailed, time.Now())

	receiveStatus(t, interested)
	assert.Empty(t, other.Send)
}

func TestPublishStatus_NoSubscribersIsFine(t *testing.T) {
	t.Parallel()
	m := NewManager()

	// Must not panic or block.
	m.PublishStatus("REF123", models.TransactionStatusSuccess, time.Now())
}

func TestSubscribe_ReplacesPreviousInterest(t *testing.T) {
	t.Parallel()
	m := NewManager()
	client := newTestClient(m, 16)

	m.Subscribe(client, "OLD")
	m.Subscribe(client, "NEW")

	assert.Equal(t, 0, m.SubscriberCount("OLD"), "old entry pruned")
	assert.Equal(t, 1, m.SubscriberCount("NEW"))

	m.PublishStatus("OLD", models.TransactionStatusSuccess, time.Now())
	assert.Empty(t, client.Send)

	m.PublishStatus("NEW", models.TransactionStatusSuccess, time.Now())
	receiveStatus(t, client)
}

func TestUnsubscribe_PrunesEmptyReference(t *testing.T) {
	t.Parallel()
	m := NewManager()
	a := newTestClient(m, 16)
	b := newTestClient(m, 16)
	m.Subscribe(a, "REF123")
	m.Subscribe(b, "REF123")
	require.Equal(t, 2, m.SubscriberCount("REF123"))

	m.Unsubscribe(a)
	assert.Equal(t, 1, m.SubscriberCount("REF123"))

	m.Unsubscribe(b)
	assert.Equal(t, 0, m.SubscriberCount("REF123"))

	// Unsubscribing an unknown client is a no-op.
	m.Unsubscribe(a)
}

func TestPublishStatus_DropsClientWithFullBuffer(t *testing.T) {
	t.Parallel()
	m := NewManager()
	slow := newTestClient(m, 1)
	healthy := newTestClient(m, 16)
	m.Subscribe(slow, "REF123")
	m.Subscribe(healthy, "REF123")

	slow.Send <- "filler" // saturate the slow client's buffer

	m.PublishStatus("REF123", models.TransactionStatusSuccess, time.Now())

	receiveStatus(t, healthy)
	assert.Equal(t, 1, m.SubscriberCount("REF123"), "slow client evicted")
}

func TestTrySend_ClosedChannel(t *testing.T) {
	t.Parallel()
	m := NewManager()
	client := newTestClient(m, 16)
	close(client.Send)

	assert.False(t, client.trySend("anything"))
}
