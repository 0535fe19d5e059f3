package events

import (
	"context"
	"testing"

	"coatingshop/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(t entities.QuoteEventType, id string, status entities.QuoteStatus) entities.QuoteEvent {
	return entities.QuoteEvent{Type: t, Quote: entities.Quote{ID: id, Status: status}}
}

func TestHub_PublishReachesOnlyMatchingSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe("q-1")
	b := h.Subscribe("q-2")
	defer a.Close()
	defer b.Close()

	require.NoError(t, h.Publish(context.Background(), event(entities.QuoteEventUpdated, "q-1", entities.QuoteStatusApproved)))

	select {
	case q := <-a.C():
		assert.Equal(t, entities.QuoteStatusApproved, q.Status)
	default:
		t.Fatal("expected a snapshot for q-1")
	}
	select {
	case q := <-b.C():
		t.Fatalf("unexpected snapshot for q-2: %+v", q)
	default:
	}
}

func TestHub_SlowSubscriberDropsOldest(t *testing.T) {
	h := NewHub()
	s := h.Subscribe("q-1")
	defer s.Close()

	total := SubscriptionBuffer + 3
	for i := 0; i < total; i++ {
		q := entities.Quote{ID: "q-1", OrderNumber: string(rune('a' + i))}
		require.NoError(t, h.Publish(context.Background(), entities.QuoteEvent{Type: entities.QuoteEventUpdated, Quote: q}))
	}

	var got []string
	for len(s.C()) > 0 {
		got = append(got, (<-s.C()).OrderNumber)
	}
	require.Len(t, got, SubscriptionBuffer)
	assert.Equal(t, string(rune('a'+3)), got[0])
	assert.Equal(t, string(rune('a'+total-1)), got[len(got)-1])
}

func TestHub_CloseIsIdempotentAndUnregisters(t *testing.T) {
	h := NewHub()
	s := h.Subscribe("q-1")
	assert.Equal(t, 1, h.Subscribers("q-1"))

	s.Close()
	s.Close()
	assert.Equal(t, 0, h.Subscribers("q-1"))

	_, open := <-s.C()
	assert.False(t, open)

	require.NoError(t, h.Publish(context.Background(), event(entities.QuoteEventUpdated, "q-1", entities.QuoteStatusCoating)))
}

func TestHub_DeleteSendsFinalSnapshotAndCloses(t *testing.T) {
	h := NewHub()
	s := h.Subscribe("q-1")

	require.NoError(t, h.Publish(context.Background(), event(entities.QuoteEventDeleted, "q-1", entities.QuoteStatusPending)))

	q, open := <-s.C()
	require.True(t, open)
	assert.Equal(t, "q-1", q.ID)

	_, open = <-s.C()
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers("q-1"))

	s.Close()
}

func TestHub_ShutdownClosesEveryStream(t *testing.T) {
	h := NewHub()
	a := h.Subscribe("q-1")
	b := h.Subscribe("q-2")

	h.Shutdown()

	_, ok := <-a.C()
	assert.False(t, ok)
	_, ok = <-b.C()
	assert.False(t, ok)
	assert.Zero(t, h.Subscribers("q-1"))

	late := h.Subscribe("q-1")
	_, ok = <-late.C()
	assert.False(t, ok)
	assert.Zero(t, h.Subscribers("q-1"))

	a.Close()
	late.Close()
	require.NoError(t, h.Publish(context.Background(), event(entities.QuoteEventUpdated, "q-1", entities.QuoteStatusApproved)))
}
