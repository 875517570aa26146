package listener

import (
	"testing"

	"github.com/anzhiyu-c/anheyu-post/internal/pkg/event"
	"github.com/stretchr/testify/assert"
)

func TestPostListenerCountsEvents(t *testing.T) {
	bus := event.NewEventBusWithSize(1, 8)
	l := NewPostListener(bus)

	bus.Publish(event.PostCreated, uint64(1))
	bus.Publish(event.PostCreated, uint64(2))
	bus.Publish(event.PostDeleted, uint64(1))
	bus.Publish(event.PostDeleted, "not-an-id")
	bus.Shutdown()

	assert.Equal(t, PostStats{Created: 2, Deleted: 1}, l.Stats())
}
