package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.PublishJSON(context.Background(), "booking.created", map[string]any{"id": "b1"}))
}

func TestNewAMQPPublisherBadURL(t *testing.T) {
	_, err := NewAMQPPublisher("amqp://127.0.0.1:1/", "arenakita.test")
	assert.Error(t, err)
}
