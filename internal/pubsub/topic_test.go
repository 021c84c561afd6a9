package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic_PublishOrder(t *testing.T) {
	var topic Topic[int]
	var got []string

	topic.Subscribe(func(v int) { got = append(got, "a") })
	topic.Subscribe(func(v int) { got = append(got, "b") })
	topic.Publish(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, topic.Len())
}

func TestTopic_Cancel(t *testing.T) {
	var topic Topic[string]
	calls := 0
	cancel := topic.Subscribe(func(string) { calls++ })

	topic.Publish("x")
	cancel()
	cancel()
	topic.Publish("y")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, topic.Len())
}

func TestTopic_CancelDuringPublish(t *testing.T) {
	var topic Topic[int]
	var cancelSecond func()
	secondCalls := 0

	topic.Subscribe(func(int) { cancelSecond() })
	cancelSecond = topic.Subscribe(func(int) { secondCalls++ })

	topic.Publish(1)
	topic.Publish(2)

	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, topic.Len())
}

func TestTopic_PayloadIsCopied(t *testing.T) {
	type payload struct{ N int }
	var topic Topic[payload]
	var seen payload
	topic.Subscribe(func(p payload) { seen = p })

	p := payload{N: 1}
	topic.Publish(p)
	p.N = 2

	assert.Equal(t, 1, seen.N)
}
