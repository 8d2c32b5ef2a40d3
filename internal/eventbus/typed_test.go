package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type predicted struct {
	ID  string
	CO2 float64
}

func TestTypedBusPublishSubscribe(t *testing.T) {
	bus := NewTyped[predicted]()
	ch := bus.Subscribe()
	bus.Publish(predicted{ID: "a", CO2: 1.5})
	assert.Equal(t, predicted{ID: "a", CO2: 1.5}, <-ch)
	bus.Unsubscribe(ch)
	_, ok := <-ch
	assert.False(t, ok)
}

func TestTypedBusDropsWhenFull(t *testing.T) {
	bus := NewTypedWithBuffer[int](1)
	ch := bus.Subscribe()
	bus.Publish(1)
	bus.Publish(2)
	bus.Publish(3)
	assert.Equal(t, 1, <-ch)
	assert.Equal(t, uint64(2), bus.Dropped())
}

func TestTypedBusClose(t *testing.T) {
	bus := NewTyped[int]()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	_, ok := <-ch1
	assert.False(t, ok)
	_, ok = <-ch2
	assert.False(t, ok)

	bus.Publish(1)
	late := bus.Subscribe()
	_, ok = <-late
	assert.False(t, ok, "subscribing after close yields a closed channel")
}

func TestTypedBusUnsubscribeAfterClose(t *testing.T) {
	bus := NewTyped[float64]()
	ch := bus.Subscribe()
	bus.Close()
	assert.NotPanics(t, func() { bus.Unsubscribe(ch) })
}
