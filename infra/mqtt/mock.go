package mqtt

import "sync"

// Message is a payload captured by MockPublisher.
type Message struct {
	Topic   string
	Payload []byte
}

// MockPublisher records published messages. It is used in tests.
type MockPublisher struct {
	Err error

	mu       sync.Mutex
	messages []Message
}

// Publish records the message or returns Err when set.
func (m *MockPublisher) Publish(topic string, payload []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.messages = append(m.messages, Message{Topic: topic, Payload: append([]byte(nil), payload...)})
	m.mu.Unlock()
	return nil
}

// Messages returns a copy of the recorded messages.
func (m *MockPublisher) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.messages...)
}
