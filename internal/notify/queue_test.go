package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type recordingMailer struct {
	mu       sync.Mutex
	messages []Message
	fail     bool
}

func (m *recordingMailer) Send(ctx context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func TestQueueDeliversAndDrainsOnClose(t *testing.T) {
	mailer := &recordingMailer{}
	queue := NewQueue(mailer, nil, 4)

	queue.Enqueue(Message{To: "a@example.com", Subject: "one"})
	queue.Enqueue(Message{To: "b@example.com", Subject: "two"})
	queue.Close()

	if mailer.count() != 2 {
		t.Fatalf("expected two delivered messages, got %d", mailer.count())
	}
}

func TestQueueSurvivesMailerFailure(t *testing.T) {
	mailer := &recordingMailer{fail: true}
	queue := NewQueue(mailer, nil, 4)

	queue.Enqueue(Message{To: "a@example.com", Subject: "one"})
	queue.Close()

	// Delivery failed but nothing blocked or panicked.
	if mailer.count() != 0 {
		t.Fatalf("expected no delivered messages, got %d", mailer.count())
	}
}
