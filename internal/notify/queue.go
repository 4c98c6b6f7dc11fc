package notify

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// Queue dispatches mail off the request path. Enqueue never blocks: when the
// buffer is full the notification is dropped and logged, matching the
// fire-and-forget contract for registration mail.
type Queue struct {
	mailer Mailer
	logger Logger
	ch     chan Message
	done   chan struct{}
}

func NewQueue(mailer Mailer, logger Logger, buffer int) *Queue {
	if buffer <= 0 {
		buffer = 64
	}
	q := &Queue{
		mailer: mailer,
		logger: logger,
		ch:     make(chan Message, buffer),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) Enqueue(msg Message) {
	select {
	case q.ch <- msg:
	default:
		q.logError(fmt.Sprintf("notification queue full, dropping mail to=%s subject=%q", msg.To, msg.Subject))
	}
}

func (q *Queue) run() {
	defer close(q.done)
	for msg := range q.ch {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := q.mailer.Send(ctx, msg); err != nil {
			q.logError(fmt.Sprintf("mail delivery failed to=%s subject=%q: %v", msg.To, msg.Subject, err))
		}
		cancel()
	}
}

// Close stops the worker after draining queued mail.
func (q *Queue) Close() {
	close(q.ch)
	<-q.done
}

func (q *Queue) logError(msg string) {
	if q.logger == nil {
		return
	}
	q.logger.Error(msg)
}
