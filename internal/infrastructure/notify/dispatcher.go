// Package notify delivers fire-and-forget user-visible notifications.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/api/metrics"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

const channelBuffer = 256

type notification struct {
	kind    ports.NotificationKind
	title   string
	message string
}

// Dispatcher buffers notifications on a channel and delivers them from a
// single worker. Notify never blocks: when the buffer is full the
// notification is dropped and counted, honouring the fire-and-forget
// contract.
type Dispatcher struct {
	ch  chan notification
	log zerolog.Logger
}

// NewDispatcher creates a Dispatcher. Call Start before the first Notify.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		ch:  make(chan notification, channelBuffer),
		log: log,
	}
}

// Start launches the delivery worker. The worker stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

// Notify enqueues a notification for delivery.
func (d *Dispatcher) Notify(kind ports.NotificationKind, title, message string) {
	select {
	case d.ch <- notification{kind: kind, title: title, message: message}:
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().Str("title", title).Msg("notification dropped, buffer full")
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.ch:
			if !ok {
				return
			}
			d.deliver(n)
		}
	}
}

func (d *Dispatcher) deliver(n notification) {
	metrics.NotificationsTotal.WithLabelValues(string(n.kind)).Inc()

	evt := d.log.Info()
	if n.kind == ports.NotifyError {
		evt = d.log.Warn()
	}
	evt.Str("kind", string(n.kind)).
		Str("title", n.title).
		Str("message", n.message).
		Msg("notification")
}
