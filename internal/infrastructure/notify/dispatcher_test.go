package notify

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/api/metrics"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
)

func TestDispatcher_DeliversNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(zerolog.Nop())
	d.Start(ctx)

	before := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("success"))
	d.Notify(ports.NotifySuccess, "Success", "User added successfully.")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("success")) > before {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("notification never delivered")
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	// Worker not started: fill the buffer past capacity and expect drops
	// instead of a hang.
	d := NewDispatcher(zerolog.Nop())

	before := testutil.ToFloat64(metrics.NotificationsDroppedTotal)
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Notify(ports.NotifyError, "Error", "overflow")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Notify blocked on a full buffer")
	}

	if testutil.ToFloat64(metrics.NotificationsDroppedTotal) <= before {
		t.Fatalf("expected dropped notifications to be counted")
	}
}
