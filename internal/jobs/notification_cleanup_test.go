package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	entnotification "intrahub.io/portal/ent/notification"
	entrecipient "intrahub.io/portal/ent/recipient"
	"intrahub.io/portal/internal/pkg/logger"
	"intrahub.io/portal/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults to ninety days when non-positive", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, 0)
		if w.retention != DefaultNotificationRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestNotificationCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *NotificationCleanupWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil ent client", func(t *testing.T) {
		w := &NotificationCleanupWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestNotificationCleanupWorkerWork_DeletesExpiredRows(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "jobs_cleanup")
	ctx := t.Context()

	for _, u := range []struct{ id, username string }{
		{"sender-1", "the.sender"},
		{"user-1", "user.one"},
		{"user-2", "user.two"},
	} {
		if _, err := client.User.Create().
			SetID(u.id).
			SetUsername(u.username).
			SetApproved(true).
			Save(ctx); err != nil {
			t.Fatalf("create user %s: %v", u.id, err)
		}
	}

	now := time.Now().UTC()
	create := func(id string, createdAt time.Time, expiresAt *time.Time, recipientIDs ...string) {
		t.Helper()
		builder := client.Notification.Create().
			SetID(id).
			SetTitle("title " + id).
			SetMessage("message " + id).
			SetSenderID("sender-1").
			SetCreatedAt(createdAt)
		if expiresAt != nil {
			builder = builder.SetExpiresAt(*expiresAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			t.Fatalf("create notification %s: %v", id, err)
		}
		for _, userID := range recipientIDs {
			if _, err := client.Recipient.Create().
				SetID(id + "-" + userID).
				SetNotificationID(id).
				SetUserID(userID).
				Save(ctx); err != nil {
				t.Fatalf("create delivery row for %s/%s: %v", id, userID, err)
			}
		}
	}

	pastExpiry := now.Add(-time.Hour)
	futureExpiry := now.Add(48 * time.Hour)
	create("notif-expired", now, &pastExpiry, "user-1", "user-2")
	create("notif-stale", now.Add(-31*24*time.Hour), nil, "user-1")
	create("notif-fresh", now, &futureExpiry, "user-1")
	create("notif-recent", now.Add(-time.Hour), nil)

	worker := NewNotificationCleanupWorker(client, 30*24*time.Hour)
	if err := worker.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	remaining, err := client.Notification.Query().
		Order(entnotification.ByID()).
		IDs(ctx)
	if err != nil {
		t.Fatalf("query remaining: %v", err)
	}
	want := []string{"notif-fresh", "notif-recent"}
	if len(remaining) != len(want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
	for i := range want {
		if remaining[i] != want[i] {
			t.Fatalf("remaining = %v, want %v", remaining, want)
		}
	}

	// Delivery rows of deleted notifications cascade away; rows belonging to
	// surviving notifications stay.
	deliveries, err := client.Recipient.Query().
		Order(entrecipient.ByID()).
		IDs(ctx)
	if err != nil {
		t.Fatalf("query remaining deliveries: %v", err)
	}
	wantDeliveries := []string{"notif-fresh-user-1"}
	if len(deliveries) != len(wantDeliveries) || deliveries[0] != wantDeliveries[0] {
		t.Fatalf("remaining deliveries = %v, want %v", deliveries, wantDeliveries)
	}
}
