// Package jobs contains River background job definitions.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"intrahub.io/portal/ent"
	entnotification "intrahub.io/portal/ent/notification"
	"intrahub.io/portal/internal/pkg/logger"
)

const (
	// DefaultNotificationRetention is the retention baseline for inbox
	// notifications without an explicit expiry.
	DefaultNotificationRetention = 90 * 24 * time.Hour
)

// NotificationCleanupArgs is a periodic maintenance job that removes expired
// and out-of-retention notifications from the portal inbox. Delivery records
// are removed by the cascading foreign key.
type NotificationCleanupArgs struct{}

// Kind returns the job kind identifier for periodic notification cleanup.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationCleanupWorker deletes notifications that are past their
// expires_at or older than the configured retention duration.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewNotificationCleanupWorker creates a cleanup worker. Non-positive
// retention falls back to the 90-day default.
func NewNotificationCleanupWorker(entClient *ent.Client, retention time.Duration) *NotificationCleanupWorker {
	if retention <= 0 {
		retention = DefaultNotificationRetention
	}
	return &NotificationCleanupWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work removes expired notification rows.
func (w *NotificationCleanupWorker) Work(ctx context.Context, _ *river.Job[NotificationCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("notification cleanup worker is not initialized")
	}

	now := time.Now().UTC()
	cutoff := now.Add(-w.retention)

	deleted, err := w.entClient.Notification.Delete().
		Where(
			entnotification.Or(
				entnotification.ExpiresAtLT(now),
				entnotification.CreatedAtLT(cutoff),
			),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete expired notifications before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("notification cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
