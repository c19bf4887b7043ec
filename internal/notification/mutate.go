package notification

import (
	"context"
	"fmt"
	"time"

	"intrahub.io/portal/ent"
	entrecipient "intrahub.io/portal/ent/recipient"
	apperrors "intrahub.io/portal/internal/pkg/errors"
)

// Bulk mutation actions.
const (
	ActionRead    = "read"
	ActionUnread  = "unread"
	ActionDelete  = "delete"
	ActionReadAll = "read_all"
)

// Mutator applies read-state mutations to a user's own delivery records.
//
// Every mutation is constrained to user_id = caller: supplying another
// user's notification IDs matches zero rows instead of failing, so a caller
// can never alter someone else's inbox regardless of role.
type Mutator struct {
	client *ent.Client
}

// NewMutator creates a new bulk mutation service.
func NewMutator(client *ent.Client) *Mutator {
	return &Mutator{client: client}
}

// MarkRead sets read_at on the caller's delivery records for the given
// notifications. Already-read records are re-stamped, not skipped.
func (m *Mutator) MarkRead(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	affected, err := m.client.Recipient.Update().
		Where(
			entrecipient.UserIDEQ(userID),
			entrecipient.NotificationIDIn(notificationIDs...),
		).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark read: %w", err)
	}
	return affected, nil
}

// MarkUnread clears read_at, returning the records to the unread state. The
// read/unread toggle keeps no history.
func (m *Mutator) MarkUnread(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	affected, err := m.client.Recipient.Update().
		Where(
			entrecipient.UserIDEQ(userID),
			entrecipient.NotificationIDIn(notificationIDs...),
		).
		ClearReadAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark unread: %w", err)
	}
	return affected, nil
}

// Delete removes the caller's delivery records for the given notifications.
// The notification itself and other recipients' records are untouched.
func (m *Mutator) Delete(ctx context.Context, userID string, notificationIDs []string) (int, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}
	affected, err := m.client.Recipient.Delete().
		Where(
			entrecipient.UserIDEQ(userID),
			entrecipient.NotificationIDIn(notificationIDs...),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete delivery records: %w", err)
	}
	return affected, nil
}

// MarkAllRead marks every currently-unread record of the caller as read and
// reports how many actually changed. Unlike the other actions it ignores
// any supplied ID list.
func (m *Mutator) MarkAllRead(ctx context.Context, userID string) (int, error) {
	affected, err := m.client.Recipient.Update().
		Where(
			entrecipient.UserIDEQ(userID),
			entrecipient.ReadAtIsNil(),
		).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return affected, nil
}

// Apply dispatches a bulk action by name.
func (m *Mutator) Apply(ctx context.Context, userID, action string, notificationIDs []string) (int, error) {
	switch action {
	case ActionRead:
		return m.MarkRead(ctx, userID, notificationIDs)
	case ActionUnread:
		return m.MarkUnread(ctx, userID, notificationIDs)
	case ActionDelete:
		return m.Delete(ctx, userID, notificationIDs)
	case ActionReadAll:
		return m.MarkAllRead(ctx, userID)
	default:
		return 0, apperrors.BadRequest(apperrors.CodeInvalidBulkAction, "unknown bulk action: "+action)
	}
}
