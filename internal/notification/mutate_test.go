package notification

import (
	"testing"

	"intrahub.io/portal/ent"
	entrecipient "intrahub.io/portal/ent/recipient"
	apperrors "intrahub.io/portal/internal/pkg/errors"
)

func TestMutator_ReadUnreadRoundTrip(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "mutate_roundtrip")
	store := NewStore(client)
	mutator := NewMutator(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")

	n := mustSend(t, store, SendInput{Title: "t", Message: "m", SenderID: "sender-1"}, []string{"user-a"})

	affected, err := mutator.MarkRead(t.Context(), "user-a", []string{n.ID})
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if affected != 1 {
		t.Fatalf("MarkRead() affected = %d, want 1", affected)
	}

	rec := mustGetDelivery(t, client, n.ID, "user-a")
	if rec.ReadAt == nil {
		t.Fatal("read_at = nil after MarkRead, want timestamp")
	}

	affected, err = mutator.MarkUnread(t.Context(), "user-a", []string{n.ID})
	if err != nil {
		t.Fatalf("MarkUnread() error = %v", err)
	}
	if affected != 1 {
		t.Fatalf("MarkUnread() affected = %d, want 1", affected)
	}

	rec = mustGetDelivery(t, client, n.ID, "user-a")
	if rec.ReadAt != nil {
		t.Fatalf("read_at = %v after MarkUnread, want nil", rec.ReadAt)
	}
}

func TestMutator_ScopedToCaller(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "mutate_scoped")
	store := NewStore(client)
	mutator := NewMutator(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")

	n := mustSend(t, store, SendInput{Title: "t", Message: "m", SenderID: "sender-1"}, []string{"user-a", "user-b"})

	// user-b supplies the notification ID but can only touch their own row.
	affected, err := mutator.MarkRead(t.Context(), "user-b", []string{n.ID})
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if affected != 1 {
		t.Fatalf("MarkRead() affected = %d, want 1", affected)
	}

	recA := mustGetDelivery(t, client, n.ID, "user-a")
	if recA.ReadAt != nil {
		t.Fatal("user-a's delivery became read through user-b's mutation")
	}

	// Deleting scoped: user-b removes only their own copy.
	affected, err = mutator.Delete(t.Context(), "user-b", []string{n.ID})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if affected != 1 {
		t.Fatalf("Delete() affected = %d, want 1", affected)
	}

	remaining, err := client.Recipient.Query().
		Where(entrecipient.NotificationIDEQ(n.ID)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count remaining deliveries: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("remaining deliveries = %d, want 1", remaining)
	}

	// The notification row itself survives recipient-side deletes.
	if _, err := client.Notification.Get(t.Context(), n.ID); err != nil {
		t.Fatalf("notification row gone after recipient delete: %v", err)
	}
}

func TestMutator_MarkAllRead_IgnoresIDList(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "mutate_read_all")
	store := NewStore(client)
	mutator := NewMutator(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")

	n1 := mustSend(t, store, SendInput{Title: "one", Message: "m", SenderID: "sender-1"}, []string{"user-a", "user-b"})
	mustSend(t, store, SendInput{Title: "two", Message: "m", SenderID: "sender-1"}, []string{"user-a"})
	mustSend(t, store, SendInput{Title: "three", Message: "m", SenderID: "sender-1"}, []string{"user-a"})

	// read_all via Apply targets every unread row of the caller even though
	// only one ID was supplied.
	affected, err := mutator.Apply(t.Context(), "user-a", ActionReadAll, []string{n1.ID})
	if err != nil {
		t.Fatalf("Apply(read_all) error = %v", err)
	}
	if affected != 3 {
		t.Fatalf("Apply(read_all) affected = %d, want 3", affected)
	}

	unreadA, err := client.Recipient.Query().
		Where(entrecipient.UserIDEQ("user-a"), entrecipient.ReadAtIsNil()).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count user-a unread: %v", err)
	}
	if unreadA != 0 {
		t.Fatalf("user-a unread = %d, want 0", unreadA)
	}

	unreadB, err := client.Recipient.Query().
		Where(entrecipient.UserIDEQ("user-b"), entrecipient.ReadAtIsNil()).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count user-b unread: %v", err)
	}
	if unreadB != 1 {
		t.Fatalf("user-b unread = %d, want 1", unreadB)
	}

	// A second read_all changes nothing.
	affected, err = mutator.MarkAllRead(t.Context(), "user-a")
	if err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if affected != 0 {
		t.Fatalf("second MarkAllRead() affected = %d, want 0", affected)
	}
}

func TestMutator_Apply_UnknownAction(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "mutate_unknown")
	mutator := NewMutator(client)

	_, err := mutator.Apply(t.Context(), "user-a", "archive", []string{"n-1"})
	if err == nil {
		t.Fatal("Apply() with unknown action succeeded, want error")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("Apply() error = %v, want AppError", err)
	}
	if appErr.Code != apperrors.CodeInvalidBulkAction {
		t.Fatalf("error code = %q, want %q", appErr.Code, apperrors.CodeInvalidBulkAction)
	}
}

func mustGetDelivery(t *testing.T, client *ent.Client, notificationID, userID string) *ent.Recipient {
	t.Helper()
	rec, err := client.Recipient.Query().
		Where(
			entrecipient.NotificationIDEQ(notificationID),
			entrecipient.UserIDEQ(userID),
		).
		Only(t.Context())
	if err != nil {
		t.Fatalf("get delivery record: %v", err)
	}
	return rec
}
