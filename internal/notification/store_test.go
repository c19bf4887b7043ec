package notification

import (
	"strings"
	"testing"

	entnotification "intrahub.io/portal/ent/notification"
	entrecipient "intrahub.io/portal/ent/recipient"
)

func TestStore_Send_CreatesOneDeliveryRowPerRecipient(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "store_send")
	store := NewStore(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")
	mustCreateUser(t, client, "user-c", "user.c")

	created := mustSend(t, store, SendInput{
		Title:    "Maintenance window",
		Message:  "Portal goes down at midnight",
		Type:     TypeWarning,
		Priority: PriorityHigh,
		SenderID: "sender-1",
	}, []string{"user-a", "user-b", "user-c"})

	if created.Type != entnotification.TypeWARNING {
		t.Fatalf("type = %s, want WARNING", created.Type)
	}
	if created.Priority != entnotification.PriorityHIGH {
		t.Fatalf("priority = %s, want HIGH", created.Priority)
	}

	rows, err := client.Recipient.Query().
		Where(entrecipient.NotificationIDEQ(created.ID)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count delivery rows: %v", err)
	}
	if rows != 3 {
		t.Fatalf("delivery rows = %d, want 3", rows)
	}

	unread, err := client.Recipient.Query().
		Where(
			entrecipient.NotificationIDEQ(created.ID),
			entrecipient.ReadAtIsNil(),
		).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count unread rows: %v", err)
	}
	if unread != 3 {
		t.Fatalf("unread rows = %d, want 3 (new deliveries start unread)", unread)
	}
}

func TestStore_Send_DefaultsTypeAndPriority(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "store_defaults")
	store := NewStore(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")

	created := mustSend(t, store, SendInput{
		Title:    "Hello",
		Message:  "World",
		SenderID: "sender-1",
	}, []string{"user-a"})

	if created.Type != entnotification.TypeGENERAL {
		t.Fatalf("type = %s, want GENERAL default", created.Type)
	}
	if created.Priority != entnotification.PriorityNORMAL {
		t.Fatalf("priority = %s, want NORMAL default", created.Priority)
	}
}

func TestStore_Send_RollsBackOnBadRecipient(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "store_rollback")
	store := NewStore(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")

	// The second recipient violates the user FK, so the whole send must fail
	// and leave no notification behind.
	_, _, err := store.Send(t.Context(), SendInput{
		Title:    "Doomed",
		Message:  "This should not persist",
		SenderID: "sender-1",
	}, []string{"user-a", "user-missing"})
	if err == nil {
		t.Fatal("Send() with missing recipient user succeeded, want error")
	}

	notifications, cerr := client.Notification.Query().Count(t.Context())
	if cerr != nil {
		t.Fatalf("count notifications: %v", cerr)
	}
	if notifications != 0 {
		t.Fatalf("notifications = %d, want 0 after rollback", notifications)
	}

	deliveries, cerr := client.Recipient.Query().Count(t.Context())
	if cerr != nil {
		t.Fatalf("count delivery rows: %v", cerr)
	}
	if deliveries != 0 {
		t.Fatalf("delivery rows = %d, want 0 after rollback", deliveries)
	}
}

func TestStore_Send_Validation(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "store_validation")
	store := NewStore(client)

	tests := []struct {
		name    string
		input   SendInput
		wantSub string
	}{
		{
			name:    "missing title",
			input:   SendInput{Message: "m", SenderID: "s"},
			wantSub: "title",
		},
		{
			name:    "missing message",
			input:   SendInput{Title: "t", SenderID: "s"},
			wantSub: "message",
		},
		{
			name:    "missing sender",
			input:   SendInput{Title: "t", Message: "m"},
			wantSub: "sender_id",
		},
		{
			name:    "unknown type",
			input:   SendInput{Title: "t", Message: "m", SenderID: "s", Type: "shout"},
			wantSub: "unknown notification type",
		},
		{
			name:    "unknown priority",
			input:   SendInput{Title: "t", Message: "m", SenderID: "s", Priority: "extreme"},
			wantSub: "unknown notification priority",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := store.Send(t.Context(), tc.input, nil)
			if err == nil {
				t.Fatal("Send() succeeded, want validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error = %q, want substring %q", err, tc.wantSub)
			}
		})
	}
}
