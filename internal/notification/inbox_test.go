package notification

import (
	"net/http"
	"testing"

	apperrors "intrahub.io/portal/internal/pkg/errors"
)

func TestInbox_List_ReadStateAndTypeFilters(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "inbox_filters")
	store := NewStore(client)
	inbox := NewInbox(client)
	mutator := NewMutator(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")

	nGeneral := mustSend(t, store, SendInput{
		Title: "General one", Message: "m", SenderID: "sender-1",
	}, []string{"user-a"})
	nWarning := mustSend(t, store, SendInput{
		Title: "Warning one", Message: "m", Type: TypeWarning, SenderID: "sender-1",
	}, []string{"user-a"})

	if _, err := mutator.MarkRead(t.Context(), "user-a", []string{nGeneral.ID}); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	tests := []struct {
		name    string
		filter  InboxFilter
		wantIDs []string
	}{
		{"all", InboxFilter{ReadState: FilterAll}, []string{nWarning.ID, nGeneral.ID}},
		{"unread only", InboxFilter{ReadState: FilterUnread}, []string{nWarning.ID}},
		{"read only", InboxFilter{ReadState: FilterRead}, []string{nGeneral.ID}},
		{"type warning", InboxFilter{Type: TypeWarning}, []string{nWarning.ID}},
		{"unread general", InboxFilter{ReadState: FilterUnread, Type: TypeGeneral}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			result, err := inbox.List(t.Context(), "user-a", tc.filter, InboxPage{})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(result.Items) != len(tc.wantIDs) {
				t.Fatalf("items len = %d, want %d", len(result.Items), len(tc.wantIDs))
			}
			for i, want := range tc.wantIDs {
				if result.Items[i].ID != want {
					t.Fatalf("items[%d].ID = %s, want %s", i, result.Items[i].ID, want)
				}
			}
			// Total counts with the same predicate as the page.
			if result.Total != len(tc.wantIDs) {
				t.Fatalf("total = %d, want %d", result.Total, len(tc.wantIDs))
			}
		})
	}
}

func TestInbox_List_UnknownReadStateFilter(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "inbox_bad_filter")
	inbox := NewInbox(client)

	_, err := inbox.List(t.Context(), "user-a", InboxFilter{ReadState: "archived"}, InboxPage{})
	if err == nil {
		t.Fatal("List() with unknown read-state filter succeeded, want error")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok {
		t.Fatalf("List() error = %v, want AppError", err)
	}
	if appErr.Code != apperrors.CodeInvalidRequest {
		t.Fatalf("error code = %q, want %q", appErr.Code, apperrors.CodeInvalidRequest)
	}
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("HTTP status = %d, want %d", appErr.HTTPStatus, http.StatusBadRequest)
	}
}

func TestInbox_List_PaginationBoundary(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "inbox_pagination")
	store := NewStore(client)
	inbox := NewInbox(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")

	for i := 0; i < 5; i++ {
		mustSend(t, store, SendInput{
			Title: "n", Message: "m", SenderID: "sender-1",
		}, []string{"user-a"})
	}

	first, err := inbox.List(t.Context(), "user-a", InboxFilter{}, InboxPage{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List() page 1 error = %v", err)
	}
	if len(first.Items) != 2 || first.Total != 5 || !first.HasMore {
		t.Fatalf("page 1: items=%d total=%d hasMore=%v, want 2/5/true",
			len(first.Items), first.Total, first.HasMore)
	}

	last, err := inbox.List(t.Context(), "user-a", InboxFilter{}, InboxPage{Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("List() last page error = %v", err)
	}
	if len(last.Items) != 1 || last.HasMore {
		t.Fatalf("last page: items=%d hasMore=%v, want 1/false", len(last.Items), last.HasMore)
	}

	past, err := inbox.List(t.Context(), "user-a", InboxFilter{}, InboxPage{Limit: 2, Offset: 10})
	if err != nil {
		t.Fatalf("List() past-end error = %v", err)
	}
	if len(past.Items) != 0 || past.HasMore {
		t.Fatalf("past end: items=%d hasMore=%v, want 0/false", len(past.Items), past.HasMore)
	}
}

func TestInbox_List_SenderNameFallback(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "inbox_sender_name")
	store := NewStore(client)
	inbox := NewInbox(client)

	// Sender without a display name resolves to the username; a display name
	// wins when present.
	mustCreateUser(t, client, "sender-plain", "plain.sender")
	named, err := client.User.Create().
		SetID("sender-named").
		SetUsername("named.sender").
		SetDisplayName("Maria Souza").
		SetApproved(true).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create named sender: %v", err)
	}
	mustCreateUser(t, client, "user-a", "user.a")

	mustSend(t, store, SendInput{
		Title: "From plain", Message: "m", SenderID: "sender-plain",
	}, []string{"user-a"})
	mustSend(t, store, SendInput{
		Title: "From named", Message: "m", SenderID: named.ID,
	}, []string{"user-a"})

	result, err := inbox.List(t.Context(), "user-a", InboxFilter{}, InboxPage{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("items len = %d, want 2", len(result.Items))
	}

	byTitle := map[string]string{}
	for _, item := range result.Items {
		byTitle[item.Title] = item.SenderName
	}
	if byTitle["From named"] != "Maria Souza" {
		t.Fatalf("sender name = %q, want display name", byTitle["From named"])
	}
	if byTitle["From plain"] != "plain.sender" {
		t.Fatalf("sender name = %q, want username fallback", byTitle["From plain"])
	}
}

func TestInbox_UnreadCount(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "inbox_unread_count")
	store := NewStore(client)
	inbox := NewInbox(client)
	mutator := NewMutator(client)

	mustCreateUser(t, client, "sender-1", "the.sender")
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")

	n1 := mustSend(t, store, SendInput{Title: "one", Message: "m", SenderID: "sender-1"}, []string{"user-a", "user-b"})
	mustSend(t, store, SendInput{Title: "two", Message: "m", SenderID: "sender-1"}, []string{"user-a"})

	if _, err := mutator.MarkRead(t.Context(), "user-a", []string{n1.ID}); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	countA, err := inbox.UnreadCount(t.Context(), "user-a")
	if err != nil {
		t.Fatalf("UnreadCount(user-a) error = %v", err)
	}
	if countA != 1 {
		t.Fatalf("user-a unread = %d, want 1", countA)
	}

	countB, err := inbox.UnreadCount(t.Context(), "user-b")
	if err != nil {
		t.Fatalf("UnreadCount(user-b) error = %v", err)
	}
	if countB != 1 {
		t.Fatalf("user-b unread = %d, want 1 (unaffected by user-a's read)", countB)
	}
}
