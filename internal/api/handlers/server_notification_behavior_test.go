package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	entrecipient "intrahub.io/portal/ent/recipient"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/notification"
)

type inboxListResponse struct {
	Notifications []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		SenderName string `json:"senderName"`
		Read       bool   `json:"read"`
	} `json:"notifications"`
	Pagination Pagination `json:"pagination"`
}

func TestListNotifications_UserScopedAndFiltered(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_list")
	mustCreateUser(t, client, "sender-1", "the.sender", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	n1 := mustDeliver(t, srv, "sender-1", []string{"user-1"}, "first")
	n2 := mustDeliver(t, srv, "sender-1", []string{"user-1"}, "second")
	mustDeliver(t, srv, "sender-1", []string{"user-2"}, "other-inbox")

	if _, err := srv.mutator.MarkRead(t.Context(), "user-1", []string{n1}); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	{
		c, w := newAuthedGinContext(t, http.MethodGet, "/notifications?filter=unread", "", testActor{UserID: "user-1", Role: "user"})
		srv.ListNotifications(c)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp inboxListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode unread response: %v", err)
		}
		if len(resp.Notifications) != 1 {
			t.Fatalf("unread items len = %d, want 1", len(resp.Notifications))
		}
		if resp.Notifications[0].ID != n2 {
			t.Fatalf("unread item = %s, want %s", resp.Notifications[0].ID, n2)
		}
		if resp.Pagination.Total != 1 {
			t.Fatalf("unread total = %d, want 1 (filter-consistent)", resp.Pagination.Total)
		}
	}

	{
		c, w := newAuthedGinContext(t, http.MethodGet, "/notifications", "", testActor{UserID: "user-1", Role: "user"})
		srv.ListNotifications(c)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp inboxListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode all response: %v", err)
		}
		if len(resp.Notifications) != 2 {
			t.Fatalf("all items len = %d, want 2", len(resp.Notifications))
		}
		if resp.Pagination.Total != 2 || resp.Pagination.HasMore {
			t.Fatalf("pagination = %+v, want total=2 hasMore=false", resp.Pagination)
		}
	}
}

func TestUpdateNotification_ReadUnreadToggle(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_update")
	mustCreateUser(t, client, "sender-1", "the.sender", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)

	nID := mustDeliver(t, srv, "sender-1", []string{"user-1"}, "toggle-me")

	c, w := newAuthedGinContext(t, http.MethodPut, "/notifications",
		`{"notificationId":"`+nID+`","action":"read"}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.UpdateNotification(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	rec, err := client.Recipient.Query().
		Where(entrecipient.NotificationIDEQ(nID), entrecipient.UserIDEQ("user-1")).
		Only(t.Context())
	if err != nil {
		t.Fatalf("query delivery: %v", err)
	}
	if rec.ReadAt == nil {
		t.Fatal("read_at = nil after read action")
	}

	c, w = newAuthedGinContext(t, http.MethodPut, "/notifications",
		`{"notificationId":"`+nID+`","action":"delete"}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.UpdateNotification(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d for unsupported toggle action", w.Code, http.StatusBadRequest)
	}
	assertErrorCode(t, w.Body.Bytes(), "INVALID_BULK_ACTION")
}

func TestUpdateNotification_OtherUsersRecordNotFound(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_update_scope")
	mustCreateUser(t, client, "sender-1", "the.sender", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	nID := mustDeliver(t, srv, "sender-1", []string{"user-2"}, "not-yours")

	c, w := newAuthedGinContext(t, http.MethodPut, "/notifications",
		`{"notificationId":"`+nID+`","action":"read"}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.UpdateNotification(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNotFound, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "NOTIFICATION_NOT_FOUND")
}

func TestDeleteNotification_RemovesOnlyCallersCopy(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_delete")
	mustCreateUser(t, client, "sender-1", "the.sender", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	nID := mustDeliver(t, srv, "sender-1", []string{"user-1", "user-2"}, "shared")

	c, w := newAuthedGinContext(t, http.MethodDelete, "/notifications?id="+nID, "",
		testActor{UserID: "user-1", Role: "user"})
	srv.DeleteNotification(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	remaining, err := client.Recipient.Query().
		Where(entrecipient.NotificationIDEQ(nID)).
		All(t.Context())
	if err != nil {
		t.Fatalf("query remaining deliveries: %v", err)
	}
	if len(remaining) != 1 || remaining[0].UserID != "user-2" {
		t.Fatalf("remaining deliveries = %v, want only user-2's copy", remaining)
	}
}

func TestBulkMutate_ReadAllScopedToCaller(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_bulk")
	mustCreateUser(t, client, "sender-1", "the.sender", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	mustDeliver(t, srv, "sender-1", []string{"user-1", "user-2"}, "a")
	mustDeliver(t, srv, "sender-1", []string{"user-1"}, "b")

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/bulk",
		`{"action":"read_all"}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.BulkMutate(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Affected int `json:"affected"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode bulk response: %v", err)
	}
	if resp.Affected != 2 {
		t.Fatalf("affected = %d, want 2", resp.Affected)
	}

	unread2, err := client.Recipient.Query().
		Where(entrecipient.UserIDEQ("user-2"), entrecipient.ReadAtIsNil()).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count user-2 unread: %v", err)
	}
	if unread2 != 1 {
		t.Fatalf("user-2 unread = %d, want 1", unread2)
	}
}

func TestBulkMutate_UnknownAction(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, "handler_bulk_bad_action")

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/bulk",
		`{"action":"archive","notificationIds":["n-1"]}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.BulkMutate(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "INVALID_BULK_ACTION")
}

func TestSendNotification_PlainUserForbidden(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_send_user_forbidden")
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/send",
		`{"title":"t","message":"m","userIds":["user-1"]}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.SendNotification(c)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "SCOPE_PERMISSION_DENIED")
}

func TestSendNotification_ForeignSectorDeniedWithoutWrites(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_send_foreign_sector")
	mustCreateSector(t, client, "sector-own", "Own Sector")
	mustCreateSector(t, client, "sector-foreign", "Foreign Sector")
	mustCreateScopedUser(t, client, "subadmin-1", "sub.admin", entuser.RoleSUBSECTOR_ADMIN, "sector-own", "")
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/send",
		`{"title":"t","message":"m","userIds":["user-1"],"sectorId":"sector-foreign"}`,
		testActor{UserID: "subadmin-1", Role: "subsector_admin", SectorID: "sector-own"})
	srv.SendNotification(c)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "SCOPE_PERMISSION_DENIED")

	// Denial happens before any persistence.
	notifications, err := client.Notification.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if notifications != 0 {
		t.Fatalf("notifications = %d, want 0 after denied send", notifications)
	}
}

func TestSendNotification_AdminBroadcastWithGhostGroup(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_send_admin")
	mustCreateUser(t, client, "admin-1", "the.admin", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	group, err := srv.registry.CreateGroup(t.Context(), notification.CreateGroupInput{
		Name:      "All Hands",
		CreatedBy: "admin-1",
		MemberIDs: []string{"user-1", "user-2"},
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	// user-1 appears both explicitly and via the group; the ghost group
	// contributes nothing.
	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/send",
		`{"title":"All hands","message":"m","userIds":["user-1"],"groupIds":["`+group.ID+`","group-ghost"]}`,
		testActor{UserID: "admin-1", Role: "admin"})
	srv.SendNotification(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		RecipientCount int `json:"recipientCount"`
		Notification   struct {
			ID string `json:"id"`
		} `json:"notification"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode send response: %v", err)
	}
	if resp.RecipientCount != 2 {
		t.Fatalf("recipientCount = %d, want 2 (deduped union)", resp.RecipientCount)
	}

	rows, err := client.Recipient.Query().
		Where(entrecipient.NotificationIDEQ(resp.Notification.ID)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count delivery rows: %v", err)
	}
	if rows != 2 {
		t.Fatalf("delivery rows = %d, want 2", rows)
	}
}

func TestSendNotification_NoTargets(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_send_no_targets")
	mustCreateUser(t, client, "admin-1", "the.admin", entuser.RoleADMIN)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/send",
		`{"title":"t","message":"m"}`,
		testActor{UserID: "admin-1", Role: "admin"})
	srv.SendNotification(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "INVALID_REQUEST")
}

func TestListNotifications_UnknownFilterRejected(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_list_bad_filter")
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodGet, "/notifications?filter=archived", "",
		testActor{UserID: "user-1", Role: "user"})
	srv.ListNotifications(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "INVALID_REQUEST")
}

func TestListNotifications_StoreFailureIsInternal(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_list_store_down")
	// A dead connection must surface as a 500, never as a client error.
	if err := client.Close(); err != nil {
		t.Fatalf("close client: %v", err)
	}

	c, w := newAuthedGinContext(t, http.MethodGet, "/notifications", "",
		testActor{UserID: "user-1", Role: "user"})
	srv.ListNotifications(c)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusInternalServerError, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "INTERNAL_ERROR")
}

func TestNotificationEndpoints_Unauthorized(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, "handler_unauthorized")

	tests := []struct {
		name   string
		method string
		path   string
		run    func(c *gin.Context)
	}{
		{"list", http.MethodGet, "/notifications", srv.ListNotifications},
		{"unread count", http.MethodGet, "/notifications/unread-count", srv.GetUnreadCount},
		{"update", http.MethodPut, "/notifications", srv.UpdateNotification},
		{"delete", http.MethodDelete, "/notifications?id=n-1", srv.DeleteNotification},
		{"bulk", http.MethodPost, "/notifications/bulk", srv.BulkMutate},
		{"send", http.MethodPost, "/notifications/send", srv.SendNotification},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, w := newAuthedGinContext(t, tc.method, tc.path, "", testActor{})
			tc.run(c)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusUnauthorized, w.Body.String())
			}
			assertErrorCode(t, w.Body.Bytes(), "UNAUTHORIZED")
		})
	}
}
