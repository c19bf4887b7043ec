package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	entuser "intrahub.io/portal/ent/user"
)

func TestGetDashboardStats_ConcurrentCounts(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_dashboard")
	mustCreateUser(t, client, "admin-1", "the.admin", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	// One unapproved account must not count as an active user.
	if _, err := client.User.Create().
		SetID("user-pending").
		SetUsername("user.pending").
		Save(t.Context()); err != nil {
		t.Fatalf("create pending user: %v", err)
	}

	n1 := mustDeliver(t, srv, "admin-1", []string{"user-1", "user-2"}, "one")
	mustDeliver(t, srv, "admin-1", []string{"user-1"}, "two")
	if _, err := srv.mutator.MarkRead(t.Context(), "user-1", []string{n1}); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	c, w := newAuthedGinContext(t, http.MethodGet, "/dashboard/stats", "",
		testActor{UserID: "user-1", Role: "user"})
	srv.GetDashboardStats(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var stats DashboardStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalUsers != 3 {
		t.Fatalf("totalUsers = %d, want 3", stats.TotalUsers)
	}
	if stats.TotalNotifications != 2 {
		t.Fatalf("totalNotifications = %d, want 2", stats.TotalNotifications)
	}
	if stats.UnreadCount != 1 {
		t.Fatalf("unreadCount = %d, want 1", stats.UnreadCount)
	}
	if stats.ActiveGroups != 0 {
		t.Fatalf("activeGroups = %d, want 0", stats.ActiveGroups)
	}
}
