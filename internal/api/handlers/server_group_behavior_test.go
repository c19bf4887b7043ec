package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	entgroupmember "intrahub.io/portal/ent/groupmember"
	entuser "intrahub.io/portal/ent/user"
)

func TestCreateGroup_PlainUserForbidden(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_group_forbidden")
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"My Group"}`,
		testActor{UserID: "user-1", Role: "user"})
	srv.CreateGroup(c)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "SCOPE_PERMISSION_DENIED")
}

func TestCreateGroup_AdminWithMembers(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_group_create")
	mustCreateUser(t, client, "admin-1", "the.admin", entuser.RoleADMIN)
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)
	mustCreateUser(t, client, "user-2", "user.two", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"Announcements","memberIds":["user-1","user-2","user-1"]}`,
		testActor{UserID: "admin-1", Role: "admin"})
	srv.CreateGroup(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Group struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"group"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode group response: %v", err)
	}
	if resp.Group.Name != "Announcements" {
		t.Fatalf("group name = %q, want Announcements", resp.Group.Name)
	}

	members, err := client.GroupMember.Query().
		Where(entgroupmember.GroupIDEQ(resp.Group.ID)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count members: %v", err)
	}
	if members != 2 {
		t.Fatalf("members = %d, want 2 after dedup", members)
	}
}

func TestCreateGroup_SectorAdminScopeEnforced(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_group_scope")
	mustCreateSector(t, client, "sector-own", "Own Sector")
	mustCreateSector(t, client, "sector-foreign", "Foreign Sector")
	mustCreateScopedUser(t, client, "secadmin-1", "sec.admin", entuser.RoleSECTOR_ADMIN, "sector-own", "")

	actor := testActor{UserID: "secadmin-1", Role: "sector_admin", SectorID: "sector-own"}

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"Foreign Group","sectorId":"sector-foreign"}`, actor)
	srv.CreateGroup(c)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign scope status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}

	c, w = newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"Own Group","sectorId":"sector-own"}`, actor)
	srv.CreateGroup(c)
	if w.Code != http.StatusOK {
		t.Fatalf("own scope status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestCreateGroup_DuplicateNameRejected(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_group_dup")
	mustCreateUser(t, client, "admin-1", "the.admin", entuser.RoleADMIN)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"Facilities"}`,
		testActor{UserID: "admin-1", Role: "admin"})
	srv.CreateGroup(c)
	if w.Code != http.StatusOK {
		t.Fatalf("first create status = %d body=%s", w.Code, w.Body.String())
	}

	c, w = newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"Facilities"}`,
		testActor{UserID: "admin-1", Role: "admin"})
	srv.CreateGroup(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "GROUP_ALREADY_EXISTS")
}

func TestListGroups_EnrichedSummaries(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_group_list")
	admin, err := client.User.Create().
		SetID("admin-1").
		SetUsername("the.admin").
		SetDisplayName("Ana Lima").
		SetRole(entuser.RoleADMIN).
		SetApproved(true).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	mustCreateUser(t, client, "user-1", "user.one", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodPost, "/notifications/groups",
		`{"name":"Ops","memberIds":["user-1"]}`,
		testActor{UserID: admin.ID, Role: "admin"})
	srv.CreateGroup(c)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}

	c, w = newAuthedGinContext(t, http.MethodGet, "/notifications/groups", "",
		testActor{UserID: "user-1", Role: "user"})
	srv.ListGroups(c)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Groups []struct {
			Name        string `json:"name"`
			CreatorName string `json:"creatorName"`
			MemberCount int    `json:"memberCount"`
		} `json:"groups"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(resp.Groups) != 1 {
		t.Fatalf("groups len = %d, want 1", len(resp.Groups))
	}
	if resp.Groups[0].CreatorName != "Ana Lima" {
		t.Fatalf("creator name = %q, want display name", resp.Groups[0].CreatorName)
	}
	if resp.Groups[0].MemberCount != 1 {
		t.Fatalf("member count = %d, want 1", resp.Groups[0].MemberCount)
	}
}
