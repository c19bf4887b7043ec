package notification

import (
	"testing"

	entgroupmember "intrahub.io/portal/ent/groupmember"
)

func TestRegistry_CreateGroup_DedupsInitialMembers(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "groups_create")
	registry := NewRegistry(client)

	mustCreateUser(t, client, "admin-1", "the.admin")
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")

	group, err := registry.CreateGroup(t.Context(), CreateGroupInput{
		Name:      "Announcements",
		CreatedBy: "admin-1",
		MemberIDs: []string{"user-a", "user-b", "user-a", "", "user-b"},
	})
	if err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	if group.Type != "custom" {
		t.Fatalf("group type = %q, want custom default", group.Type)
	}
	if !group.IsActive {
		t.Fatal("group is_active = false, want true")
	}

	members, err := client.GroupMember.Query().
		Where(entgroupmember.GroupIDEQ(group.ID)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count members: %v", err)
	}
	if members != 2 {
		t.Fatalf("members = %d, want 2 after dedup", members)
	}
}

func TestRegistry_CreateGroup_Validation(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "groups_validation")
	registry := NewRegistry(client)

	if _, err := registry.CreateGroup(t.Context(), CreateGroupInput{CreatedBy: "admin-1"}); err == nil {
		t.Fatal("CreateGroup() without name succeeded, want error")
	}
	if _, err := registry.CreateGroup(t.Context(), CreateGroupInput{Name: "n"}); err == nil {
		t.Fatal("CreateGroup() without creator succeeded, want error")
	}
}

func TestRegistry_AddMember_Idempotent(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "groups_add_member")
	registry := NewRegistry(client)

	mustCreateUser(t, client, "admin-1", "the.admin")
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateGroup(t, client, "group-1", "Group One", "admin-1", true)

	for i := 0; i < 3; i++ {
		if err := registry.AddMember(t.Context(), "group-1", "user-a", "admin-1"); err != nil {
			t.Fatalf("AddMember() attempt %d error = %v", i+1, err)
		}
	}

	members, err := client.GroupMember.Query().
		Where(entgroupmember.GroupIDEQ("group-1")).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count members: %v", err)
	}
	if members != 1 {
		t.Fatalf("members = %d, want 1 after repeated adds", members)
	}
}

func TestRegistry_ListGroups_EnrichedAndActiveOnly(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "groups_list")
	registry := NewRegistry(client)

	creator, err := client.User.Create().
		SetID("admin-1").
		SetUsername("the.admin").
		SetDisplayName("Ana Lima").
		SetApproved(true).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create creator: %v", err)
	}
	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")

	sector, err := client.Sector.Create().
		SetID("sector-1").
		SetName("Operations").
		Save(t.Context())
	if err != nil {
		t.Fatalf("create sector: %v", err)
	}

	group, err := registry.CreateGroup(t.Context(), CreateGroupInput{
		Name:      "Ops Broadcast",
		SectorID:  sector.ID,
		CreatedBy: creator.ID,
		MemberIDs: []string{"user-a", "user-b"},
	})
	if err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}

	mustCreateGroup(t, client, "group-off", "Retired Group", creator.ID, false)

	summaries, err := registry.ListGroups(t.Context())
	if err != nil {
		t.Fatalf("ListGroups() error = %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries len = %d, want 1 (inactive excluded)", len(summaries))
	}

	got := summaries[0]
	if got.ID != group.ID {
		t.Fatalf("summary ID = %s, want %s", got.ID, group.ID)
	}
	if got.CreatorName != "Ana Lima" {
		t.Fatalf("creator name = %q, want display name", got.CreatorName)
	}
	if got.SectorName != "Operations" {
		t.Fatalf("sector name = %q, want Operations", got.SectorName)
	}
	if got.MemberCount != 2 {
		t.Fatalf("member count = %d, want 2", got.MemberCount)
	}
}
