package notification

import (
	"reflect"
	"testing"
)

func TestResolver_Resolve_DedupsUnionOfUsersAndGroups(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "resolver_dedup")
	resolver := NewResolver(client)

	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")
	mustCreateUser(t, client, "user-c", "user.c")

	mustCreateGroup(t, client, "group-1", "Group One", "user-a", true)
	mustAddMember(t, client, "gm-1", "group-1", "user-b")
	mustAddMember(t, client, "gm-2", "group-1", "user-c")

	// user-b appears both explicitly and via the group.
	got, err := resolver.Resolve(t.Context(), []string{"user-a", "user-b"}, []string{"group-1"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := []string{"user-a", "user-b", "user-c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolver_Resolve_NonexistentGroupContributesNothing(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "resolver_ghost_group")
	resolver := NewResolver(client)

	mustCreateUser(t, client, "user-a", "user.a")

	got, err := resolver.Resolve(t.Context(), []string{"user-a"}, []string{"group-ghost"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 || got[0] != "user-a" {
		t.Fatalf("Resolve() = %v, want [user-a]", got)
	}
}

func TestResolver_Resolve_InactiveGroupExcluded(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "resolver_inactive")
	resolver := NewResolver(client)

	mustCreateUser(t, client, "user-a", "user.a")
	mustCreateUser(t, client, "user-b", "user.b")

	mustCreateGroup(t, client, "group-off", "Disabled Group", "user-a", false)
	mustAddMember(t, client, "gm-1", "group-off", "user-b")

	got, err := resolver.Resolve(t.Context(), nil, []string{"group-off"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Resolve() = %v, want empty for inactive group", got)
	}
}

func TestResolver_Resolve_EmptyInput(t *testing.T) {
	t.Parallel()

	client := openTestClient(t, "resolver_empty")
	resolver := NewResolver(client)

	got, err := resolver.Resolve(t.Context(), nil, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Resolve() = %v, want empty", got)
	}
}
