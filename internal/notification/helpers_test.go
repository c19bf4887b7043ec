package notification

import (
	"testing"

	"intrahub.io/portal/ent"
	"intrahub.io/portal/internal/pkg/logger"
	"intrahub.io/portal/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func openTestClient(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	return testutil.OpenEntPostgres(t, prefix)
}

func mustCreateUser(t *testing.T, client *ent.Client, id, username string) *ent.User {
	t.Helper()
	obj, err := client.User.Create().
		SetID(id).
		SetUsername(username).
		SetApproved(true).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return obj
}

func mustCreateGroup(t *testing.T, client *ent.Client, id, name, createdBy string, active bool) *ent.Group {
	t.Helper()
	obj, err := client.Group.Create().
		SetID(id).
		SetName(name).
		SetCreatedBy(createdBy).
		SetIsActive(active).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	return obj
}

func mustAddMember(t *testing.T, client *ent.Client, id, groupID, userID string) {
	t.Helper()
	_, err := client.GroupMember.Create().
		SetID(id).
		SetGroupID(groupID).
		SetUserID(userID).
		SetAddedBy("test-admin").
		Save(t.Context())
	if err != nil {
		t.Fatalf("add group member: %v", err)
	}
}

func mustSend(t *testing.T, store *Store, input SendInput, recipients []string) *ent.Notification {
	t.Helper()
	created, count, err := store.Send(t.Context(), input, recipients)
	if err != nil {
		t.Fatalf("send notification: %v", err)
	}
	if count != len(recipients) {
		t.Fatalf("recipient count = %d, want %d", count, len(recipients))
	}
	return created
}
