package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"intrahub.io/portal/ent"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/api/middleware"
	"intrahub.io/portal/internal/audit"
	"intrahub.io/portal/internal/notification"
	"intrahub.io/portal/internal/pkg/logger"
	"intrahub.io/portal/internal/pkg/worker"
	"intrahub.io/portal/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// testActor identifies the simulated authenticated caller.
type testActor struct {
	UserID      string
	Role        string
	SectorID    string
	SubsectorID string
}

func newTestServer(t *testing.T, prefix string) (*Server, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:   8,
		BroadcastPoolSize: 4,
	})
	if err != nil {
		t.Fatalf("create worker pools: %v", err)
	}
	t.Cleanup(pools.Shutdown)
	srv := NewServer(ServerDeps{
		EntClient: client,
		Pools:     pools,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte("test-signing-key-0123456789abcdef"),
			Issuer:     "intrahub-portal-test",
			ExpiresIn:  time.Hour,
		},
		Audit:    audit.NewLogger(client),
		Resolver: notification.NewResolver(client),
		Store:    notification.NewStore(client),
		Inbox:    notification.NewInbox(client),
		Mutator:  notification.NewMutator(client),
		Registry: notification.NewRegistry(client),
	})
	return srv, client
}

func newAuthedGinContext(
	t *testing.T,
	method string,
	target string,
	body string,
	actor testActor,
) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if strings.TrimSpace(body) == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if actor.UserID != "" {
		req = req.WithContext(middleware.SetUserContext(
			req.Context(), actor.UserID, actor.UserID, actor.Role, actor.SectorID, actor.SubsectorID,
		))
	}
	c.Request = req
	return c, w
}

func assertErrorCode(t *testing.T, body []byte, want string) {
	t.Helper()
	var resp APIError
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != want {
		t.Fatalf("error code = %q, want %q", resp.Code, want)
	}
}

func mustCreateUser(t *testing.T, client *ent.Client, id, username string, role entuser.Role) *ent.User {
	t.Helper()
	obj, err := client.User.Create().
		SetID(id).
		SetUsername(username).
		SetRole(role).
		SetApproved(true).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return obj
}

func mustCreateScopedUser(t *testing.T, client *ent.Client, id, username string, role entuser.Role, sectorID, subsectorID string) *ent.User {
	t.Helper()
	builder := client.User.Create().
		SetID(id).
		SetUsername(username).
		SetRole(role).
		SetApproved(true)
	if sectorID != "" {
		builder = builder.SetSectorID(sectorID)
	}
	if subsectorID != "" {
		builder = builder.SetSubsectorID(subsectorID)
	}
	obj, err := builder.Save(t.Context())
	if err != nil {
		t.Fatalf("create scoped user: %v", err)
	}
	return obj
}

func mustCreateSector(t *testing.T, client *ent.Client, id, name string) *ent.Sector {
	t.Helper()
	obj, err := client.Sector.Create().
		SetID(id).
		SetName(name).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create sector: %v", err)
	}
	return obj
}

func mustDeliver(t *testing.T, srv *Server, senderID string, recipientIDs []string, title string) string {
	t.Helper()
	created, _, err := srv.store.Send(t.Context(), notification.SendInput{
		Title:    title,
		Message:  "message for " + title,
		SenderID: senderID,
	}, recipientIDs)
	if err != nil {
		t.Fatalf("deliver notification: %v", err)
	}
	return created.ID
}
