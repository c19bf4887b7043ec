package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	entuser "intrahub.io/portal/ent/user"
)

func TestRegisterLoginApprovalFlow(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_auth_flow")
	mustCreateUser(t, client, "admin-1", "the.admin", entuser.RoleADMIN)

	// Register a new account.
	c, w := newAuthedGinContext(t, http.MethodPost, "/auth/register",
		`{"username":"new.user","email":"new.user@example.com","password":"s3cret-pass"}`,
		testActor{})
	srv.Register(c)
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d body=%s", w.Code, w.Body.String())
	}

	var regResp struct {
		User UserInfo `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &regResp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if regResp.User.Approved {
		t.Fatal("new account approved = true, want pending")
	}

	// Login before approval is rejected.
	c, w = newAuthedGinContext(t, http.MethodPost, "/auth/login",
		`{"username":"new.user","password":"s3cret-pass"}`, testActor{})
	srv.Login(c)
	if w.Code != http.StatusForbidden {
		t.Fatalf("pre-approval login status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "USER_NOT_APPROVED")

	// Admin approves.
	c, w = newAuthedGinContext(t, http.MethodPost, "/admin/users/"+regResp.User.ID+"/approve", "",
		testActor{UserID: "admin-1", Role: "admin"})
	c.AddParam("user_id", regResp.User.ID)
	srv.ApproveUser(c)
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d body=%s", w.Code, w.Body.String())
	}

	// Login after approval issues a token.
	c, w = newAuthedGinContext(t, http.MethodPost, "/auth/login",
		`{"username":"new.user","password":"s3cret-pass"}`, testActor{})
	srv.Login(c)
	if w.Code != http.StatusOK {
		t.Fatalf("post-approval login status = %d body=%s", w.Code, w.Body.String())
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginResp.Token == "" {
		t.Fatal("login token is empty")
	}
	if loginResp.User.Role != "user" {
		t.Fatalf("login role = %q, want user", loginResp.User.Role)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_auth_bad_creds")

	hash, err := HashPassword("right-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	_, err = client.User.Create().
		SetID("user-1").
		SetUsername("user.one").
		SetPasswordHash(hash).
		SetApproved(true).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	c, w := newAuthedGinContext(t, http.MethodPost, "/auth/login",
		`{"username":"user.one","password":"wrong-password"}`, testActor{})
	srv.Login(c)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusUnauthorized, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "INVALID_CREDENTIALS")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_auth_dup")
	mustCreateUser(t, client, "user-1", "taken.name", entuser.RoleUSER)

	c, w := newAuthedGinContext(t, http.MethodPost, "/auth/register",
		`{"username":"taken.name","email":"x@example.com","password":"s3cret-pass"}`,
		testActor{})
	srv.Register(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "USERNAME_ALREADY_TAKEN")
}

func TestGenerateUserID_AlwaysValidUUID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateUserID()
		if id == "" {
			t.Fatal("GenerateUserID returned empty string")
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("GenerateUserID returned %q, not a valid UUID: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("GenerateUserID returned duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestApproveUser_NonAdminForbidden(t *testing.T) {
	t.Parallel()

	srv, client := newTestServer(t, "handler_approve_forbidden")
	mustCreateUser(t, client, "secadmin-1", "sec.admin", entuser.RoleSECTOR_ADMIN)

	c, w := newAuthedGinContext(t, http.MethodPost, "/admin/users/user-x/approve", "",
		testActor{UserID: "secadmin-1", Role: "sector_admin", SectorID: "sector-1"})
	c.AddParam("user_id", "user-x")
	srv.ApproveUser(c)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}
	assertErrorCode(t, w.Body.Bytes(), "SCOPE_PERMISSION_DENIED")
}
