// Package handlers implements the portal HTTP API.
//
// Routes are registered explicitly in internal/app/router.go — handlers do
// NOT register their own routes. Manual DI, no Wire/Dig.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"intrahub.io/portal/ent"
	"intrahub.io/portal/internal/api/middleware"
	"intrahub.io/portal/internal/audit"
	"intrahub.io/portal/internal/authz"
	"intrahub.io/portal/internal/notification"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/worker"
)

// APIError is the JSON error body returned by every endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Server implements all API handlers.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	audit       *audit.Logger
	resolver    *notification.Resolver
	store       *notification.Store
	inbox       *notification.Inbox
	mutator     *notification.Mutator
	registry    *notification.Registry
	pools       *worker.Pools
	riverClient *river.Client[pgx.Tx]
}

// ServerDeps holds all dependencies for creating a Server.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	Audit       *audit.Logger
	Resolver    *notification.Resolver
	Store       *notification.Store
	Inbox       *notification.Inbox
	Mutator     *notification.Mutator
	Registry    *notification.Registry
	Pools       *worker.Pools
	RiverClient *river.Client[pgx.Tx]
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		audit:       deps.Audit,
		resolver:    deps.Resolver,
		store:       deps.Store,
		inbox:       deps.Inbox,
		mutator:     deps.Mutator,
		registry:    deps.Registry,
		pools:       deps.Pools,
		riverClient: deps.RiverClient,
	}
}

// respondError maps a service error onto the HTTP response. Typed AppErrors
// carry their own status and code; anything else becomes a bare 500 body
// under fallbackCode, with the cause kept to server-side logs.
func respondError(c *gin.Context, err error, fallbackCode string) {
	if appErr, ok := apperrors.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, APIError{Code: appErr.Code, Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, APIError{Code: fallbackCode})
}

// actorFromContext extracts the authenticated caller from the request context
// as a capability-check actor. An empty UserID means the request is
// unauthenticated.
func actorFromContext(c *gin.Context) authz.Actor {
	ctx := c.Request.Context()
	return authz.Actor{
		UserID:      middleware.GetUserID(ctx),
		Role:        authz.Role(middleware.GetRole(ctx)),
		SectorID:    middleware.GetSectorID(ctx),
		SubsectorID: middleware.GetSubsectorID(ctx),
	}
}
