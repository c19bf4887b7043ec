package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	ctxKeyRequestID   contextKey = "request_id"
	ctxKeyUserID      contextKey = "user_id"
	ctxKeyUsername    contextKey = "username"
	ctxKeyRole        contextKey = "role"
	ctxKeySectorID    contextKey = "sector_id"
	ctxKeySubsectorID contextKey = "subsector_id"
)

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// SetUserContext stores authenticated user info in context.
func SetUserContext(ctx context.Context, userID, username, role, sectorID, subsectorID string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	ctx = context.WithValue(ctx, ctxKeyUsername, username)
	ctx = context.WithValue(ctx, ctxKeyRole, role)
	ctx = context.WithValue(ctx, ctxKeySectorID, sectorID)
	ctx = context.WithValue(ctx, ctxKeySubsectorID, subsectorID)
	return ctx
}

// GetUserID extracts user ID from context.
func GetUserID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// GetUsername extracts username from context.
func GetUsername(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// GetRole extracts the caller's role from context.
func GetRole(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRole).(string); ok {
		return v
	}
	return ""
}

// GetSectorID extracts the caller's sector scope from context.
func GetSectorID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeySectorID).(string); ok {
		return v
	}
	return ""
}

// GetSubsectorID extracts the caller's subsector scope from context.
func GetSubsectorID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeySubsectorID).(string); ok {
		return v
	}
	return ""
}
