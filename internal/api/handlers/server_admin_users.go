package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intrahub.io/portal/ent"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/authz"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

const (
	defaultUserPageSize = 20
	maxUserPageSize     = 100
)

// ListUsers handles GET /admin/users. Admin only, paginated; an optional
// pending=true filter narrows to accounts awaiting approval.
func (s *Server) ListUsers(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.UserID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}
	if !authz.CanApproveUsers(actor) {
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeScopeDenied, Message: "admin role required"})
		return
	}

	limit := intQuery(c, "limit", defaultUserPageSize)
	if limit <= 0 {
		limit = defaultUserPageSize
	}
	if limit > maxUserPageSize {
		limit = maxUserPageSize
	}
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	query := s.client.User.Query()
	if c.Query("pending") == "true" {
		query = query.Where(entuser.Approved(false), entuser.Enabled(true))
	}

	total, err := query.Clone().Count(c.Request.Context())
	if err != nil {
		logger.Error("failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	users, err := query.
		Offset(offset).
		Limit(limit).
		Order(ent.Desc(entuser.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	items := make([]UserInfo, 0, len(users))
	for _, u := range users {
		items = append(items, userToAPI(u))
	}

	c.JSON(http.StatusOK, gin.H{
		"users": items,
		"pagination": Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: total > offset+limit,
		},
	})
}

// ApproveUser handles POST /admin/users/:user_id/approve.
func (s *Server) ApproveUser(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.UserID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}
	if !authz.CanApproveUsers(actor) {
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeScopeDenied, Message: "admin role required"})
		return
	}

	userID := c.Param("user_id")
	user, err := s.client.User.UpdateOneID(userID).
		SetApproved(true).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, APIError{Code: apperrors.CodeUserNotFound})
			return
		}
		logger.Error("failed to approve user", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	if s.audit != nil {
		if err := s.audit.LogUserApproval(c.Request.Context(), userID, actor.UserID); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.approve"),
				zap.String("user_id", userID),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "user approved",
		"user":    userToAPI(user),
	})
}
