package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intrahub.io/portal/ent"
	"intrahub.io/portal/internal/authz"
	"intrahub.io/portal/internal/notification"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

// CreateGroupRequest is the POST /notifications/groups body.
type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	SectorID    string   `json:"sectorId"`
	SubsectorID string   `json:"subsectorId"`
	MemberIDs   []string `json:"memberIds"`
}

// ListGroups handles GET /notifications/groups.
func (s *Server) ListGroups(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.UserID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	groups, err := s.registry.ListGroups(c.Request.Context())
	if err != nil {
		logger.Error("failed to list groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup handles POST /notifications/groups. Group creation follows the
// same scope rules as sending.
func (s *Server) CreateGroup(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.UserID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest, Message: err.Error()})
		return
	}

	if !authz.CanManageGroups(actor) {
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeScopeDenied, Message: "role cannot manage groups"})
		return
	}
	if !authz.CanTargetScope(actor, req.SectorID, req.SubsectorID) {
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeScopeDenied, Message: "group scope not permitted for this role"})
		return
	}

	group, err := s.registry.CreateGroup(c.Request.Context(), notification.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		SectorID:    req.SectorID,
		SubsectorID: req.SubsectorID,
		CreatedBy:   actor.UserID,
		MemberIDs:   req.MemberIDs,
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeGroupExists, Message: "a group with this name already exists"})
			return
		}
		logger.Error("failed to create group", zap.Error(err), zap.String("user_id", actor.UserID))
		respondError(c, err, apperrors.CodeInternalError)
		return
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "group.create", "group", group.ID, actor.UserID,
			map[string]interface{}{"member_count": len(req.MemberIDs)}); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "group.create"),
				zap.String("group_id", group.ID),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "group created",
		"group": gin.H{
			"id":          group.ID,
			"name":        group.Name,
			"description": group.Description,
			"type":        group.Type,
			"isActive":    group.IsActive,
			"createdBy":   group.CreatedBy,
			"createdAt":   group.CreatedAt,
		},
	})
}
