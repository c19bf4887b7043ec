package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intrahub.io/portal/internal/api/middleware"
	"intrahub.io/portal/internal/authz"
	"intrahub.io/portal/internal/notification"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

// Pagination is the list-response pagination envelope.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// UpdateNotificationRequest is the PUT /notifications body: a single-item
// read-state toggle.
type UpdateNotificationRequest struct {
	NotificationID string `json:"notificationId" binding:"required"`
	Action         string `json:"action" binding:"required"`
}

// BulkMutateRequest is the POST /notifications/bulk body.
type BulkMutateRequest struct {
	Action          string   `json:"action" binding:"required"`
	NotificationIDs []string `json:"notificationIds"`
}

// SendNotificationRequest is the POST /notifications/send body.
type SendNotificationRequest struct {
	Title       string     `json:"title" binding:"required"`
	Message     string     `json:"message" binding:"required"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	UserIDs     []string   `json:"userIds"`
	GroupIDs    []string   `json:"groupIds"`
	SectorID    string     `json:"sectorId"`
	SubsectorID string     `json:"subsectorId"`
	ActionURL   string     `json:"actionUrl"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// ListNotifications handles GET /notifications.
//
// Query parameters: filter (all|read|unread), type, limit, offset.
func (s *Server) ListNotifications(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	filter := notification.InboxFilter{
		ReadState: c.DefaultQuery("filter", notification.FilterAll),
		Type:      c.Query("type"),
	}
	page := notification.InboxPage{
		Limit:  intQuery(c, "limit", 0),
		Offset: intQuery(c, "offset", 0),
	}

	result, err := s.inbox.List(c.Request.Context(), userID, filter, page)
	if err != nil {
		logger.Error("failed to list inbox", zap.Error(err), zap.String("user_id", userID))
		respondError(c, err, apperrors.CodeInternalError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": result.Items,
		"pagination": Pagination{
			Total:   result.Total,
			Limit:   result.Limit,
			Offset:  result.Offset,
			HasMore: result.HasMore,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	count, err := s.inbox.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to count unread", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// UpdateNotification handles PUT /notifications: marks one notification
// read or unread for the caller.
func (s *Server) UpdateNotification(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest})
		return
	}

	if req.Action != notification.ActionRead && req.Action != notification.ActionUnread {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidBulkAction, Message: "action must be read or unread"})
		return
	}

	affected, err := s.mutator.Apply(c.Request.Context(), userID, req.Action, []string{req.NotificationID})
	if err != nil {
		logger.Error("failed to update notification",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("notification_id", req.NotificationID),
		)
		respondError(c, err, apperrors.CodeInternalError)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, APIError{Code: apperrors.CodeNotificationNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification updated"})
}

// DeleteNotification handles DELETE /notifications?id=. It removes the
// caller's delivery record only; other recipients keep theirs.
func (s *Server) DeleteNotification(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	notificationID := c.Query("id")
	if notificationID == "" {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest, Message: "id query parameter is required"})
		return
	}

	affected, err := s.mutator.Delete(c.Request.Context(), userID, []string{notificationID})
	if err != nil {
		logger.Error("failed to delete notification",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("notification_id", notificationID),
		)
		respondError(c, err, apperrors.CodeInternalError)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, APIError{Code: apperrors.CodeNotificationNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

// BulkMutate handles POST /notifications/bulk.
func (s *Server) BulkMutate(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	var req BulkMutateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest})
		return
	}

	affected, err := s.mutator.Apply(c.Request.Context(), userID, req.Action, req.NotificationIDs)
	if err != nil {
		logger.Error("bulk mutation failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("action", req.Action),
		)
		respondError(c, err, apperrors.CodeInternalError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "bulk action applied",
		"affected": affected,
	})
}

// SendNotification handles POST /notifications/send.
//
// The sender needs broadcast capability and the right to address the target
// scope; a denied scope check writes no rows.
func (s *Server) SendNotification(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.UserID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest, Message: err.Error()})
		return
	}

	if !authz.CanSend(actor) {
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeScopeDenied, Message: "role cannot send notifications"})
		return
	}
	if !authz.CanTargetScope(actor, req.SectorID, req.SubsectorID) {
		logger.Warn("send denied: scope not permitted",
			zap.String("user_id", actor.UserID),
			zap.String("role", string(actor.Role)),
			zap.String("sector_id", req.SectorID),
			zap.String("subsector_id", req.SubsectorID),
		)
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeScopeDenied, Message: "target scope not permitted for this role"})
		return
	}

	if len(req.UserIDs) == 0 && len(req.GroupIDs) == 0 {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest, Message: "at least one user or group target is required"})
		return
	}

	recipients, err := s.resolver.Resolve(c.Request.Context(), req.UserIDs, req.GroupIDs)
	if err != nil {
		logger.Error("recipient resolution failed", zap.Error(err), zap.String("user_id", actor.UserID))
		respondError(c, err, apperrors.CodeSendFailed)
		return
	}

	created, count, err := s.store.Send(c.Request.Context(), notification.SendInput{
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Priority:    req.Priority,
		SenderID:    actor.UserID,
		SectorID:    req.SectorID,
		SubsectorID: req.SubsectorID,
		ActionURL:   req.ActionURL,
		ExpiresAt:   req.ExpiresAt,
	}, recipients)
	if err != nil {
		logger.Error("notification send failed", zap.Error(err), zap.String("user_id", actor.UserID))
		respondError(c, err, apperrors.CodeSendFailed)
		return
	}

	if s.audit != nil {
		if err := s.audit.LogSend(c.Request.Context(), created.ID, actor.UserID, count); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "notification.send"),
				zap.String("notification_id", created.ID),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "notification sent",
		"notification":   notificationToAPI(created),
		"recipientCount": count,
	})
}

// intQuery parses an integer query parameter, returning def when absent or
// malformed.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
