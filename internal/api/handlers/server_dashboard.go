package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	entgroup "intrahub.io/portal/ent/group"
	entrecipient "intrahub.io/portal/ent/recipient"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/api/middleware"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

// DashboardStats is the GET /dashboard/stats response.
type DashboardStats struct {
	TotalUsers         int `json:"totalUsers"`
	ActiveGroups       int `json:"activeGroups"`
	TotalNotifications int `json:"totalNotifications"`
	UnreadCount        int `json:"unreadCount"`
}

type statResult struct {
	name  string
	value int
	err   error
}

// GetDashboardStats handles GET /dashboard/stats. The four counts are
// independent, so they fan out through the general worker pool and join
// before responding.
func (s *Server) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	counts := map[string]func(ctx context.Context) (int, error){
		"total_users": func(ctx context.Context) (int, error) {
			return s.client.User.Query().
				Where(entuser.Enabled(true), entuser.Approved(true)).
				Count(ctx)
		},
		"active_groups": func(ctx context.Context) (int, error) {
			return s.client.Group.Query().
				Where(entgroup.IsActive(true)).
				Count(ctx)
		},
		"total_notifications": func(ctx context.Context) (int, error) {
			return s.client.Recipient.Query().
				Where(entrecipient.UserIDEQ(userID)).
				Count(ctx)
		},
		"unread_count": func(ctx context.Context) (int, error) {
			return s.inbox.UnreadCount(ctx, userID)
		},
	}

	results := make(chan statResult, len(counts))
	pending := 0
	for name, run := range counts {
		name, run := name, run
		err := s.pools.General.Submit(ctx, func(ctx context.Context) {
			v, err := run(ctx)
			results <- statResult{name: name, value: v, err: err}
		})
		if err != nil {
			results <- statResult{name: name, err: err}
		}
		pending++
	}

	var (
		stats DashboardStats
		errs  []error
	)
	for i := 0; i < pending; i++ {
		select {
		case <-ctx.Done():
			// A queued task skipped by cancellation never reports back;
			// stop waiting instead of leaking the handler.
			c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
			return
		case r := <-results:
			if r.err != nil {
				errs = append(errs, r.err)
				continue
			}
			switch r.name {
			case "total_users":
				stats.TotalUsers = r.value
			case "active_groups":
				stats.ActiveGroups = r.value
			case "total_notifications":
				stats.TotalNotifications = r.value
			case "unread_count":
				stats.UnreadCount = r.value
			}
		}
	}

	if len(errs) > 0 {
		logger.Error("dashboard stats failed",
			zap.String("user_id", userID),
			zap.Errors("errors", errs),
		)
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, stats)
}
