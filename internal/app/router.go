package app

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"intrahub.io/portal/internal/api/handlers"
	"intrahub.io/portal/internal/api/middleware"
	"intrahub.io/portal/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/auth/register",
	"/api/v1/health/",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	if len(cfg.Server.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(jwtSkipPublic(signingKey))

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", server.Register)
			authGroup.POST("/login", server.Login)
			authGroup.GET("/me", server.GetCurrentUser)
			authGroup.POST("/change-password", server.ChangePassword)
		}

		v1.GET("/notifications", server.ListNotifications)
		v1.PUT("/notifications", server.UpdateNotification)
		v1.DELETE("/notifications", server.DeleteNotification)
		v1.GET("/notifications/unread-count", server.GetUnreadCount)
		v1.POST("/notifications/bulk", server.BulkMutate)
		v1.POST("/notifications/send", server.SendNotification)
		v1.GET("/notifications/groups", server.ListGroups)
		v1.POST("/notifications/groups", server.CreateGroup)

		adminGroup := v1.Group("/admin")
		{
			adminGroup.GET("/users", server.ListUsers)
			adminGroup.POST("/users/:user_id/approve", server.ApproveUser)
		}

		v1.GET("/sectors", server.ListSectors)
		v1.GET("/dashboard/stats", server.GetDashboardStats)

		healthGroup := v1.Group("/health")
		{
			healthGroup.GET("/live", server.GetLiveness)
			healthGroup.GET("/ready", server.GetReadiness)
		}
	}

	return router
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
