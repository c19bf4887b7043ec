package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"intrahub.io/portal/ent"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/api/middleware"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

const passwordHashCost = 12

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password" binding:"required,min=8"`
	SectorID    string `json:"sectorId"`
	SubsectorID string `json:"subsectorId"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}

// ChangePasswordRequest is the POST /auth/change-password body.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserInfo is the user profile shape returned by auth and admin endpoints.
type UserInfo struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	SectorID    string `json:"sectorId,omitempty"`
	SubsectorID string `json:"subsectorId,omitempty"`
	Enabled     bool   `json:"enabled"`
	Approved    bool   `json:"approved"`
}

// Register handles POST /auth/register. New accounts start unapproved and
// cannot log in until an admin approves them.
func (s *Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest, Message: err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	builder := s.client.User.Create().
		SetID(GenerateUserID()).
		SetUsername(req.Username).
		SetEmail(req.Email).
		SetDisplayName(req.DisplayName).
		SetPasswordHash(string(hash))
	if req.SectorID != "" {
		builder = builder.SetSectorID(req.SectorID)
	}
	if req.SubsectorID != "" {
		builder = builder.SetSubsectorID(req.SubsectorID)
	}

	user, err := builder.Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeUsernameTaken, Message: "username is already taken"})
			return
		}
		logger.Error("failed to create user", zap.Error(err), zap.String("username", req.Username))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	logger.Info("user registered, pending approval",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "registration received, awaiting approval",
		"user":    userToAPI(user),
	})
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest})
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.UsernameEQ(req.Username)).
		Where(entuser.EnabledEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeInvalidCredentials})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeInvalidCredentials})
		return
	}

	if !user.Approved {
		c.JSON(http.StatusForbidden, APIError{Code: apperrors.CodeUserNotApproved, Message: "account is awaiting approval"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(
		s.jwtCfg, user.ID, user.Username, roleFromEnt(user.Role), user.SectorID, user.SubsectorID,
	)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	now := time.Now()
	if err := s.client.User.UpdateOneID(user.ID).SetLastLoginAt(now).Exec(c.Request.Context()); err != nil {
		logger.Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", user.ID))
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "user.login", "user", user.ID, user.ID, nil); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.login"),
				zap.String("user_id", user.ID),
			)
		}
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userToAPI(user),
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, APIError{Code: apperrors.CodeUserNotFound})
		return
	}

	c.JSON(http.StatusOK, userToAPI(user))
}

// ChangePassword handles POST /auth/change-password.
func (s *Server) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidRequest})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, APIError{Code: apperrors.CodeUserNotFound})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Code: apperrors.CodeInvalidCredentials, Message: "current password does not match"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordHashCost)
	if err != nil {
		logger.Error("failed to hash new password", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	err = s.client.User.UpdateOneID(userID).
		SetPasswordHash(string(hash)).
		Exec(c.Request.Context())
	if err != nil {
		logger.Error("failed to update password", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "user.password_change", "user", userID, userID,
			map[string]interface{}{"reason": "user_initiated"}); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.password_change"),
				zap.String("user_id", userID),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// HashPassword hashes a password using bcrypt (used by the seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateUserID creates a new user ID (time-ordered UUID v7).
func GenerateUserID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return uuid.New().String()
	}
	return id.String()
}
