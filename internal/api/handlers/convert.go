package handlers

import (
	"fmt"
	"time"

	"intrahub.io/portal/ent"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/authz"
	"intrahub.io/portal/internal/notification"
)

// NotificationInfo is the notification shape returned by the send endpoint.
type NotificationInfo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	SenderID    string     `json:"senderId"`
	SectorID    string     `json:"sectorId,omitempty"`
	SubsectorID string     `json:"subsectorId,omitempty"`
	ActionURL   string     `json:"actionUrl,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// roleFromEnt converts the database role enum to the lowercase wire value
// carried in JWT claims.
func roleFromEnt(r entuser.Role) string {
	switch r {
	case entuser.RoleADMIN:
		return string(authz.RoleAdmin)
	case entuser.RoleSECTOR_ADMIN:
		return string(authz.RoleSectorAdmin)
	case entuser.RoleSUBSECTOR_ADMIN:
		return string(authz.RoleSubsectorAdmin)
	default:
		return string(authz.RoleUser)
	}
}

// roleToEnt converts a wire role to the database enum.
func roleToEnt(r string) (entuser.Role, error) {
	switch authz.Role(r) {
	case authz.RoleAdmin:
		return entuser.RoleADMIN, nil
	case authz.RoleSectorAdmin:
		return entuser.RoleSECTOR_ADMIN, nil
	case authz.RoleSubsectorAdmin:
		return entuser.RoleSUBSECTOR_ADMIN, nil
	case authz.RoleUser:
		return entuser.RoleUSER, nil
	default:
		return "", fmt.Errorf("unknown role: %s", r)
	}
}

func userToAPI(u *ent.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        roleFromEnt(u.Role),
		SectorID:    u.SectorID,
		SubsectorID: u.SubsectorID,
		Enabled:     u.Enabled,
		Approved:    u.Approved,
	}
}

func notificationToAPI(n *ent.Notification) NotificationInfo {
	return NotificationInfo{
		ID:          n.ID,
		Title:       n.Title,
		Message:     n.Message,
		Type:        notification.FromEntType(n.Type),
		Priority:    notification.FromEntPriority(n.Priority),
		SenderID:    n.SenderID,
		SectorID:    n.SectorID,
		SubsectorID: n.SubsectorID,
		ActionURL:   n.ActionURL,
		ExpiresAt:   n.ExpiresAt,
		CreatedAt:   n.CreatedAt,
	}
}
