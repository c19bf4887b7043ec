// Package notification implements the portal notification broadcast system:
// recipient resolution, transactional fan-out, inbox queries, bulk read-state
// mutations and the group registry.
package notification

import (
	"fmt"

	entnotification "intrahub.io/portal/ent/notification"
)

// Wire-level notification types as exposed by the HTTP API. The database
// stores the uppercase ent enum values; conversion happens here.
const (
	TypeGeneral = "general"
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
	TypeSystem  = "system"
)

// Wire-level priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// SystemSenderName is the display fallback when the sender row cannot be
// resolved (deleted account, system-originated broadcast).
const SystemSenderName = "Sistema"

// ToEntType converts a wire type to the ent enum. Empty input defaults to
// general.
func ToEntType(t string) (entnotification.Type, error) {
	switch t {
	case "", TypeGeneral:
		return entnotification.TypeGENERAL, nil
	case TypeInfo:
		return entnotification.TypeINFO, nil
	case TypeSuccess:
		return entnotification.TypeSUCCESS, nil
	case TypeWarning:
		return entnotification.TypeWARNING, nil
	case TypeError:
		return entnotification.TypeERROR, nil
	case TypeSystem:
		return entnotification.TypeSYSTEM, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}

// FromEntType converts the ent enum back to the wire value.
func FromEntType(t entnotification.Type) string {
	switch t {
	case entnotification.TypeINFO:
		return TypeInfo
	case entnotification.TypeSUCCESS:
		return TypeSuccess
	case entnotification.TypeWARNING:
		return TypeWarning
	case entnotification.TypeERROR:
		return TypeError
	case entnotification.TypeSYSTEM:
		return TypeSystem
	default:
		return TypeGeneral
	}
}

// ToEntPriority converts a wire priority to the ent enum. Empty input
// defaults to normal.
func ToEntPriority(p string) (entnotification.Priority, error) {
	switch p {
	case "", PriorityNormal:
		return entnotification.PriorityNORMAL, nil
	case PriorityLow:
		return entnotification.PriorityLOW, nil
	case PriorityHigh:
		return entnotification.PriorityHIGH, nil
	case PriorityUrgent:
		return entnotification.PriorityURGENT, nil
	default:
		return "", fmt.Errorf("unknown notification priority: %s", p)
	}
}

// FromEntPriority converts the ent enum back to the wire value.
func FromEntPriority(p entnotification.Priority) string {
	switch p {
	case entnotification.PriorityLOW:
		return PriorityLow
	case entnotification.PriorityHIGH:
		return PriorityHigh
	case entnotification.PriorityURGENT:
		return PriorityUrgent
	default:
		return PriorityNormal
	}
}
