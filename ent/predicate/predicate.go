// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupMember is the predicate function for groupmember builders.
type GroupMember func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Recipient is the predicate function for recipient builders.
type Recipient func(*sql.Selector)

// Sector is the predicate function for sector builders.
type Sector func(*sql.Selector)

// Subsector is the predicate function for subsector builders.
type Subsector func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
