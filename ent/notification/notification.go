// Code generated by ent, DO NOT EDIT.

package notification

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the notification type in the database.
	Label = "notification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldSenderID holds the string denoting the sender_id field in the database.
	FieldSenderID = "sender_id"
	// FieldSectorID holds the string denoting the sector_id field in the database.
	FieldSectorID = "sector_id"
	// FieldSubsectorID holds the string denoting the subsector_id field in the database.
	FieldSubsectorID = "subsector_id"
	// FieldActionURL holds the string denoting the action_url field in the database.
	FieldActionURL = "action_url"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// EdgeSender holds the string denoting the sender edge name in mutations.
	EdgeSender = "sender"
	// EdgeRecipients holds the string denoting the recipients edge name in mutations.
	EdgeRecipients = "recipients"
	// Table holds the table name of the notification in the database.
	Table = "notifications"
	// SenderTable is the table that holds the sender relation/edge.
	SenderTable = "notifications"
	// SenderInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	SenderInverseTable = "users"
	// SenderColumn is the table column denoting the sender relation/edge.
	SenderColumn = "sender_id"
	// RecipientsTable is the table that holds the recipients relation/edge.
	RecipientsTable = "recipients"
	// RecipientsInverseTable is the table name for the Recipient entity.
	// It exists in this package in order to avoid circular dependency with the "recipient" package.
	RecipientsInverseTable = "recipients"
	// RecipientsColumn is the table column denoting the recipients relation/edge.
	RecipientsColumn = "notification_id"
)

// Columns holds all SQL columns for notification fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTitle,
	FieldMessage,
	FieldType,
	FieldPriority,
	FieldSenderID,
	FieldSectorID,
	FieldSubsectorID,
	FieldActionURL,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// SenderIDValidator is a validator for the "sender_id" field. It is called by the builders before save.
	SenderIDValidator func(string) error
)

// Type defines the type for the "type" enum field.
type Type string

// TypeGENERAL is the default value of the Type enum.
const DefaultType = TypeGENERAL

// Type values.
const (
	TypeGENERAL Type = "GENERAL"
	TypeINFO    Type = "INFO"
	TypeSUCCESS Type = "SUCCESS"
	TypeWARNING Type = "WARNING"
	TypeERROR   Type = "ERROR"
	TypeSYSTEM  Type = "SYSTEM"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeGENERAL, TypeINFO, TypeSUCCESS, TypeWARNING, TypeERROR, TypeSYSTEM:
		return nil
	default:
		return fmt.Errorf("notification: invalid enum value for type field: %q", _type)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNORMAL is the default value of the Priority enum.
const DefaultPriority = PriorityNORMAL

// Priority values.
const (
	PriorityLOW    Priority = "LOW"
	PriorityNORMAL Priority = "NORMAL"
	PriorityHIGH   Priority = "HIGH"
	PriorityURGENT Priority = "URGENT"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLOW, PriorityNORMAL, PriorityHIGH, PriorityURGENT:
		return nil
	default:
		return fmt.Errorf("notification: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Notification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// BySenderID orders the results by the sender_id field.
func BySenderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderID, opts...).ToFunc()
}

// BySectorID orders the results by the sector_id field.
func BySectorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectorID, opts...).ToFunc()
}

// BySubsectorID orders the results by the subsector_id field.
func BySubsectorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubsectorID, opts...).ToFunc()
}

// ByActionURL orders the results by the action_url field.
func ByActionURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionURL, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// BySenderField orders the results by sender field.
func BySenderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSenderStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecipientsCount orders the results by recipients count.
func ByRecipientsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecipientsStep(), opts...)
	}
}

// ByRecipients orders the results by recipients terms.
func ByRecipients(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipientsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSenderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SenderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SenderTable, SenderColumn),
	)
}
func newRecipientsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipientsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecipientsTable, RecipientsColumn),
	)
}
