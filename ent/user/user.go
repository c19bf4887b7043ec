// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSectorID holds the string denoting the sector_id field in the database.
	FieldSectorID = "sector_id"
	// FieldSubsectorID holds the string denoting the subsector_id field in the database.
	FieldSubsectorID = "subsector_id"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldApproved holds the string denoting the approved field in the database.
	FieldApproved = "approved"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// EdgeSector holds the string denoting the sector edge name in mutations.
	EdgeSector = "sector"
	// EdgeSubsector holds the string denoting the subsector edge name in mutations.
	EdgeSubsector = "subsector"
	// EdgeDeliveries holds the string denoting the deliveries edge name in mutations.
	EdgeDeliveries = "deliveries"
	// EdgeSentNotifications holds the string denoting the sent_notifications edge name in mutations.
	EdgeSentNotifications = "sent_notifications"
	// EdgeCreatedGroups holds the string denoting the created_groups edge name in mutations.
	EdgeCreatedGroups = "created_groups"
	// EdgeGroupMemberships holds the string denoting the group_memberships edge name in mutations.
	EdgeGroupMemberships = "group_memberships"
	// Table holds the table name of the user in the database.
	Table = "users"
	// SectorTable is the table that holds the sector relation/edge.
	SectorTable = "users"
	// SectorInverseTable is the table name for the Sector entity.
	// It exists in this package in order to avoid circular dependency with the "sector" package.
	SectorInverseTable = "sectors"
	// SectorColumn is the table column denoting the sector relation/edge.
	SectorColumn = "sector_id"
	// SubsectorTable is the table that holds the subsector relation/edge.
	SubsectorTable = "users"
	// SubsectorInverseTable is the table name for the Subsector entity.
	// It exists in this package in order to avoid circular dependency with the "subsector" package.
	SubsectorInverseTable = "subsectors"
	// SubsectorColumn is the table column denoting the subsector relation/edge.
	SubsectorColumn = "subsector_id"
	// DeliveriesTable is the table that holds the deliveries relation/edge.
	DeliveriesTable = "recipients"
	// DeliveriesInverseTable is the table name for the Recipient entity.
	// It exists in this package in order to avoid circular dependency with the "recipient" package.
	DeliveriesInverseTable = "recipients"
	// DeliveriesColumn is the table column denoting the deliveries relation/edge.
	DeliveriesColumn = "user_id"
	// SentNotificationsTable is the table that holds the sent_notifications relation/edge.
	SentNotificationsTable = "notifications"
	// SentNotificationsInverseTable is the table name for the Notification entity.
	// It exists in this package in order to avoid circular dependency with the "notification" package.
	SentNotificationsInverseTable = "notifications"
	// SentNotificationsColumn is the table column denoting the sent_notifications relation/edge.
	SentNotificationsColumn = "sender_id"
	// CreatedGroupsTable is the table that holds the created_groups relation/edge.
	CreatedGroupsTable = "groups"
	// CreatedGroupsInverseTable is the table name for the Group entity.
	// It exists in this package in order to avoid circular dependency with the "group" package.
	CreatedGroupsInverseTable = "groups"
	// CreatedGroupsColumn is the table column denoting the created_groups relation/edge.
	CreatedGroupsColumn = "created_by"
	// GroupMembershipsTable is the table that holds the group_memberships relation/edge.
	GroupMembershipsTable = "group_members"
	// GroupMembershipsInverseTable is the table name for the GroupMember entity.
	// It exists in this package in order to avoid circular dependency with the "groupmember" package.
	GroupMembershipsInverseTable = "group_members"
	// GroupMembershipsColumn is the table column denoting the group_memberships relation/edge.
	GroupMembershipsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUsername,
	FieldEmail,
	FieldDisplayName,
	FieldPasswordHash,
	FieldRole,
	FieldSectorID,
	FieldSubsectorID,
	FieldEnabled,
	FieldApproved,
	FieldLastLoginAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultApproved holds the default value on creation for the "approved" field.
	DefaultApproved bool
)

// Role defines the type for the "role" enum field.
type Role string

// RoleUSER is the default value of the Role enum.
const DefaultRole = RoleUSER

// Role values.
const (
	RoleADMIN           Role = "ADMIN"
	RoleSECTOR_ADMIN    Role = "SECTOR_ADMIN"
	RoleSUBSECTOR_ADMIN Role = "SUBSECTOR_ADMIN"
	RoleUSER            Role = "USER"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleADMIN, RoleSECTOR_ADMIN, RoleSUBSECTOR_ADMIN, RoleUSER:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySectorID orders the results by the sector_id field.
func BySectorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectorID, opts...).ToFunc()
}

// BySubsectorID orders the results by the subsector_id field.
func BySubsectorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubsectorID, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByApproved orders the results by the approved field.
func ByApproved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproved, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}

// BySectorField orders the results by sector field.
func BySectorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectorStep(), sql.OrderByField(field, opts...))
	}
}

// BySubsectorField orders the results by subsector field.
func BySubsectorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubsectorStep(), sql.OrderByField(field, opts...))
	}
}

// ByDeliveriesCount orders the results by deliveries count.
func ByDeliveriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeliveriesStep(), opts...)
	}
}

// ByDeliveries orders the results by deliveries terms.
func ByDeliveries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliveriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySentNotificationsCount orders the results by sent_notifications count.
func BySentNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSentNotificationsStep(), opts...)
	}
}

// BySentNotifications orders the results by sent_notifications terms.
func BySentNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSentNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCreatedGroupsCount orders the results by created_groups count.
func ByCreatedGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCreatedGroupsStep(), opts...)
	}
}

// ByCreatedGroups orders the results by created_groups terms.
func ByCreatedGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreatedGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGroupMembershipsCount orders the results by group_memberships count.
func ByGroupMembershipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupMembershipsStep(), opts...)
	}
}

// ByGroupMemberships orders the results by group_memberships terms.
func ByGroupMemberships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupMembershipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSectorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SectorTable, SectorColumn),
	)
}
func newSubsectorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubsectorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubsectorTable, SubsectorColumn),
	)
}
func newDeliveriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliveriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
	)
}
func newSentNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SentNotificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SentNotificationsTable, SentNotificationsColumn),
	)
}
func newCreatedGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreatedGroupsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CreatedGroupsTable, CreatedGroupsColumn),
	)
}
func newGroupMembershipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupMembershipsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GroupMembershipsTable, GroupMembershipsColumn),
	)
}
