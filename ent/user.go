// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"intrahub.io/portal/ent/sector"
	"intrahub.io/portal/ent/subsector"
	"intrahub.io/portal/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash string `json:"-"`
	// Role holds the value of the "role" field.
	Role user.Role `json:"role,omitempty"`
	// Sector the user belongs to / administers
	SectorID string `json:"sector_id,omitempty"`
	// SubsectorID holds the value of the "subsector_id" field.
	SubsectorID string `json:"subsector_id,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Set by an admin after reviewing the sign-up request
	Approved bool `json:"approved,omitempty"`
	// LastLoginAt holds the value of the "last_login_at" field.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Sector holds the value of the sector edge.
	Sector *Sector `json:"sector,omitempty"`
	// Subsector holds the value of the subsector edge.
	Subsector *Subsector `json:"subsector,omitempty"`
	// Deliveries holds the value of the deliveries edge.
	Deliveries []*Recipient `json:"deliveries,omitempty"`
	// SentNotifications holds the value of the sent_notifications edge.
	SentNotifications []*Notification `json:"sent_notifications,omitempty"`
	// CreatedGroups holds the value of the created_groups edge.
	CreatedGroups []*Group `json:"created_groups,omitempty"`
	// GroupMemberships holds the value of the group_memberships edge.
	GroupMemberships []*GroupMember `json:"group_memberships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// SectorOrErr returns the Sector value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) SectorOrErr() (*Sector, error) {
	if e.Sector != nil {
		return e.Sector, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sector.Label}
	}
	return nil, &NotLoadedError{edge: "sector"}
}

// SubsectorOrErr returns the Subsector value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) SubsectorOrErr() (*Subsector, error) {
	if e.Subsector != nil {
		return e.Subsector, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: subsector.Label}
	}
	return nil, &NotLoadedError{edge: "subsector"}
}

// DeliveriesOrErr returns the Deliveries value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DeliveriesOrErr() ([]*Recipient, error) {
	if e.loadedTypes[2] {
		return e.Deliveries, nil
	}
	return nil, &NotLoadedError{edge: "deliveries"}
}

// SentNotificationsOrErr returns the SentNotifications value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SentNotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[3] {
		return e.SentNotifications, nil
	}
	return nil, &NotLoadedError{edge: "sent_notifications"}
}

// CreatedGroupsOrErr returns the CreatedGroups value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) CreatedGroupsOrErr() ([]*Group, error) {
	if e.loadedTypes[4] {
		return e.CreatedGroups, nil
	}
	return nil, &NotLoadedError{edge: "created_groups"}
}

// GroupMembershipsOrErr returns the GroupMemberships value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) GroupMembershipsOrErr() ([]*GroupMember, error) {
	if e.loadedTypes[5] {
		return e.GroupMemberships, nil
	}
	return nil, &NotLoadedError{edge: "group_memberships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldEnabled, user.FieldApproved:
			values[i] = new(sql.NullBool)
		case user.FieldID, user.FieldUsername, user.FieldEmail, user.FieldDisplayName, user.FieldPasswordHash, user.FieldRole, user.FieldSectorID, user.FieldSubsectorID:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldLastLoginAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldSectorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sector_id", values[i])
			} else if value.Valid {
				_m.SectorID = value.String
			}
		case user.FieldSubsectorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subsector_id", values[i])
			} else if value.Valid {
				_m.SubsectorID = value.String
			}
		case user.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case user.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = value.Bool
			}
		case user.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySector queries the "sector" edge of the User entity.
func (_m *User) QuerySector() *SectorQuery {
	return NewUserClient(_m.config).QuerySector(_m)
}

// QuerySubsector queries the "subsector" edge of the User entity.
func (_m *User) QuerySubsector() *SubsectorQuery {
	return NewUserClient(_m.config).QuerySubsector(_m)
}

// QueryDeliveries queries the "deliveries" edge of the User entity.
func (_m *User) QueryDeliveries() *RecipientQuery {
	return NewUserClient(_m.config).QueryDeliveries(_m)
}

// QuerySentNotifications queries the "sent_notifications" edge of the User entity.
func (_m *User) QuerySentNotifications() *NotificationQuery {
	return NewUserClient(_m.config).QuerySentNotifications(_m)
}

// QueryCreatedGroups queries the "created_groups" edge of the User entity.
func (_m *User) QueryCreatedGroups() *GroupQuery {
	return NewUserClient(_m.config).QueryCreatedGroups(_m)
}

// QueryGroupMemberships queries the "group_memberships" edge of the User entity.
func (_m *User) QueryGroupMemberships() *GroupMemberQuery {
	return NewUserClient(_m.config).QueryGroupMemberships(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("sector_id=")
	builder.WriteString(_m.SectorID)
	builder.WriteString(", ")
	builder.WriteString("subsector_id=")
	builder.WriteString(_m.SubsectorID)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("approved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Approved))
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
