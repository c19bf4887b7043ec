// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"intrahub.io/portal/ent/notification"
	"intrahub.io/portal/ent/recipient"
	"intrahub.io/portal/ent/user"
)

// Recipient is the model entity for the Recipient schema.
type Recipient struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// NotificationID holds the value of the "notification_id" field.
	NotificationID string `json:"notification_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// nil means unread; read/unread toggling keeps no history
	ReadAt *time.Time `json:"read_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecipientQuery when eager-loading is set.
	Edges        RecipientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecipientEdges holds the relations/edges for other nodes in the graph.
type RecipientEdges struct {
	// Notification holds the value of the notification edge.
	Notification *Notification `json:"notification,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NotificationOrErr returns the Notification value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecipientEdges) NotificationOrErr() (*Notification, error) {
	if e.Notification != nil {
		return e.Notification, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: notification.Label}
	}
	return nil, &NotLoadedError{edge: "notification"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecipientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recipient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recipient.FieldID, recipient.FieldNotificationID, recipient.FieldUserID:
			values[i] = new(sql.NullString)
		case recipient.FieldCreatedAt, recipient.FieldReadAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recipient fields.
func (_m *Recipient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recipient.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recipient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recipient.FieldNotificationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notification_id", values[i])
			} else if value.Valid {
				_m.NotificationID = value.String
			}
		case recipient.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case recipient.FieldReadAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field read_at", values[i])
			} else if value.Valid {
				_m.ReadAt = new(time.Time)
				*_m.ReadAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recipient.
// This includes values selected through modifiers, order, etc.
func (_m *Recipient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNotification queries the "notification" edge of the Recipient entity.
func (_m *Recipient) QueryNotification() *NotificationQuery {
	return NewRecipientClient(_m.config).QueryNotification(_m)
}

// QueryUser queries the "user" edge of the Recipient entity.
func (_m *Recipient) QueryUser() *UserQuery {
	return NewRecipientClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Recipient.
// Note that you need to call Recipient.Unwrap() before calling this method if this Recipient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recipient) Update() *RecipientUpdateOne {
	return NewRecipientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recipient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recipient) Unwrap() *Recipient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recipient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recipient) String() string {
	var builder strings.Builder
	builder.WriteString("Recipient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("notification_id=")
	builder.WriteString(_m.NotificationID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.ReadAt; v != nil {
		builder.WriteString("read_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Recipients is a parsable slice of Recipient.
type Recipients []*Recipient
