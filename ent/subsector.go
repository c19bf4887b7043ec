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
)

// Subsector is the model entity for the Subsector schema.
type Subsector struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SectorID holds the value of the "sector_id" field.
	SectorID string `json:"sector_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubsectorQuery when eager-loading is set.
	Edges        SubsectorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubsectorEdges holds the relations/edges for other nodes in the graph.
type SubsectorEdges struct {
	// Sector holds the value of the sector edge.
	Sector *Sector `json:"sector,omitempty"`
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SectorOrErr returns the Sector value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubsectorEdges) SectorOrErr() (*Sector, error) {
	if e.Sector != nil {
		return e.Sector, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sector.Label}
	}
	return nil, &NotLoadedError{edge: "sector"}
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e SubsectorEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[1] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subsector) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subsector.FieldID, subsector.FieldName, subsector.FieldDescription, subsector.FieldSectorID:
			values[i] = new(sql.NullString)
		case subsector.FieldCreatedAt, subsector.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subsector fields.
func (_m *Subsector) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subsector.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subsector.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subsector.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case subsector.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case subsector.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case subsector.FieldSectorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sector_id", values[i])
			} else if value.Valid {
				_m.SectorID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subsector.
// This includes values selected through modifiers, order, etc.
func (_m *Subsector) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySector queries the "sector" edge of the Subsector entity.
func (_m *Subsector) QuerySector() *SectorQuery {
	return NewSubsectorClient(_m.config).QuerySector(_m)
}

// QueryUsers queries the "users" edge of the Subsector entity.
func (_m *Subsector) QueryUsers() *UserQuery {
	return NewSubsectorClient(_m.config).QueryUsers(_m)
}

// Update returns a builder for updating this Subsector.
// Note that you need to call Subsector.Unwrap() before calling this method if this Subsector
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subsector) Update() *SubsectorUpdateOne {
	return NewSubsectorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subsector entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subsector) Unwrap() *Subsector {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subsector is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subsector) String() string {
	var builder strings.Builder
	builder.WriteString("Subsector(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("sector_id=")
	builder.WriteString(_m.SectorID)
	builder.WriteByte(')')
	return builder.String()
}

// Subsectors is a parsable slice of Subsector.
type Subsectors []*Subsector
