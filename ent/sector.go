// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"intrahub.io/portal/ent/sector"
)

// Sector is the model entity for the Sector schema.
type Sector struct {
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
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SectorQuery when eager-loading is set.
	Edges        SectorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SectorEdges holds the relations/edges for other nodes in the graph.
type SectorEdges struct {
	// Subsectors holds the value of the subsectors edge.
	Subsectors []*Subsector `json:"subsectors,omitempty"`
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SubsectorsOrErr returns the Subsectors value or an error if the edge
// was not loaded in eager-loading.
func (e SectorEdges) SubsectorsOrErr() ([]*Subsector, error) {
	if e.loadedTypes[0] {
		return e.Subsectors, nil
	}
	return nil, &NotLoadedError{edge: "subsectors"}
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e SectorEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[1] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sector) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sector.FieldID, sector.FieldName, sector.FieldDescription:
			values[i] = new(sql.NullString)
		case sector.FieldCreatedAt, sector.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sector fields.
func (_m *Sector) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sector.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sector.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sector.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sector.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sector.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sector.
// This includes values selected through modifiers, order, etc.
func (_m *Sector) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubsectors queries the "subsectors" edge of the Sector entity.
func (_m *Sector) QuerySubsectors() *SubsectorQuery {
	return NewSectorClient(_m.config).QuerySubsectors(_m)
}

// QueryUsers queries the "users" edge of the Sector entity.
func (_m *Sector) QueryUsers() *UserQuery {
	return NewSectorClient(_m.config).QueryUsers(_m)
}

// Update returns a builder for updating this Sector.
// Note that you need to call Sector.Unwrap() before calling this method if this Sector
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sector) Update() *SectorUpdateOne {
	return NewSectorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sector entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sector) Unwrap() *Sector {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sector is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sector) String() string {
	var builder strings.Builder
	builder.WriteString("Sector(")
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
	builder.WriteByte(')')
	return builder.String()
}

// Sectors is a parsable slice of Sector.
type Sectors []*Sector
