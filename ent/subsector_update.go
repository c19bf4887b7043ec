// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"intrahub.io/portal/ent/predicate"
	"intrahub.io/portal/ent/sector"
	"intrahub.io/portal/ent/subsector"
	"intrahub.io/portal/ent/user"
)

// SubsectorUpdate is the builder for updating Subsector entities.
type SubsectorUpdate struct {
	config
	hooks    []Hook
	mutation *SubsectorMutation
}

// Where appends a list predicates to the SubsectorUpdate builder.
func (_u *SubsectorUpdate) Where(ps ...predicate.Subsector) *SubsectorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubsectorUpdate) SetUpdatedAt(v time.Time) *SubsectorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SubsectorUpdate) SetName(v string) *SubsectorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubsectorUpdate) SetNillableName(v *string) *SubsectorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubsectorUpdate) SetDescription(v string) *SubsectorUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubsectorUpdate) SetNillableDescription(v *string) *SubsectorUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubsectorUpdate) ClearDescription() *SubsectorUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSectorID sets the "sector_id" field.
func (_u *SubsectorUpdate) SetSectorID(v string) *SubsectorUpdate {
	_u.mutation.SetSectorID(v)
	return _u
}

// SetNillableSectorID sets the "sector_id" field if the given value is not nil.
func (_u *SubsectorUpdate) SetNillableSectorID(v *string) *SubsectorUpdate {
	if v != nil {
		_u.SetSectorID(*v)
	}
	return _u
}

// SetSector sets the "sector" edge to the Sector entity.
func (_u *SubsectorUpdate) SetSector(v *Sector) *SubsectorUpdate {
	return _u.SetSectorID(v.ID)
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *SubsectorUpdate) AddUserIDs(ids ...string) *SubsectorUpdate {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *SubsectorUpdate) AddUsers(v ...*User) *SubsectorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// Mutation returns the SubsectorMutation object of the builder.
func (_u *SubsectorUpdate) Mutation() *SubsectorMutation {
	return _u.mutation
}

// ClearSector clears the "sector" edge to the Sector entity.
func (_u *SubsectorUpdate) ClearSector() *SubsectorUpdate {
	_u.mutation.ClearSector()
	return _u
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *SubsectorUpdate) ClearUsers() *SubsectorUpdate {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *SubsectorUpdate) RemoveUserIDs(ids ...string) *SubsectorUpdate {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *SubsectorUpdate) RemoveUsers(v ...*User) *SubsectorUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubsectorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubsectorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubsectorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubsectorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubsectorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subsector.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubsectorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subsector.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subsector.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectorID(); ok {
		if err := subsector.SectorIDValidator(v); err != nil {
			return &ValidationError{Name: "sector_id", err: fmt.Errorf(`ent: validator failed for field "Subsector.sector_id": %w`, err)}
		}
	}
	if _u.mutation.SectorCleared() && len(_u.mutation.SectorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subsector.sector"`)
	}
	return nil
}

func (_u *SubsectorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subsector.Table, subsector.Columns, sqlgraph.NewFieldSpec(subsector.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subsector.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subsector.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subsector.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subsector.FieldDescription, field.TypeString)
	}
	if _u.mutation.SectorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subsector.SectorTable,
			Columns: []string{subsector.SectorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sector.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subsector.SectorTable,
			Columns: []string{subsector.SectorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sector.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subsector.UsersTable,
			Columns: []string{subsector.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subsector.UsersTable,
			Columns: []string{subsector.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subsector.UsersTable,
			Columns: []string{subsector.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subsector.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubsectorUpdateOne is the builder for updating a single Subsector entity.
type SubsectorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubsectorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubsectorUpdateOne) SetUpdatedAt(v time.Time) *SubsectorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SubsectorUpdateOne) SetName(v string) *SubsectorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubsectorUpdateOne) SetNillableName(v *string) *SubsectorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubsectorUpdateOne) SetDescription(v string) *SubsectorUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubsectorUpdateOne) SetNillableDescription(v *string) *SubsectorUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubsectorUpdateOne) ClearDescription() *SubsectorUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSectorID sets the "sector_id" field.
func (_u *SubsectorUpdateOne) SetSectorID(v string) *SubsectorUpdateOne {
	_u.mutation.SetSectorID(v)
	return _u
}

// SetNillableSectorID sets the "sector_id" field if the given value is not nil.
func (_u *SubsectorUpdateOne) SetNillableSectorID(v *string) *SubsectorUpdateOne {
	if v != nil {
		_u.SetSectorID(*v)
	}
	return _u
}

// SetSector sets the "sector" edge to the Sector entity.
func (_u *SubsectorUpdateOne) SetSector(v *Sector) *SubsectorUpdateOne {
	return _u.SetSectorID(v.ID)
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *SubsectorUpdateOne) AddUserIDs(ids ...string) *SubsectorUpdateOne {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *SubsectorUpdateOne) AddUsers(v ...*User) *SubsectorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// Mutation returns the SubsectorMutation object of the builder.
func (_u *SubsectorUpdateOne) Mutation() *SubsectorMutation {
	return _u.mutation
}

// ClearSector clears the "sector" edge to the Sector entity.
func (_u *SubsectorUpdateOne) ClearSector() *SubsectorUpdateOne {
	_u.mutation.ClearSector()
	return _u
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *SubsectorUpdateOne) ClearUsers() *SubsectorUpdateOne {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *SubsectorUpdateOne) RemoveUserIDs(ids ...string) *SubsectorUpdateOne {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *SubsectorUpdateOne) RemoveUsers(v ...*User) *SubsectorUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// Where appends a list predicates to the SubsectorUpdate builder.
func (_u *SubsectorUpdateOne) Where(ps ...predicate.Subsector) *SubsectorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubsectorUpdateOne) Select(field string, fields ...string) *SubsectorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subsector entity.
func (_u *SubsectorUpdateOne) Save(ctx context.Context) (*Subsector, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubsectorUpdateOne) SaveX(ctx context.Context) *Subsector {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubsectorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubsectorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubsectorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subsector.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubsectorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subsector.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subsector.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectorID(); ok {
		if err := subsector.SectorIDValidator(v); err != nil {
			return &ValidationError{Name: "sector_id", err: fmt.Errorf(`ent: validator failed for field "Subsector.sector_id": %w`, err)}
		}
	}
	if _u.mutation.SectorCleared() && len(_u.mutation.SectorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subsector.sector"`)
	}
	return nil
}

func (_u *SubsectorUpdateOne) sqlSave(ctx context.Context) (_node *Subsector, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subsector.Table, subsector.Columns, sqlgraph.NewFieldSpec(subsector.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subsector.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subsector.FieldID)
		for _, f := range fields {
			if !subsector.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subsector.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subsector.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subsector.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subsector.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subsector.FieldDescription, field.TypeString)
	}
	if _u.mutation.SectorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subsector.SectorTable,
			Columns: []string{subsector.SectorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sector.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subsector.SectorTable,
			Columns: []string{subsector.SectorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sector.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subsector.UsersTable,
			Columns: []string{subsector.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subsector.UsersTable,
			Columns: []string{subsector.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subsector.UsersTable,
			Columns: []string{subsector.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subsector{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subsector.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
