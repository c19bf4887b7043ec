// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"intrahub.io/portal/ent/group"
	"intrahub.io/portal/ent/groupmember"
	"intrahub.io/portal/ent/predicate"
	"intrahub.io/portal/ent/user"
)

// GroupMemberUpdate is the builder for updating GroupMember entities.
type GroupMemberUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMemberMutation
}

// Where appends a list predicates to the GroupMemberUpdate builder.
func (_u *GroupMemberUpdate) Where(ps ...predicate.GroupMember) *GroupMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *GroupMemberUpdate) SetGroupID(v string) *GroupMemberUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupMemberUpdate) SetNillableGroupID(v *string) *GroupMemberUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GroupMemberUpdate) SetUserID(v string) *GroupMemberUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GroupMemberUpdate) SetNillableUserID(v *string) *GroupMemberUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAddedBy sets the "added_by" field.
func (_u *GroupMemberUpdate) SetAddedBy(v string) *GroupMemberUpdate {
	_u.mutation.SetAddedBy(v)
	return _u
}

// SetNillableAddedBy sets the "added_by" field if the given value is not nil.
func (_u *GroupMemberUpdate) SetNillableAddedBy(v *string) *GroupMemberUpdate {
	if v != nil {
		_u.SetAddedBy(*v)
	}
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *GroupMemberUpdate) SetGroup(v *Group) *GroupMemberUpdate {
	return _u.SetGroupID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *GroupMemberUpdate) SetUser(v *User) *GroupMemberUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the GroupMemberMutation object of the builder.
func (_u *GroupMemberUpdate) Mutation() *GroupMemberMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *GroupMemberUpdate) ClearGroup() *GroupMemberUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *GroupMemberUpdate) ClearUser() *GroupMemberUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GroupMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GroupMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupMemberUpdate) check() error {
	if v, ok := _u.mutation.GroupID(); ok {
		if err := groupmember.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "GroupMember.group_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := groupmember.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GroupMember.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AddedBy(); ok {
		if err := groupmember.AddedByValidator(v); err != nil {
			return &ValidationError{Name: "added_by", err: fmt.Errorf(`ent: validator failed for field "GroupMember.added_by": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupMember.group"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupMember.user"`)
	}
	return nil
}

func (_u *GroupMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupmember.Table, groupmember.Columns, sqlgraph.NewFieldSpec(groupmember.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AddedBy(); ok {
		_spec.SetField(groupmember.FieldAddedBy, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.GroupTable,
			Columns: []string{groupmember.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.GroupTable,
			Columns: []string{groupmember.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.UserTable,
			Columns: []string{groupmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.UserTable,
			Columns: []string{groupmember.UserColumn},
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
			err = &NotFoundError{groupmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GroupMemberUpdateOne is the builder for updating a single GroupMember entity.
type GroupMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMemberMutation
}

// SetGroupID sets the "group_id" field.
func (_u *GroupMemberUpdateOne) SetGroupID(v string) *GroupMemberUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *GroupMemberUpdateOne) SetNillableGroupID(v *string) *GroupMemberUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GroupMemberUpdateOne) SetUserID(v string) *GroupMemberUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GroupMemberUpdateOne) SetNillableUserID(v *string) *GroupMemberUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAddedBy sets the "added_by" field.
func (_u *GroupMemberUpdateOne) SetAddedBy(v string) *GroupMemberUpdateOne {
	_u.mutation.SetAddedBy(v)
	return _u
}

// SetNillableAddedBy sets the "added_by" field if the given value is not nil.
func (_u *GroupMemberUpdateOne) SetNillableAddedBy(v *string) *GroupMemberUpdateOne {
	if v != nil {
		_u.SetAddedBy(*v)
	}
	return _u
}

// SetGroup sets the "group" edge to the Group entity.
func (_u *GroupMemberUpdateOne) SetGroup(v *Group) *GroupMemberUpdateOne {
	return _u.SetGroupID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *GroupMemberUpdateOne) SetUser(v *User) *GroupMemberUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the GroupMemberMutation object of the builder.
func (_u *GroupMemberUpdateOne) Mutation() *GroupMemberMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the Group entity.
func (_u *GroupMemberUpdateOne) ClearGroup() *GroupMemberUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *GroupMemberUpdateOne) ClearUser() *GroupMemberUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the GroupMemberUpdate builder.
func (_u *GroupMemberUpdateOne) Where(ps ...predicate.GroupMember) *GroupMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GroupMemberUpdateOne) Select(field string, fields ...string) *GroupMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GroupMember entity.
func (_u *GroupMemberUpdateOne) Save(ctx context.Context) (*GroupMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GroupMemberUpdateOne) SaveX(ctx context.Context) *GroupMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GroupMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GroupMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GroupMemberUpdateOne) check() error {
	if v, ok := _u.mutation.GroupID(); ok {
		if err := groupmember.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "GroupMember.group_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := groupmember.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GroupMember.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AddedBy(); ok {
		if err := groupmember.AddedByValidator(v); err != nil {
			return &ValidationError{Name: "added_by", err: fmt.Errorf(`ent: validator failed for field "GroupMember.added_by": %w`, err)}
		}
	}
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupMember.group"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GroupMember.user"`)
	}
	return nil
}

func (_u *GroupMemberUpdateOne) sqlSave(ctx context.Context) (_node *GroupMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupmember.Table, groupmember.Columns, sqlgraph.NewFieldSpec(groupmember.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupmember.FieldID)
		for _, f := range fields {
			if !groupmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupmember.FieldID {
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
	if value, ok := _u.mutation.AddedBy(); ok {
		_spec.SetField(groupmember.FieldAddedBy, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.GroupTable,
			Columns: []string{groupmember.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.GroupTable,
			Columns: []string{groupmember.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(group.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.UserTable,
			Columns: []string{groupmember.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   groupmember.UserTable,
			Columns: []string{groupmember.UserColumn},
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
	_node = &GroupMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
