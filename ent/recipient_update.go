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
	"intrahub.io/portal/ent/notification"
	"intrahub.io/portal/ent/predicate"
	"intrahub.io/portal/ent/recipient"
	"intrahub.io/portal/ent/user"
)

// RecipientUpdate is the builder for updating Recipient entities.
type RecipientUpdate struct {
	config
	hooks    []Hook
	mutation *RecipientMutation
}

// Where appends a list predicates to the RecipientUpdate builder.
func (_u *RecipientUpdate) Where(ps ...predicate.Recipient) *RecipientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNotificationID sets the "notification_id" field.
func (_u *RecipientUpdate) SetNotificationID(v string) *RecipientUpdate {
	_u.mutation.SetNotificationID(v)
	return _u
}

// SetNillableNotificationID sets the "notification_id" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableNotificationID(v *string) *RecipientUpdate {
	if v != nil {
		_u.SetNotificationID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecipientUpdate) SetUserID(v string) *RecipientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableUserID(v *string) *RecipientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *RecipientUpdate) SetReadAt(v time.Time) *RecipientUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableReadAt(v *time.Time) *RecipientUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *RecipientUpdate) ClearReadAt() *RecipientUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// SetNotification sets the "notification" edge to the Notification entity.
func (_u *RecipientUpdate) SetNotification(v *Notification) *RecipientUpdate {
	return _u.SetNotificationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *RecipientUpdate) SetUser(v *User) *RecipientUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the RecipientMutation object of the builder.
func (_u *RecipientUpdate) Mutation() *RecipientMutation {
	return _u.mutation
}

// ClearNotification clears the "notification" edge to the Notification entity.
func (_u *RecipientUpdate) ClearNotification() *RecipientUpdate {
	_u.mutation.ClearNotification()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *RecipientUpdate) ClearUser() *RecipientUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecipientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecipientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipientUpdate) check() error {
	if v, ok := _u.mutation.NotificationID(); ok {
		if err := recipient.NotificationIDValidator(v); err != nil {
			return &ValidationError{Name: "notification_id", err: fmt.Errorf(`ent: validator failed for field "Recipient.notification_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := recipient.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Recipient.user_id": %w`, err)}
		}
	}
	if _u.mutation.NotificationCleared() && len(_u.mutation.NotificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recipient.notification"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recipient.user"`)
	}
	return nil
}

func (_u *RecipientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipient.Table, recipient.Columns, sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(recipient.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(recipient.FieldReadAt, field.TypeTime)
	}
	if _u.mutation.NotificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipient.NotificationTable,
			Columns: []string{recipient.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipient.NotificationTable,
			Columns: []string{recipient.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
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
			Table:   recipient.UserTable,
			Columns: []string{recipient.UserColumn},
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
			Table:   recipient.UserTable,
			Columns: []string{recipient.UserColumn},
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
			err = &NotFoundError{recipient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecipientUpdateOne is the builder for updating a single Recipient entity.
type RecipientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecipientMutation
}

// SetNotificationID sets the "notification_id" field.
func (_u *RecipientUpdateOne) SetNotificationID(v string) *RecipientUpdateOne {
	_u.mutation.SetNotificationID(v)
	return _u
}

// SetNillableNotificationID sets the "notification_id" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableNotificationID(v *string) *RecipientUpdateOne {
	if v != nil {
		_u.SetNotificationID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RecipientUpdateOne) SetUserID(v string) *RecipientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableUserID(v *string) *RecipientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *RecipientUpdateOne) SetReadAt(v time.Time) *RecipientUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableReadAt(v *time.Time) *RecipientUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *RecipientUpdateOne) ClearReadAt() *RecipientUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// SetNotification sets the "notification" edge to the Notification entity.
func (_u *RecipientUpdateOne) SetNotification(v *Notification) *RecipientUpdateOne {
	return _u.SetNotificationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *RecipientUpdateOne) SetUser(v *User) *RecipientUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the RecipientMutation object of the builder.
func (_u *RecipientUpdateOne) Mutation() *RecipientMutation {
	return _u.mutation
}

// ClearNotification clears the "notification" edge to the Notification entity.
func (_u *RecipientUpdateOne) ClearNotification() *RecipientUpdateOne {
	_u.mutation.ClearNotification()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *RecipientUpdateOne) ClearUser() *RecipientUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the RecipientUpdate builder.
func (_u *RecipientUpdateOne) Where(ps ...predicate.Recipient) *RecipientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecipientUpdateOne) Select(field string, fields ...string) *RecipientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recipient entity.
func (_u *RecipientUpdateOne) Save(ctx context.Context) (*Recipient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipientUpdateOne) SaveX(ctx context.Context) *Recipient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecipientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipientUpdateOne) check() error {
	if v, ok := _u.mutation.NotificationID(); ok {
		if err := recipient.NotificationIDValidator(v); err != nil {
			return &ValidationError{Name: "notification_id", err: fmt.Errorf(`ent: validator failed for field "Recipient.notification_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := recipient.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Recipient.user_id": %w`, err)}
		}
	}
	if _u.mutation.NotificationCleared() && len(_u.mutation.NotificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recipient.notification"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recipient.user"`)
	}
	return nil
}

func (_u *RecipientUpdateOne) sqlSave(ctx context.Context) (_node *Recipient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipient.Table, recipient.Columns, sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recipient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipient.FieldID)
		for _, f := range fields {
			if !recipient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recipient.FieldID {
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
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(recipient.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(recipient.FieldReadAt, field.TypeTime)
	}
	if _u.mutation.NotificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipient.NotificationTable,
			Columns: []string{recipient.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipient.NotificationTable,
			Columns: []string{recipient.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
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
			Table:   recipient.UserTable,
			Columns: []string{recipient.UserColumn},
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
			Table:   recipient.UserTable,
			Columns: []string{recipient.UserColumn},
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
	_node = &Recipient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
