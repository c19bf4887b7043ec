// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"intrahub.io/portal/ent/notification"
	"intrahub.io/portal/ent/recipient"
	"intrahub.io/portal/ent/user"
)

// RecipientCreate is the builder for creating a Recipient entity.
type RecipientCreate struct {
	config
	mutation *RecipientMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecipientCreate) SetCreatedAt(v time.Time) *RecipientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableCreatedAt(v *time.Time) *RecipientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetNotificationID sets the "notification_id" field.
func (_c *RecipientCreate) SetNotificationID(v string) *RecipientCreate {
	_c.mutation.SetNotificationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RecipientCreate) SetUserID(v string) *RecipientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *RecipientCreate) SetReadAt(v time.Time) *RecipientCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableReadAt(v *time.Time) *RecipientCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecipientCreate) SetID(v string) *RecipientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNotification sets the "notification" edge to the Notification entity.
func (_c *RecipientCreate) SetNotification(v *Notification) *RecipientCreate {
	return _c.SetNotificationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *RecipientCreate) SetUser(v *User) *RecipientCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the RecipientMutation object of the builder.
func (_c *RecipientCreate) Mutation() *RecipientMutation {
	return _c.mutation
}

// Save creates the Recipient in the database.
func (_c *RecipientCreate) Save(ctx context.Context) (*Recipient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecipientCreate) SaveX(ctx context.Context) *Recipient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecipientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recipient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecipientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recipient.created_at"`)}
	}
	if _, ok := _c.mutation.NotificationID(); !ok {
		return &ValidationError{Name: "notification_id", err: errors.New(`ent: missing required field "Recipient.notification_id"`)}
	}
	if v, ok := _c.mutation.NotificationID(); ok {
		if err := recipient.NotificationIDValidator(v); err != nil {
			return &ValidationError{Name: "notification_id", err: fmt.Errorf(`ent: validator failed for field "Recipient.notification_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Recipient.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := recipient.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Recipient.user_id": %w`, err)}
		}
	}
	if len(_c.mutation.NotificationIDs()) == 0 {
		return &ValidationError{Name: "notification", err: errors.New(`ent: missing required edge "Recipient.notification"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Recipient.user"`)}
	}
	return nil
}

func (_c *RecipientCreate) sqlSave(ctx context.Context) (*Recipient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Recipient.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecipientCreate) createSpec() (*Recipient, *sqlgraph.CreateSpec) {
	var (
		_node = &Recipient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recipient.Table, sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recipient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(recipient.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if nodes := _c.mutation.NotificationIDs(); len(nodes) > 0 {
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
		_node.NotificationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecipientCreateBulk is the builder for creating many Recipient entities in bulk.
type RecipientCreateBulk struct {
	config
	err      error
	builders []*RecipientCreate
}

// Save creates the Recipient entities in the database.
func (_c *RecipientCreateBulk) Save(ctx context.Context) ([]*Recipient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recipient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecipientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecipientCreateBulk) SaveX(ctx context.Context) []*Recipient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
