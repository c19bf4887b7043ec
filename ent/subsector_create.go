// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"intrahub.io/portal/ent/sector"
	"intrahub.io/portal/ent/subsector"
	"intrahub.io/portal/ent/user"
)

// SubsectorCreate is the builder for creating a Subsector entity.
type SubsectorCreate struct {
	config
	mutation *SubsectorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubsectorCreate) SetCreatedAt(v time.Time) *SubsectorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubsectorCreate) SetNillableCreatedAt(v *time.Time) *SubsectorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubsectorCreate) SetUpdatedAt(v time.Time) *SubsectorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubsectorCreate) SetNillableUpdatedAt(v *time.Time) *SubsectorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SubsectorCreate) SetName(v string) *SubsectorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SubsectorCreate) SetDescription(v string) *SubsectorCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SubsectorCreate) SetNillableDescription(v *string) *SubsectorCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSectorID sets the "sector_id" field.
func (_c *SubsectorCreate) SetSectorID(v string) *SubsectorCreate {
	_c.mutation.SetSectorID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SubsectorCreate) SetID(v string) *SubsectorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSector sets the "sector" edge to the Sector entity.
func (_c *SubsectorCreate) SetSector(v *Sector) *SubsectorCreate {
	return _c.SetSectorID(v.ID)
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_c *SubsectorCreate) AddUserIDs(ids ...string) *SubsectorCreate {
	_c.mutation.AddUserIDs(ids...)
	return _c
}

// AddUsers adds the "users" edges to the User entity.
func (_c *SubsectorCreate) AddUsers(v ...*User) *SubsectorCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserIDs(ids...)
}

// Mutation returns the SubsectorMutation object of the builder.
func (_c *SubsectorCreate) Mutation() *SubsectorMutation {
	return _c.mutation
}

// Save creates the Subsector in the database.
func (_c *SubsectorCreate) Save(ctx context.Context) (*Subsector, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubsectorCreate) SaveX(ctx context.Context) *Subsector {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubsectorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubsectorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubsectorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subsector.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subsector.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubsectorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subsector.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subsector.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subsector.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subsector.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subsector.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectorID(); !ok {
		return &ValidationError{Name: "sector_id", err: errors.New(`ent: missing required field "Subsector.sector_id"`)}
	}
	if v, ok := _c.mutation.SectorID(); ok {
		if err := subsector.SectorIDValidator(v); err != nil {
			return &ValidationError{Name: "sector_id", err: fmt.Errorf(`ent: validator failed for field "Subsector.sector_id": %w`, err)}
		}
	}
	if len(_c.mutation.SectorIDs()) == 0 {
		return &ValidationError{Name: "sector", err: errors.New(`ent: missing required edge "Subsector.sector"`)}
	}
	return nil
}

func (_c *SubsectorCreate) sqlSave(ctx context.Context) (*Subsector, error) {
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
			return nil, fmt.Errorf("unexpected Subsector.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubsectorCreate) createSpec() (*Subsector, *sqlgraph.CreateSpec) {
	var (
		_node = &Subsector{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subsector.Table, sqlgraph.NewFieldSpec(subsector.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subsector.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subsector.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subsector.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(subsector.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.SectorIDs(); len(nodes) > 0 {
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
		_node.SectorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UsersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubsectorCreateBulk is the builder for creating many Subsector entities in bulk.
type SubsectorCreateBulk struct {
	config
	err      error
	builders []*SubsectorCreate
}

// Save creates the Subsector entities in the database.
func (_c *SubsectorCreateBulk) Save(ctx context.Context) ([]*Subsector, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subsector, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubsectorMutation)
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
func (_c *SubsectorCreateBulk) SaveX(ctx context.Context) []*Subsector {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubsectorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubsectorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
