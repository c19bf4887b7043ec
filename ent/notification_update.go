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

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NotificationUpdate) SetTitle(v string) *NotificationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableTitle(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *NotificationUpdate) SetMessage(v string) *NotificationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableMessage(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *NotificationUpdate) SetType(v notification.Type) *NotificationUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableType(v *notification.Type) *NotificationUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationUpdate) SetPriority(v notification.Priority) *NotificationUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillablePriority(v *notification.Priority) *NotificationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSenderID sets the "sender_id" field.
func (_u *NotificationUpdate) SetSenderID(v string) *NotificationUpdate {
	_u.mutation.SetSenderID(v)
	return _u
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSenderID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetSenderID(*v)
	}
	return _u
}

// SetSectorID sets the "sector_id" field.
func (_u *NotificationUpdate) SetSectorID(v string) *NotificationUpdate {
	_u.mutation.SetSectorID(v)
	return _u
}

// SetNillableSectorID sets the "sector_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSectorID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetSectorID(*v)
	}
	return _u
}

// ClearSectorID clears the value of the "sector_id" field.
func (_u *NotificationUpdate) ClearSectorID() *NotificationUpdate {
	_u.mutation.ClearSectorID()
	return _u
}

// SetSubsectorID sets the "subsector_id" field.
func (_u *NotificationUpdate) SetSubsectorID(v string) *NotificationUpdate {
	_u.mutation.SetSubsectorID(v)
	return _u
}

// SetNillableSubsectorID sets the "subsector_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSubsectorID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetSubsectorID(*v)
	}
	return _u
}

// ClearSubsectorID clears the value of the "subsector_id" field.
func (_u *NotificationUpdate) ClearSubsectorID() *NotificationUpdate {
	_u.mutation.ClearSubsectorID()
	return _u
}

// SetActionURL sets the "action_url" field.
func (_u *NotificationUpdate) SetActionURL(v string) *NotificationUpdate {
	_u.mutation.SetActionURL(v)
	return _u
}

// SetNillableActionURL sets the "action_url" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableActionURL(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetActionURL(*v)
	}
	return _u
}

// ClearActionURL clears the value of the "action_url" field.
func (_u *NotificationUpdate) ClearActionURL() *NotificationUpdate {
	_u.mutation.ClearActionURL()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *NotificationUpdate) SetExpiresAt(v time.Time) *NotificationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableExpiresAt(v *time.Time) *NotificationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *NotificationUpdate) ClearExpiresAt() *NotificationUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetSender sets the "sender" edge to the User entity.
func (_u *NotificationUpdate) SetSender(v *User) *NotificationUpdate {
	return _u.SetSenderID(v.ID)
}

// AddRecipientIDs adds the "recipients" edge to the Recipient entity by IDs.
func (_u *NotificationUpdate) AddRecipientIDs(ids ...string) *NotificationUpdate {
	_u.mutation.AddRecipientIDs(ids...)
	return _u
}

// AddRecipients adds the "recipients" edges to the Recipient entity.
func (_u *NotificationUpdate) AddRecipients(v ...*Recipient) *NotificationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecipientIDs(ids...)
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdate) Mutation() *NotificationMutation {
	return _u.mutation
}

// ClearSender clears the "sender" edge to the User entity.
func (_u *NotificationUpdate) ClearSender() *NotificationUpdate {
	_u.mutation.ClearSender()
	return _u
}

// ClearRecipients clears all "recipients" edges to the Recipient entity.
func (_u *NotificationUpdate) ClearRecipients() *NotificationUpdate {
	_u.mutation.ClearRecipients()
	return _u
}

// RemoveRecipientIDs removes the "recipients" edge to Recipient entities by IDs.
func (_u *NotificationUpdate) RemoveRecipientIDs(ids ...string) *NotificationUpdate {
	_u.mutation.RemoveRecipientIDs(ids...)
	return _u
}

// RemoveRecipients removes "recipients" edges to Recipient entities.
func (_u *NotificationUpdate) RemoveRecipients(v ...*Recipient) *NotificationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecipientIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := notification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notification.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := notification.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Notification.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := notification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Notification.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SenderID(); ok {
		if err := notification.SenderIDValidator(v); err != nil {
			return &ValidationError{Name: "sender_id", err: fmt.Errorf(`ent: validator failed for field "Notification.sender_id": %w`, err)}
		}
	}
	if _u.mutation.SenderCleared() && len(_u.mutation.SenderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Notification.sender"`)
	}
	return nil
}

func (_u *NotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notification.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SectorID(); ok {
		_spec.SetField(notification.FieldSectorID, field.TypeString, value)
	}
	if _u.mutation.SectorIDCleared() {
		_spec.ClearField(notification.FieldSectorID, field.TypeString)
	}
	if value, ok := _u.mutation.SubsectorID(); ok {
		_spec.SetField(notification.FieldSubsectorID, field.TypeString, value)
	}
	if _u.mutation.SubsectorIDCleared() {
		_spec.ClearField(notification.FieldSubsectorID, field.TypeString)
	}
	if value, ok := _u.mutation.ActionURL(); ok {
		_spec.SetField(notification.FieldActionURL, field.TypeString, value)
	}
	if _u.mutation.ActionURLCleared() {
		_spec.ClearField(notification.FieldActionURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(notification.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(notification.FieldExpiresAt, field.TypeTime)
	}
	if _u.mutation.SenderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notification.SenderTable,
			Columns: []string{notification.SenderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SenderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notification.SenderTable,
			Columns: []string{notification.SenderColumn},
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
	if _u.mutation.RecipientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notification.RecipientsTable,
			Columns: []string{notification.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecipientsIDs(); len(nodes) > 0 && !_u.mutation.RecipientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notification.RecipientsTable,
			Columns: []string{notification.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notification.RecipientsTable,
			Columns: []string{notification.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetTitle sets the "title" field.
func (_u *NotificationUpdateOne) SetTitle(v string) *NotificationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableTitle(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *NotificationUpdateOne) SetMessage(v string) *NotificationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableMessage(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *NotificationUpdateOne) SetType(v notification.Type) *NotificationUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableType(v *notification.Type) *NotificationUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationUpdateOne) SetPriority(v notification.Priority) *NotificationUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillablePriority(v *notification.Priority) *NotificationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSenderID sets the "sender_id" field.
func (_u *NotificationUpdateOne) SetSenderID(v string) *NotificationUpdateOne {
	_u.mutation.SetSenderID(v)
	return _u
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSenderID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetSenderID(*v)
	}
	return _u
}

// SetSectorID sets the "sector_id" field.
func (_u *NotificationUpdateOne) SetSectorID(v string) *NotificationUpdateOne {
	_u.mutation.SetSectorID(v)
	return _u
}

// SetNillableSectorID sets the "sector_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSectorID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetSectorID(*v)
	}
	return _u
}

// ClearSectorID clears the value of the "sector_id" field.
func (_u *NotificationUpdateOne) ClearSectorID() *NotificationUpdateOne {
	_u.mutation.ClearSectorID()
	return _u
}

// SetSubsectorID sets the "subsector_id" field.
func (_u *NotificationUpdateOne) SetSubsectorID(v string) *NotificationUpdateOne {
	_u.mutation.SetSubsectorID(v)
	return _u
}

// SetNillableSubsectorID sets the "subsector_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSubsectorID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetSubsectorID(*v)
	}
	return _u
}

// ClearSubsectorID clears the value of the "subsector_id" field.
func (_u *NotificationUpdateOne) ClearSubsectorID() *NotificationUpdateOne {
	_u.mutation.ClearSubsectorID()
	return _u
}

// SetActionURL sets the "action_url" field.
func (_u *NotificationUpdateOne) SetActionURL(v string) *NotificationUpdateOne {
	_u.mutation.SetActionURL(v)
	return _u
}

// SetNillableActionURL sets the "action_url" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableActionURL(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetActionURL(*v)
	}
	return _u
}

// ClearActionURL clears the value of the "action_url" field.
func (_u *NotificationUpdateOne) ClearActionURL() *NotificationUpdateOne {
	_u.mutation.ClearActionURL()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *NotificationUpdateOne) SetExpiresAt(v time.Time) *NotificationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableExpiresAt(v *time.Time) *NotificationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *NotificationUpdateOne) ClearExpiresAt() *NotificationUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetSender sets the "sender" edge to the User entity.
func (_u *NotificationUpdateOne) SetSender(v *User) *NotificationUpdateOne {
	return _u.SetSenderID(v.ID)
}

// AddRecipientIDs adds the "recipients" edge to the Recipient entity by IDs.
func (_u *NotificationUpdateOne) AddRecipientIDs(ids ...string) *NotificationUpdateOne {
	_u.mutation.AddRecipientIDs(ids...)
	return _u
}

// AddRecipients adds the "recipients" edges to the Recipient entity.
func (_u *NotificationUpdateOne) AddRecipients(v ...*Recipient) *NotificationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecipientIDs(ids...)
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdateOne) Mutation() *NotificationMutation {
	return _u.mutation
}

// ClearSender clears the "sender" edge to the User entity.
func (_u *NotificationUpdateOne) ClearSender() *NotificationUpdateOne {
	_u.mutation.ClearSender()
	return _u
}

// ClearRecipients clears all "recipients" edges to the Recipient entity.
func (_u *NotificationUpdateOne) ClearRecipients() *NotificationUpdateOne {
	_u.mutation.ClearRecipients()
	return _u
}

// RemoveRecipientIDs removes the "recipients" edge to Recipient entities by IDs.
func (_u *NotificationUpdateOne) RemoveRecipientIDs(ids ...string) *NotificationUpdateOne {
	_u.mutation.RemoveRecipientIDs(ids...)
	return _u
}

// RemoveRecipients removes "recipients" edges to Recipient entities.
func (_u *NotificationUpdateOne) RemoveRecipients(v ...*Recipient) *NotificationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecipientIDs(ids...)
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notification entity.
func (_u *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := notification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notification.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := notification.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "Notification.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := notification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Notification.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Notification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SenderID(); ok {
		if err := notification.SenderIDValidator(v); err != nil {
			return &ValidationError{Name: "sender_id", err: fmt.Errorf(`ent: validator failed for field "Notification.sender_id": %w`, err)}
		}
	}
	if _u.mutation.SenderCleared() && len(_u.mutation.SenderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Notification.sender"`)
	}
	return nil
}

func (_u *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notification.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(notification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SectorID(); ok {
		_spec.SetField(notification.FieldSectorID, field.TypeString, value)
	}
	if _u.mutation.SectorIDCleared() {
		_spec.ClearField(notification.FieldSectorID, field.TypeString)
	}
	if value, ok := _u.mutation.SubsectorID(); ok {
		_spec.SetField(notification.FieldSubsectorID, field.TypeString, value)
	}
	if _u.mutation.SubsectorIDCleared() {
		_spec.ClearField(notification.FieldSubsectorID, field.TypeString)
	}
	if value, ok := _u.mutation.ActionURL(); ok {
		_spec.SetField(notification.FieldActionURL, field.TypeString, value)
	}
	if _u.mutation.ActionURLCleared() {
		_spec.ClearField(notification.FieldActionURL, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(notification.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(notification.FieldExpiresAt, field.TypeTime)
	}
	if _u.mutation.SenderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notification.SenderTable,
			Columns: []string{notification.SenderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SenderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notification.SenderTable,
			Columns: []string{notification.SenderColumn},
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
	if _u.mutation.RecipientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notification.RecipientsTable,
			Columns: []string{notification.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecipientsIDs(); len(nodes) > 0 && !_u.mutation.RecipientsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notification.RecipientsTable,
			Columns: []string{notification.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notification.RecipientsTable,
			Columns: []string{notification.RecipientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Notification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
