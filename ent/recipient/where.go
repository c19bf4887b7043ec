// Code generated by ent, DO NOT EDIT.

package recipient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"intrahub.io/portal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCreatedAt, v))
}

// NotificationID applies equality check predicate on the "notification_id" field. It's identical to NotificationIDEQ.
func NotificationID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldNotificationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldUserID, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldReadAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldCreatedAt, v))
}

// NotificationIDEQ applies the EQ predicate on the "notification_id" field.
func NotificationIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldNotificationID, v))
}

// NotificationIDNEQ applies the NEQ predicate on the "notification_id" field.
func NotificationIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldNotificationID, v))
}

// NotificationIDIn applies the In predicate on the "notification_id" field.
func NotificationIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldNotificationID, vs...))
}

// NotificationIDNotIn applies the NotIn predicate on the "notification_id" field.
func NotificationIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldNotificationID, vs...))
}

// NotificationIDGT applies the GT predicate on the "notification_id" field.
func NotificationIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldNotificationID, v))
}

// NotificationIDGTE applies the GTE predicate on the "notification_id" field.
func NotificationIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldNotificationID, v))
}

// NotificationIDLT applies the LT predicate on the "notification_id" field.
func NotificationIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldNotificationID, v))
}

// NotificationIDLTE applies the LTE predicate on the "notification_id" field.
func NotificationIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldNotificationID, v))
}

// NotificationIDContains applies the Contains predicate on the "notification_id" field.
func NotificationIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldNotificationID, v))
}

// NotificationIDHasPrefix applies the HasPrefix predicate on the "notification_id" field.
func NotificationIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldNotificationID, v))
}

// NotificationIDHasSuffix applies the HasSuffix predicate on the "notification_id" field.
func NotificationIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldNotificationID, v))
}

// NotificationIDEqualFold applies the EqualFold predicate on the "notification_id" field.
func NotificationIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldNotificationID, v))
}

// NotificationIDContainsFold applies the ContainsFold predicate on the "notification_id" field.
func NotificationIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldNotificationID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldUserID, v))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldNotNull(FieldReadAt))
}

// HasNotification applies the HasEdge predicate on the "notification" edge.
func HasNotification() predicate.Recipient {
	return predicate.Recipient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NotificationTable, NotificationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotificationWith applies the HasEdge predicate on the "notification" edge with a given conditions (other predicates).
func HasNotificationWith(preds ...predicate.Notification) predicate.Recipient {
	return predicate.Recipient(func(s *sql.Selector) {
		step := newNotificationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Recipient {
	return predicate.Recipient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Recipient {
	return predicate.Recipient(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recipient) predicate.Recipient {
	return predicate.Recipient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recipient) predicate.Recipient {
	return predicate.Recipient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recipient) predicate.Recipient {
	return predicate.Recipient(sql.NotPredicates(p))
}
