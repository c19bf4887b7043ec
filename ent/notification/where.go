// Code generated by ent, DO NOT EDIT.

package notification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"intrahub.io/portal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldMessage, v))
}

// SenderID applies equality check predicate on the "sender_id" field. It's identical to SenderIDEQ.
func SenderID(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldSenderID, v))
}

// SectorID applies equality check predicate on the "sector_id" field. It's identical to SectorIDEQ.
func SectorID(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldSectorID, v))
}

// SubsectorID applies equality check predicate on the "subsector_id" field. It's identical to SubsectorIDEQ.
func SubsectorID(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldSubsectorID, v))
}

// ActionURL applies equality check predicate on the "action_url" field. It's identical to ActionURLEQ.
func ActionURL(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldActionURL, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldMessage, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldType, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldPriority, vs...))
}

// SenderIDEQ applies the EQ predicate on the "sender_id" field.
func SenderIDEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldSenderID, v))
}

// SenderIDNEQ applies the NEQ predicate on the "sender_id" field.
func SenderIDNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldSenderID, v))
}

// SenderIDIn applies the In predicate on the "sender_id" field.
func SenderIDIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldSenderID, vs...))
}

// SenderIDNotIn applies the NotIn predicate on the "sender_id" field.
func SenderIDNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldSenderID, vs...))
}

// SenderIDGT applies the GT predicate on the "sender_id" field.
func SenderIDGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldSenderID, v))
}

// SenderIDGTE applies the GTE predicate on the "sender_id" field.
func SenderIDGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldSenderID, v))
}

// SenderIDLT applies the LT predicate on the "sender_id" field.
func SenderIDLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldSenderID, v))
}

// SenderIDLTE applies the LTE predicate on the "sender_id" field.
func SenderIDLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldSenderID, v))
}

// SenderIDContains applies the Contains predicate on the "sender_id" field.
func SenderIDContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldSenderID, v))
}

// SenderIDHasPrefix applies the HasPrefix predicate on the "sender_id" field.
func SenderIDHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldSenderID, v))
}

// SenderIDHasSuffix applies the HasSuffix predicate on the "sender_id" field.
func SenderIDHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldSenderID, v))
}

// SenderIDEqualFold applies the EqualFold predicate on the "sender_id" field.
func SenderIDEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldSenderID, v))
}

// SenderIDContainsFold applies the ContainsFold predicate on the "sender_id" field.
func SenderIDContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldSenderID, v))
}

// SectorIDEQ applies the EQ predicate on the "sector_id" field.
func SectorIDEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldSectorID, v))
}

// SectorIDNEQ applies the NEQ predicate on the "sector_id" field.
func SectorIDNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldSectorID, v))
}

// SectorIDIn applies the In predicate on the "sector_id" field.
func SectorIDIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldSectorID, vs...))
}

// SectorIDNotIn applies the NotIn predicate on the "sector_id" field.
func SectorIDNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldSectorID, vs...))
}

// SectorIDGT applies the GT predicate on the "sector_id" field.
func SectorIDGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldSectorID, v))
}

// SectorIDGTE applies the GTE predicate on the "sector_id" field.
func SectorIDGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldSectorID, v))
}

// SectorIDLT applies the LT predicate on the "sector_id" field.
func SectorIDLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldSectorID, v))
}

// SectorIDLTE applies the LTE predicate on the "sector_id" field.
func SectorIDLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldSectorID, v))
}

// SectorIDContains applies the Contains predicate on the "sector_id" field.
func SectorIDContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldSectorID, v))
}

// SectorIDHasPrefix applies the HasPrefix predicate on the "sector_id" field.
func SectorIDHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldSectorID, v))
}

// SectorIDHasSuffix applies the HasSuffix predicate on the "sector_id" field.
func SectorIDHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldSectorID, v))
}

// SectorIDIsNil applies the IsNil predicate on the "sector_id" field.
func SectorIDIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldSectorID))
}

// SectorIDNotNil applies the NotNil predicate on the "sector_id" field.
func SectorIDNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldSectorID))
}

// SectorIDEqualFold applies the EqualFold predicate on the "sector_id" field.
func SectorIDEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldSectorID, v))
}

// SectorIDContainsFold applies the ContainsFold predicate on the "sector_id" field.
func SectorIDContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldSectorID, v))
}

// SubsectorIDEQ applies the EQ predicate on the "subsector_id" field.
func SubsectorIDEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldSubsectorID, v))
}

// SubsectorIDNEQ applies the NEQ predicate on the "subsector_id" field.
func SubsectorIDNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldSubsectorID, v))
}

// SubsectorIDIn applies the In predicate on the "subsector_id" field.
func SubsectorIDIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldSubsectorID, vs...))
}

// SubsectorIDNotIn applies the NotIn predicate on the "subsector_id" field.
func SubsectorIDNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldSubsectorID, vs...))
}

// SubsectorIDGT applies the GT predicate on the "subsector_id" field.
func SubsectorIDGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldSubsectorID, v))
}

// SubsectorIDGTE applies the GTE predicate on the "subsector_id" field.
func SubsectorIDGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldSubsectorID, v))
}

// SubsectorIDLT applies the LT predicate on the "subsector_id" field.
func SubsectorIDLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldSubsectorID, v))
}

// SubsectorIDLTE applies the LTE predicate on the "subsector_id" field.
func SubsectorIDLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldSubsectorID, v))
}

// SubsectorIDContains applies the Contains predicate on the "subsector_id" field.
func SubsectorIDContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldSubsectorID, v))
}

// SubsectorIDHasPrefix applies the HasPrefix predicate on the "subsector_id" field.
func SubsectorIDHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldSubsectorID, v))
}

// SubsectorIDHasSuffix applies the HasSuffix predicate on the "subsector_id" field.
func SubsectorIDHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldSubsectorID, v))
}

// SubsectorIDIsNil applies the IsNil predicate on the "subsector_id" field.
func SubsectorIDIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldSubsectorID))
}

// SubsectorIDNotNil applies the NotNil predicate on the "subsector_id" field.
func SubsectorIDNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldSubsectorID))
}

// SubsectorIDEqualFold applies the EqualFold predicate on the "subsector_id" field.
func SubsectorIDEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldSubsectorID, v))
}

// SubsectorIDContainsFold applies the ContainsFold predicate on the "subsector_id" field.
func SubsectorIDContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldSubsectorID, v))
}

// ActionURLEQ applies the EQ predicate on the "action_url" field.
func ActionURLEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldActionURL, v))
}

// ActionURLNEQ applies the NEQ predicate on the "action_url" field.
func ActionURLNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldActionURL, v))
}

// ActionURLIn applies the In predicate on the "action_url" field.
func ActionURLIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldActionURL, vs...))
}

// ActionURLNotIn applies the NotIn predicate on the "action_url" field.
func ActionURLNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldActionURL, vs...))
}

// ActionURLGT applies the GT predicate on the "action_url" field.
func ActionURLGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldActionURL, v))
}

// ActionURLGTE applies the GTE predicate on the "action_url" field.
func ActionURLGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldActionURL, v))
}

// ActionURLLT applies the LT predicate on the "action_url" field.
func ActionURLLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldActionURL, v))
}

// ActionURLLTE applies the LTE predicate on the "action_url" field.
func ActionURLLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldActionURL, v))
}

// ActionURLContains applies the Contains predicate on the "action_url" field.
func ActionURLContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldActionURL, v))
}

// ActionURLHasPrefix applies the HasPrefix predicate on the "action_url" field.
func ActionURLHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldActionURL, v))
}

// ActionURLHasSuffix applies the HasSuffix predicate on the "action_url" field.
func ActionURLHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldActionURL, v))
}

// ActionURLIsNil applies the IsNil predicate on the "action_url" field.
func ActionURLIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldActionURL))
}

// ActionURLNotNil applies the NotNil predicate on the "action_url" field.
func ActionURLNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldActionURL))
}

// ActionURLEqualFold applies the EqualFold predicate on the "action_url" field.
func ActionURLEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldActionURL, v))
}

// ActionURLContainsFold applies the ContainsFold predicate on the "action_url" field.
func ActionURLContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldActionURL, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldExpiresAt))
}

// HasSender applies the HasEdge predicate on the "sender" edge.
func HasSender() predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SenderTable, SenderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSenderWith applies the HasEdge predicate on the "sender" edge with a given conditions (other predicates).
func HasSenderWith(preds ...predicate.User) predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		step := newSenderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecipients applies the HasEdge predicate on the "recipients" edge.
func HasRecipients() predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecipientsTable, RecipientsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipientsWith applies the HasEdge predicate on the "recipients" edge with a given conditions (other predicates).
func HasRecipientsWith(preds ...predicate.Recipient) predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		step := newRecipientsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.NotPredicates(p))
}
