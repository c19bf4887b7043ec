// Code generated by ent, DO NOT EDIT.

package subsector

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"intrahub.io/portal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldDescription, v))
}

// SectorID applies equality check predicate on the "sector_id" field. It's identical to SectorIDEQ.
func SectorID(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldSectorID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subsector {
	return predicate.Subsector(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Subsector {
	return predicate.Subsector(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Subsector {
	return predicate.Subsector(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContainsFold(FieldDescription, v))
}

// SectorIDEQ applies the EQ predicate on the "sector_id" field.
func SectorIDEQ(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEQ(FieldSectorID, v))
}

// SectorIDNEQ applies the NEQ predicate on the "sector_id" field.
func SectorIDNEQ(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNEQ(FieldSectorID, v))
}

// SectorIDIn applies the In predicate on the "sector_id" field.
func SectorIDIn(vs ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldIn(FieldSectorID, vs...))
}

// SectorIDNotIn applies the NotIn predicate on the "sector_id" field.
func SectorIDNotIn(vs ...string) predicate.Subsector {
	return predicate.Subsector(sql.FieldNotIn(FieldSectorID, vs...))
}

// SectorIDGT applies the GT predicate on the "sector_id" field.
func SectorIDGT(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGT(FieldSectorID, v))
}

// SectorIDGTE applies the GTE predicate on the "sector_id" field.
func SectorIDGTE(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldGTE(FieldSectorID, v))
}

// SectorIDLT applies the LT predicate on the "sector_id" field.
func SectorIDLT(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLT(FieldSectorID, v))
}

// SectorIDLTE applies the LTE predicate on the "sector_id" field.
func SectorIDLTE(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldLTE(FieldSectorID, v))
}

// SectorIDContains applies the Contains predicate on the "sector_id" field.
func SectorIDContains(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContains(FieldSectorID, v))
}

// SectorIDHasPrefix applies the HasPrefix predicate on the "sector_id" field.
func SectorIDHasPrefix(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldHasPrefix(FieldSectorID, v))
}

// SectorIDHasSuffix applies the HasSuffix predicate on the "sector_id" field.
func SectorIDHasSuffix(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldHasSuffix(FieldSectorID, v))
}

// SectorIDEqualFold applies the EqualFold predicate on the "sector_id" field.
func SectorIDEqualFold(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldEqualFold(FieldSectorID, v))
}

// SectorIDContainsFold applies the ContainsFold predicate on the "sector_id" field.
func SectorIDContainsFold(v string) predicate.Subsector {
	return predicate.Subsector(sql.FieldContainsFold(FieldSectorID, v))
}

// HasSector applies the HasEdge predicate on the "sector" edge.
func HasSector() predicate.Subsector {
	return predicate.Subsector(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SectorTable, SectorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSectorWith applies the HasEdge predicate on the "sector" edge with a given conditions (other predicates).
func HasSectorWith(preds ...predicate.Sector) predicate.Subsector {
	return predicate.Subsector(func(s *sql.Selector) {
		step := newSectorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUsers applies the HasEdge predicate on the "users" edge.
func HasUsers() predicate.Subsector {
	return predicate.Subsector(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsersTable, UsersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsersWith applies the HasEdge predicate on the "users" edge with a given conditions (other predicates).
func HasUsersWith(preds ...predicate.User) predicate.Subsector {
	return predicate.Subsector(func(s *sql.Selector) {
		step := newUsersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subsector) predicate.Subsector {
	return predicate.Subsector(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subsector) predicate.Subsector {
	return predicate.Subsector(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subsector) predicate.Subsector {
	return predicate.Subsector(sql.NotPredicates(p))
}
