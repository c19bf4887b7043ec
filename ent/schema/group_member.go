package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GroupMember holds the schema definition for the GroupMember entity: the
// many-to-many join between groups and users. Membership carries no ordering.
type GroupMember struct {
	ent.Schema
}

// Mixin of the GroupMember.
func (GroupMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the GroupMember.
func (GroupMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("group_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("added_by").
			NotEmpty(),
	}
}

// Edges of the GroupMember.
func (GroupMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", Group.Type).
			Ref("members").
			Field("group_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("group_memberships").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the GroupMember.
func (GroupMember) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate (group, user) pairs are rejected at the database level,
		// backstopping the application-side dedup at insert time.
		index.Fields("group_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}
