package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Group holds the schema definition for the Group entity: a named, static
// recipient list for notification broadcasts, optionally scoped to a
// sector/subsector.
//
// Groups are soft-scoped: listing and recipient resolution only consider
// groups with is_active = true.
type Group struct {
	ent.Schema
}

// Mixin of the Group.
func (Group) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Group.
func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255).
			Unique(),
		field.String("description").
			Optional(),
		field.String("type").
			Default("custom"),
		field.Bool("is_active").
			Default(true),
		field.String("created_by").
			NotEmpty(),
		field.String("sector_id").
			Optional(),
		field.String("subsector_id").
			Optional(),
	}
}

// Edges of the Group.
func (Group) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("created_groups").
			Field("created_by").
			Unique().
			Required(),
		edge.To("members", GroupMember.Type),
	}
}

// Indexes of the Group.
func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("sector_id"),
	}
}
