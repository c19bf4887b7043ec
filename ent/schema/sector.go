package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sector holds the schema definition for the Sector entity.
// Sectors are the top-level organizational partition used to scope
// administration, groups, and notifications.
type Sector struct {
	ent.Schema
}

// Mixin of the Sector.
func (Sector) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Sector.
func (Sector) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
	}
}

// Edges of the Sector.
func (Sector) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subsectors", Subsector.Type),
		edge.To("users", User.Type),
	}
}

// Indexes of the Sector.
func (Sector) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}

// Subsector holds the schema definition for the Subsector entity.
// A subsector always belongs to exactly one sector.
type Subsector struct {
	ent.Schema
}

// Mixin of the Subsector.
func (Subsector) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Subsector.
func (Subsector) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.String("sector_id").
			NotEmpty(),
	}
}

// Edges of the Subsector.
func (Subsector) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sector", Sector.Type).
			Ref("subsectors").
			Field("sector_id").
			Unique().
			Required(),
		edge.To("users", User.Type),
	}
}

// Indexes of the Subsector.
func (Subsector) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sector_id", "name").Unique(),
	}
}
