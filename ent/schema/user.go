package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Portal accounts go through a sign-up/approval workflow: a registered user
// stays invisible to login until an admin flips approved.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			Optional().
			MaxLen(255),
		field.String("display_name").
			Optional(),
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Enum("role").
			Values("ADMIN", "SECTOR_ADMIN", "SUBSECTOR_ADMIN", "USER").
			Default("USER"),
		field.String("sector_id").
			Optional().
			Comment("Sector the user belongs to / administers"),
		field.String("subsector_id").
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Bool("approved").
			Default(false).
			Comment("Set by an admin after reviewing the sign-up request"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sector", Sector.Type).
			Ref("users").
			Field("sector_id").
			Unique(),
		edge.From("subsector", Subsector.Type).
			Ref("users").
			Field("subsector_id").
			Unique(),
		edge.To("deliveries", Recipient.Type),
		edge.To("sent_notifications", Notification.Type),
		edge.To("created_groups", Group.Type),
		edge.To("group_memberships", GroupMember.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("sector_id"),
	}
}
