package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
//
// Notifications are immutable after creation: the broadcast writes one
// notification row plus one Recipient row per resolved recipient, all within
// a single transaction. Read state lives on the Recipient rows, never here.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.Enum("type").
			Values("GENERAL", "INFO", "SUCCESS", "WARNING", "ERROR", "SYSTEM").
			Default("GENERAL"),
		field.Enum("priority").
			Values("LOW", "NORMAL", "HIGH", "URGENT").
			Default("NORMAL"),
		field.String("sender_id").
			NotEmpty(),
		field.String("sector_id").
			Optional().
			Comment("Optional organizational scope of the broadcast"),
		field.String("subsector_id").
			Optional(),
		field.String("action_url").
			Optional().
			Comment("Navigation target shown with the notification"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Cleanup job removes the notification after this instant"),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sender", User.Type).
			Ref("sent_notifications").
			Field("sender_id").
			Unique().
			Required(),
		// Delivery rows live and die with their notification: the retention
		// cleanup deletes notification rows and relies on this cascade.
		edge.To("recipients", Recipient.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"), // retention cleanup
		index.Fields("expires_at"), // expiry cleanup
	}
}
