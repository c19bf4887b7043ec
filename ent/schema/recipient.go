package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recipient holds the schema definition for the Recipient entity: the
// per-user delivery record of one notification (the read/unread marker).
//
// Rows are created in bulk at send time. read_at is the only mutable field
// and only the owning user may change or delete the row. Deleting a row
// removes the notification from that user's inbox without touching other
// recipients' copies.
type Recipient struct {
	ent.Schema
}

// Mixin of the Recipient.
func (Recipient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Recipient.
func (Recipient) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("notification_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.Time("read_at").
			Optional().
			Nillable().
			Comment("nil means unread; read/unread toggling keeps no history"),
	}
}

// Edges of the Recipient.
func (Recipient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("notification", Notification.Type).
			Ref("recipients").
			Field("notification_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("deliveries").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Recipient.
func (Recipient) Indexes() []ent.Index {
	return []ent.Index{
		// One delivery record per (notification, user) pair.
		index.Fields("notification_id", "user_id").Unique(),
		index.Fields("user_id", "read_at"),    // unread count / read_all
		index.Fields("user_id", "created_at"), // paginated inbox
	}
}
