package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Merchant maps the per-household corpus of confirmed merchant names.
type Merchant struct{ ent.Schema }

func (Merchant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "merchants"},
	}
}

func (Merchant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("household_id", uuid.UUID{}),
		field.String("name").NotEmpty().MaxLen(50),
		field.Time("created_at").Default(time.Now),
	}
}

func (Merchant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("household", Household.Type).
			Ref("merchants").
			Field("household_id").
			Required().
			Unique(),
	}
}

func (Merchant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "name").Unique(),
	}
}
