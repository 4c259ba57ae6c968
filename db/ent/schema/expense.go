package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/homecrew/homecrew-backend/constants"
	"github.com/homecrew/homecrew-backend/internal/entity"
)

var errUnknownCategory = errors.New("category not in the spending category set")

type Expense struct{ ent.Schema }

func (Expense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "expenses"},
	}
}

func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("household_id", uuid.UUID{}),
		field.String("merchant_name").NotEmpty().MaxLen(50),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("category").
			Default(string(constants.Miscellaneous)).
			Validate(func(s string) error {
				if constants.IsValid(s) {
					return nil
				}
				return errUnknownCategory
			}),
		field.Float("confidence").Default(0).Min(0).Max(1),
		field.Bool("needs_review").Default(false),
		field.Text("raw_text").Optional(),
		field.JSON("line_items", []entity.ExpenseItem{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Expense) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY expenses -> ONE household (FK: expenses.household_id)
		edge.From("household", Household.Type).
			Ref("expenses").
			Field("household_id").
			Required().
			Unique(),
	}
}
