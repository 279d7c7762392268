package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Industry maps to the existing public.industries table.
type Industry struct{ ent.Schema }

func (Industry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "industries"},
	}
}

func (Industry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Industry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("items", Item.Type).Ref("industries"),
	}
}
