package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Item maps to the existing public.smartjects table.
type Item struct{ ent.Schema }

func (Item) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "smartjects"},
	}
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("title").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("mission").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("problematics").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("scope").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Raw audience cell; the strict sync path stores a JSON list here.
		field.String("audience").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("how_it_works").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("architecture").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("innovation").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("use_case").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("image_url").Optional().Nillable(),
		field.Strings("team").Optional(),
		field.String("link").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Item) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("industries", Industry.Type),
		edge.To("audiences", Audience.Type),
		edge.To("functions", BusinessFunction.Type),
		edge.To("teams", Team.Type),
	}
}
