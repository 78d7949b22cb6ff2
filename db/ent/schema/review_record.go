package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReviewRecord rows are append-only; there is no update path in the schema.
type ReviewRecord struct{ ent.Schema }

func (ReviewRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "review_records"},
	}
}

func (ReviewRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("extraction_id", uuid.UUID{}).Immutable(),
		field.String("reviewer_id").NotEmpty().Immutable(),
		field.JSON("original_fields", json.RawMessage{}).Optional().Immutable(),
		field.JSON("corrected_fields", json.RawMessage{}).Immutable(),
		field.String("notes").Optional().Nillable().Immutable(),
		field.Time("reviewed_at").Default(time.Now).Immutable(),
	}
}

func (ReviewRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", ExtractionResult.Type).
			Ref("reviews").
			Field("extraction_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (ReviewRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("extraction_id", "reviewed_at"),
	}
}
