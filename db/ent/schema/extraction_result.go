package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/agrodesk/docextract/constants"
	"github.com/agrodesk/docextract/db/ent/schema/utils"
)

type ExtractionResult struct{ ent.Schema }

func (ExtractionResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_results"},
	}
}

func (ExtractionResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("document_type").
			Default(string(constants.Unknown)).
			Validate(utils.EnumValidator(constants.DocumentTypesAsStrings()...)),
		field.String("status").NotEmpty(),
		field.String("tier").Optional().Nillable(),
		field.String("language").Optional().Nillable(),
		field.Float32("overall_confidence").Default(0),
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.Int("retry_count").Default(0),
		field.Bool("needs_review").Default(false),
		field.String("error_message").Optional().Nillable(),
		field.String("raw_response").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ExtractionResult) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY results -> ONE document (FK: extraction_results.document_id)
		edge.From("document", Document.Type).
			Ref("extractions").
			Field("document_id").
			Required().
			Unique(),
		// ONE result -> MANY review records
		edge.To("reviews", ReviewRecord.Type),
	}
}

func (ExtractionResult) Indexes() []ent.Index {
	return []ent.Index{
		// the database enforces at most one RUNNING row per document; Claim
		// maps the constraint violation to ErrAlreadyInFlight
		index.Fields("document_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'RUNNING'")),
		index.Fields("document_id", "status"),
		index.Fields("document_id", "created_at"),
	}
}
