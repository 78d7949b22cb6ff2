// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString, Nullable: true},
		{Name: "declared_type", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_source", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
	}
	// ExtractionResultsColumns holds the columns for the "extraction_results" table.
	ExtractionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "status", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionResultsTable holds the schema information for the "extraction_results" table.
	ExtractionResultsTable = &schema.Table{
		Name:       "extraction_results",
		Columns:    ExtractionResultsColumns,
		PrimaryKey: []*schema.Column{ExtractionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_results_documents_extractions",
				Columns:    []*schema.Column{ExtractionResultsColumns[15]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionresult_document_id",
				Unique:  true,
				Columns: []*schema.Column{ExtractionResultsColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'RUNNING'",
				},
			},
			{
				Name:    "extractionresult_document_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[15], ExtractionResultsColumns[2]},
			},
			{
				Name:    "extractionresult_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[15], ExtractionResultsColumns[13]},
			},
		},
	}
	// ReviewRecordsColumns holds the columns for the "review_records" table.
	ReviewRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "reviewer_id", Type: field.TypeString},
		{Name: "original_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "corrected_fields", Type: field.TypeJSON},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime},
		{Name: "extraction_id", Type: field.TypeUUID},
	}
	// ReviewRecordsTable holds the schema information for the "review_records" table.
	ReviewRecordsTable = &schema.Table{
		Name:       "review_records",
		Columns:    ReviewRecordsColumns,
		PrimaryKey: []*schema.Column{ReviewRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_records_extraction_results_reviews",
				Columns:    []*schema.Column{ReviewRecordsColumns[6]},
				RefColumns: []*schema.Column{ExtractionResultsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewrecord_extraction_id_reviewed_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[6], ReviewRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionResultsTable,
		ReviewRecordsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionResultsTable.Annotation = &entsql.Annotation{
		Table: "extraction_results",
	}
	ReviewRecordsTable.ForeignKeys[0].RefTable = ExtractionResultsTable
	ReviewRecordsTable.Annotation = &entsql.Annotation{
		Table: "review_records",
	}
}
