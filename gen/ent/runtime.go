// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agrodesk/docextract/db/ent/schema"
	"github.com/agrodesk/docextract/gen/ent/document"
	"github.com/agrodesk/docextract/gen/ent/extractionresult"
	"github.com/agrodesk/docextract/gen/ent/reviewrecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescOcrSource is the schema descriptor for ocr_source field.
	documentDescOcrSource := documentFields[4].Descriptor()
	// document.DefaultOcrSource holds the default value on creation for the ocr_source field.
	document.DefaultOcrSource = documentDescOcrSource.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[5].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionresultFields := schema.ExtractionResult{}.Fields()
	_ = extractionresultFields
	// extractionresultDescDocumentType is the schema descriptor for document_type field.
	extractionresultDescDocumentType := extractionresultFields[2].Descriptor()
	// extractionresult.DefaultDocumentType holds the default value on creation for the document_type field.
	extractionresult.DefaultDocumentType = extractionresultDescDocumentType.Default.(string)
	// extractionresult.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	extractionresult.DocumentTypeValidator = extractionresultDescDocumentType.Validators[0].(func(string) error)
	// extractionresultDescStatus is the schema descriptor for status field.
	extractionresultDescStatus := extractionresultFields[3].Descriptor()
	// extractionresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionresult.StatusValidator = extractionresultDescStatus.Validators[0].(func(string) error)
	// extractionresultDescOverallConfidence is the schema descriptor for overall_confidence field.
	extractionresultDescOverallConfidence := extractionresultFields[6].Descriptor()
	// extractionresult.DefaultOverallConfidence holds the default value on creation for the overall_confidence field.
	extractionresult.DefaultOverallConfidence = extractionresultDescOverallConfidence.Default.(float32)
	// extractionresultDescRetryCount is the schema descriptor for retry_count field.
	extractionresultDescRetryCount := extractionresultFields[9].Descriptor()
	// extractionresult.DefaultRetryCount holds the default value on creation for the retry_count field.
	extractionresult.DefaultRetryCount = extractionresultDescRetryCount.Default.(int)
	// extractionresultDescNeedsReview is the schema descriptor for needs_review field.
	extractionresultDescNeedsReview := extractionresultFields[10].Descriptor()
	// extractionresult.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractionresult.DefaultNeedsReview = extractionresultDescNeedsReview.Default.(bool)
	// extractionresultDescCreatedAt is the schema descriptor for created_at field.
	extractionresultDescCreatedAt := extractionresultFields[14].Descriptor()
	// extractionresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionresult.DefaultCreatedAt = extractionresultDescCreatedAt.Default.(func() time.Time)
	// extractionresultDescID is the schema descriptor for id field.
	extractionresultDescID := extractionresultFields[0].Descriptor()
	// extractionresult.DefaultID holds the default value on creation for the id field.
	extractionresult.DefaultID = extractionresultDescID.Default.(func() uuid.UUID)
	reviewrecordFields := schema.ReviewRecord{}.Fields()
	_ = reviewrecordFields
	// reviewrecordDescReviewerID is the schema descriptor for reviewer_id field.
	reviewrecordDescReviewerID := reviewrecordFields[2].Descriptor()
	// reviewrecord.ReviewerIDValidator is a validator for the "reviewer_id" field. It is called by the builders before save.
	reviewrecord.ReviewerIDValidator = reviewrecordDescReviewerID.Validators[0].(func(string) error)
	// reviewrecordDescReviewedAt is the schema descriptor for reviewed_at field.
	reviewrecordDescReviewedAt := reviewrecordFields[6].Descriptor()
	// reviewrecord.DefaultReviewedAt holds the default value on creation for the reviewed_at field.
	reviewrecord.DefaultReviewedAt = reviewrecordDescReviewedAt.Default.(func() time.Time)
	// reviewrecordDescID is the schema descriptor for id field.
	reviewrecordDescID := reviewrecordFields[0].Descriptor()
	// reviewrecord.DefaultID holds the default value on creation for the id field.
	reviewrecord.DefaultID = reviewrecordDescID.Default.(func() uuid.UUID)
}
