// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agrodesk/docextract/gen/ent/document"
	"github.com/agrodesk/docextract/gen/ent/extractionresult"
	"github.com/agrodesk/docextract/gen/ent/predicate"
	"github.com/agrodesk/docextract/gen/ent/reviewrecord"
	"github.com/google/uuid"
)

// ExtractionResultUpdate is the builder for updating ExtractionResult entities.
type ExtractionResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdate) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdate) SetDocumentID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionResultUpdate) SetDocumentType(v string) *ExtractionResultUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableDocumentType(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionResultUpdate) SetStatus(v string) *ExtractionResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableStatus(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ExtractionResultUpdate) SetTier(v string) *ExtractionResultUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableTier(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *ExtractionResultUpdate) ClearTier() *ExtractionResultUpdate {
	_u.mutation.ClearTier()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ExtractionResultUpdate) SetLanguage(v string) *ExtractionResultUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableLanguage(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *ExtractionResultUpdate) ClearLanguage() *ExtractionResultUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ExtractionResultUpdate) SetOverallConfidence(v float32) *ExtractionResultUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableOverallConfidence(v *float32) *ExtractionResultUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ExtractionResultUpdate) AddOverallConfidence(v float32) *ExtractionResultUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionResultUpdate) SetFields(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionResultUpdate) AppendFields(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionResultUpdate) ClearFields() *ExtractionResultUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExtractionResultUpdate) SetMetadata(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *ExtractionResultUpdate) AppendMetadata(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExtractionResultUpdate) ClearMetadata() *ExtractionResultUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionResultUpdate) SetRetryCount(v int) *ExtractionResultUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableRetryCount(v *int) *ExtractionResultUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionResultUpdate) AddRetryCount(v int) *ExtractionResultUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractionResultUpdate) SetNeedsReview(v bool) *ExtractionResultUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableNeedsReview(v *bool) *ExtractionResultUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionResultUpdate) SetErrorMessage(v string) *ExtractionResultUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableErrorMessage(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionResultUpdate) ClearErrorMessage() *ExtractionResultUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *ExtractionResultUpdate) SetRawResponse(v string) *ExtractionResultUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableRawResponse(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *ExtractionResultUpdate) ClearRawResponse() *ExtractionResultUpdate {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *ExtractionResultUpdate) SetSourceText(v string) *ExtractionResultUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableSourceText(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *ExtractionResultUpdate) ClearSourceText() *ExtractionResultUpdate {
	_u.mutation.ClearSourceText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionResultUpdate) SetCreatedAt(v time.Time) *ExtractionResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionResultUpdate) SetFinishedAt(v time.Time) *ExtractionResultUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionResultUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionResultUpdate) ClearFinishedAt() *ExtractionResultUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) SetDocument(v *Document) *ExtractionResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddReviewIDs adds the "reviews" edge to the ReviewRecord entity by IDs.
func (_u *ExtractionResultUpdate) AddReviewIDs(ids ...uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the ReviewRecord entity.
func (_u *ExtractionResultUpdate) AddReviews(v ...*ReviewRecord) *ExtractionResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdate) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) ClearDocument() *ExtractionResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearReviews clears all "reviews" edges to the ReviewRecord entity.
func (_u *ExtractionResultUpdate) ClearReviews() *ExtractionResultUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to ReviewRecord entities by IDs.
func (_u *ExtractionResultUpdate) RemoveReviewIDs(ids ...uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to ReviewRecord entities.
func (_u *ExtractionResultUpdate) RemoveReviews(v ...*ReviewRecord) *ExtractionResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extractionresult.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	return nil
}

func (_u *ExtractionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extractionresult.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(extractionresult.FieldTier, field.TypeString, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(extractionresult.FieldTier, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(extractionresult.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(extractionresult.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(extractionresult.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(extractionresult.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractionresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractionresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractionresult.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(extractionresult.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(extractionresult.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(extractionresult.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(extractionresult.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionresult.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionresult.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.ReviewsTable,
			Columns: []string{extractionresult.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.ReviewsTable,
			Columns: []string{extractionresult.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.ReviewsTable,
			Columns: []string{extractionresult.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionResultUpdateOne is the builder for updating a single ExtractionResult entity.
type ExtractionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionResultUpdateOne) SetDocumentType(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableDocumentType(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionResultUpdateOne) SetStatus(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableStatus(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ExtractionResultUpdateOne) SetTier(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableTier(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// ClearTier clears the value of the "tier" field.
func (_u *ExtractionResultUpdateOne) ClearTier() *ExtractionResultUpdateOne {
	_u.mutation.ClearTier()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ExtractionResultUpdateOne) SetLanguage(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableLanguage(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *ExtractionResultUpdateOne) ClearLanguage() *ExtractionResultUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ExtractionResultUpdateOne) SetOverallConfidence(v float32) *ExtractionResultUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableOverallConfidence(v *float32) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ExtractionResultUpdateOne) AddOverallConfidence(v float32) *ExtractionResultUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionResultUpdateOne) SetFields(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionResultUpdateOne) AppendFields(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionResultUpdateOne) ClearFields() *ExtractionResultUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExtractionResultUpdateOne) SetMetadata(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// AppendMetadata appends value to the "metadata" field.
func (_u *ExtractionResultUpdateOne) AppendMetadata(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExtractionResultUpdateOne) ClearMetadata() *ExtractionResultUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExtractionResultUpdateOne) SetRetryCount(v int) *ExtractionResultUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableRetryCount(v *int) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExtractionResultUpdateOne) AddRetryCount(v int) *ExtractionResultUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExtractionResultUpdateOne) SetNeedsReview(v bool) *ExtractionResultUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableNeedsReview(v *bool) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionResultUpdateOne) SetErrorMessage(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableErrorMessage(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionResultUpdateOne) ClearErrorMessage() *ExtractionResultUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *ExtractionResultUpdateOne) SetRawResponse(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableRawResponse(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *ExtractionResultUpdateOne) ClearRawResponse() *ExtractionResultUpdateOne {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *ExtractionResultUpdateOne) SetSourceText(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableSourceText(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *ExtractionResultUpdateOne) ClearSourceText() *ExtractionResultUpdateOne {
	_u.mutation.ClearSourceText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionResultUpdateOne) SetCreatedAt(v time.Time) *ExtractionResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionResultUpdateOne) SetFinishedAt(v time.Time) *ExtractionResultUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionResultUpdateOne) ClearFinishedAt() *ExtractionResultUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) SetDocument(v *Document) *ExtractionResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddReviewIDs adds the "reviews" edge to the ReviewRecord entity by IDs.
func (_u *ExtractionResultUpdateOne) AddReviewIDs(ids ...uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the ReviewRecord entity.
func (_u *ExtractionResultUpdateOne) AddReviews(v ...*ReviewRecord) *ExtractionResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdateOne) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) ClearDocument() *ExtractionResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearReviews clears all "reviews" edges to the ReviewRecord entity.
func (_u *ExtractionResultUpdateOne) ClearReviews() *ExtractionResultUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to ReviewRecord entities by IDs.
func (_u *ExtractionResultUpdateOne) RemoveReviewIDs(ids ...uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to ReviewRecord entities.
func (_u *ExtractionResultUpdateOne) RemoveReviews(v ...*ReviewRecord) *ExtractionResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdateOne) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionResultUpdateOne) Select(field string, fields ...string) *ExtractionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionResult entity.
func (_u *ExtractionResultUpdateOne) Save(ctx context.Context) (*ExtractionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) SaveX(ctx context.Context) *ExtractionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extractionresult.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	return nil
}

func (_u *ExtractionResultUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionresult.FieldID)
		for _, f := range fields {
			if !extractionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extractionresult.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(extractionresult.FieldTier, field.TypeString, value)
	}
	if _u.mutation.TierCleared() {
		_spec.ClearField(extractionresult.FieldTier, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(extractionresult.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(extractionresult.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(extractionresult.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(extractionresult.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldMetadata, value)
		})
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(extractionresult.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(extractionresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(extractionresult.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(extractionresult.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionresult.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionresult.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(extractionresult.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(extractionresult.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(extractionresult.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(extractionresult.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionresult.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionresult.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.ReviewsTable,
			Columns: []string{extractionresult.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.ReviewsTable,
			Columns: []string{extractionresult.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.ReviewsTable,
			Columns: []string{extractionresult.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
