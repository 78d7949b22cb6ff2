// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrodesk/docextract/gen/ent/document"
	"github.com/agrodesk/docextract/gen/ent/extractionresult"
	"github.com/agrodesk/docextract/gen/ent/predicate"
	"github.com/agrodesk/docextract/gen/ent/reviewrecord"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument         = "Document"
	TypeExtractionResult = "ExtractionResult"
	TypeReviewRecord     = "ReviewRecord"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	declared_type      *string
	raw_text           *string
	ocr_source         *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *DocumentMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[document.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *DocumentMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[document.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, document.FieldFilename)
}

// SetDeclaredType sets the "declared_type" field.
func (m *DocumentMutation) SetDeclaredType(s string) {
	m.declared_type = &s
}

// DeclaredType returns the value of the "declared_type" field in the mutation.
func (m *DocumentMutation) DeclaredType() (r string, exists bool) {
	v := m.declared_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclaredType returns the old "declared_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeclaredType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclaredType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclaredType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclaredType: %w", err)
	}
	return oldValue.DeclaredType, nil
}

// ClearDeclaredType clears the value of the "declared_type" field.
func (m *DocumentMutation) ClearDeclaredType() {
	m.declared_type = nil
	m.clearedFields[document.FieldDeclaredType] = struct{}{}
}

// DeclaredTypeCleared returns if the "declared_type" field was cleared in this mutation.
func (m *DocumentMutation) DeclaredTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDeclaredType]
	return ok
}

// ResetDeclaredType resets all changes to the "declared_type" field.
func (m *DocumentMutation) ResetDeclaredType() {
	m.declared_type = nil
	delete(m.clearedFields, document.FieldDeclaredType)
}

// SetRawText sets the "raw_text" field.
func (m *DocumentMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *DocumentMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *DocumentMutation) ResetRawText() {
	m.raw_text = nil
}

// SetOcrSource sets the "ocr_source" field.
func (m *DocumentMutation) SetOcrSource(b bool) {
	m.ocr_source = &b
}

// OcrSource returns the value of the "ocr_source" field in the mutation.
func (m *DocumentMutation) OcrSource() (r bool, exists bool) {
	v := m.ocr_source
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrSource returns the old "ocr_source" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrSource(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrSource: %w", err)
	}
	return oldValue.OcrSource, nil
}

// ResetOcrSource resets all changes to the "ocr_source" field.
func (m *DocumentMutation) ResetOcrSource() {
	m.ocr_source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddExtractionIDs adds the "extractions" edge to the ExtractionResult entity by ids.
func (m *DocumentMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the ExtractionResult entity.
func (m *DocumentMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the ExtractionResult entity was cleared.
func (m *DocumentMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the ExtractionResult entity by IDs.
func (m *DocumentMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the ExtractionResult entity.
func (m *DocumentMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *DocumentMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *DocumentMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.declared_type != nil {
		fields = append(fields, document.FieldDeclaredType)
	}
	if m.raw_text != nil {
		fields = append(fields, document.FieldRawText)
	}
	if m.ocr_source != nil {
		fields = append(fields, document.FieldOcrSource)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldDeclaredType:
		return m.DeclaredType()
	case document.FieldRawText:
		return m.RawText()
	case document.FieldOcrSource:
		return m.OcrSource()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldDeclaredType:
		return m.OldDeclaredType(ctx)
	case document.FieldRawText:
		return m.OldRawText(ctx)
	case document.FieldOcrSource:
		return m.OldOcrSource(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldDeclaredType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclaredType(v)
		return nil
	case document.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case document.FieldOcrSource:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrSource(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldFilename) {
		fields = append(fields, document.FieldFilename)
	}
	if m.FieldCleared(document.FieldDeclaredType) {
		fields = append(fields, document.FieldDeclaredType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ClearFilename()
		return nil
	case document.FieldDeclaredType:
		m.ClearDeclaredType()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldDeclaredType:
		m.ResetDeclaredType()
		return nil
	case document.FieldRawText:
		m.ResetRawText()
		return nil
	case document.FieldOcrSource:
		m.ResetOcrSource()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedextractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextractions {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionResultMutation represents an operation that mutates the ExtractionResult nodes in the graph.
type ExtractionResultMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	document_type         *string
	status                *string
	tier                  *string
	language              *string
	overall_confidence    *float32
	addoverall_confidence *float32
	fields                *json.RawMessage
	appendfields          json.RawMessage
	metadata              *json.RawMessage
	appendmetadata        json.RawMessage
	retry_count           *int
	addretry_count        *int
	needs_review          *bool
	error_message         *string
	raw_response          *string
	source_text           *string
	created_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	document              *uuid.UUID
	cleareddocument       bool
	reviews               map[uuid.UUID]struct{}
	removedreviews        map[uuid.UUID]struct{}
	clearedreviews        bool
	done                  bool
	oldValue              func(context.Context) (*ExtractionResult, error)
	predicates            []predicate.ExtractionResult
}

var _ ent.Mutation = (*ExtractionResultMutation)(nil)

// extractionresultOption allows management of the mutation configuration using functional options.
type extractionresultOption func(*ExtractionResultMutation)

// newExtractionResultMutation creates new mutation for the ExtractionResult entity.
func newExtractionResultMutation(c config, op Op, opts ...extractionresultOption) *ExtractionResultMutation {
	m := &ExtractionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionResultID sets the ID field of the mutation.
func withExtractionResultID(id uuid.UUID) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionResult
		)
		m.oldValue = func(ctx context.Context) (*ExtractionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionResult sets the old ExtractionResult of the mutation.
func withExtractionResult(node *ExtractionResult) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		m.oldValue = func(context.Context) (*ExtractionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionResult entities.
func (m *ExtractionResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionResultMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionResultMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionResultMutation) ResetDocumentID() {
	m.document = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ExtractionResultMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ExtractionResultMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ExtractionResultMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionResultMutation) ResetStatus() {
	m.status = nil
}

// SetTier sets the "tier" field.
func (m *ExtractionResultMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ExtractionResultMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldTier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ClearTier clears the value of the "tier" field.
func (m *ExtractionResultMutation) ClearTier() {
	m.tier = nil
	m.clearedFields[extractionresult.FieldTier] = struct{}{}
}

// TierCleared returns if the "tier" field was cleared in this mutation.
func (m *ExtractionResultMutation) TierCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldTier]
	return ok
}

// ResetTier resets all changes to the "tier" field.
func (m *ExtractionResultMutation) ResetTier() {
	m.tier = nil
	delete(m.clearedFields, extractionresult.FieldTier)
}

// SetLanguage sets the "language" field.
func (m *ExtractionResultMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ExtractionResultMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *ExtractionResultMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[extractionresult.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *ExtractionResultMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *ExtractionResultMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, extractionresult.FieldLanguage)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *ExtractionResultMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *ExtractionResultMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldOverallConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *ExtractionResultMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *ExtractionResultMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *ExtractionResultMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
}

// SetFields sets the "fields" field.
func (m *ExtractionResultMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ExtractionResultMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *ExtractionResultMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *ExtractionResultMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *ExtractionResultMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[extractionresult.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *ExtractionResultMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *ExtractionResultMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, extractionresult.FieldFields)
}

// SetMetadata sets the "metadata" field.
func (m *ExtractionResultMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExtractionResultMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *ExtractionResultMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *ExtractionResultMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExtractionResultMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[extractionresult.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExtractionResultMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExtractionResultMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, extractionresult.FieldMetadata)
}

// SetRetryCount sets the "retry_count" field.
func (m *ExtractionResultMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ExtractionResultMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ExtractionResultMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ExtractionResultMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ExtractionResultMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractionResultMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractionResultMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractionResultMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionresult.FieldErrorMessage)
}

// SetRawResponse sets the "raw_response" field.
func (m *ExtractionResultMutation) SetRawResponse(s string) {
	m.raw_response = &s
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *ExtractionResultMutation) RawResponse() (r string, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldRawResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *ExtractionResultMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[extractionresult.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *ExtractionResultMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *ExtractionResultMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, extractionresult.FieldRawResponse)
}

// SetSourceText sets the "source_text" field.
func (m *ExtractionResultMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *ExtractionResultMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldSourceText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ClearSourceText clears the value of the "source_text" field.
func (m *ExtractionResultMutation) ClearSourceText() {
	m.source_text = nil
	m.clearedFields[extractionresult.FieldSourceText] = struct{}{}
}

// SourceTextCleared returns if the "source_text" field was cleared in this mutation.
func (m *ExtractionResultMutation) SourceTextCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldSourceText]
	return ok
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *ExtractionResultMutation) ResetSourceText() {
	m.source_text = nil
	delete(m.clearedFields, extractionresult.FieldSourceText)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionResultMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionResultMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionResultMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionresult.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionResultMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionResultMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionresult.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionResultMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionresult.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionResultMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionResultMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddReviewIDs adds the "reviews" edge to the ReviewRecord entity by ids.
func (m *ExtractionResultMutation) AddReviewIDs(ids ...uuid.UUID) {
	if m.reviews == nil {
		m.reviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reviews[ids[i]] = struct{}{}
	}
}

// ClearReviews clears the "reviews" edge to the ReviewRecord entity.
func (m *ExtractionResultMutation) ClearReviews() {
	m.clearedreviews = true
}

// ReviewsCleared reports if the "reviews" edge to the ReviewRecord entity was cleared.
func (m *ExtractionResultMutation) ReviewsCleared() bool {
	return m.clearedreviews
}

// RemoveReviewIDs removes the "reviews" edge to the ReviewRecord entity by IDs.
func (m *ExtractionResultMutation) RemoveReviewIDs(ids ...uuid.UUID) {
	if m.removedreviews == nil {
		m.removedreviews = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reviews, ids[i])
		m.removedreviews[ids[i]] = struct{}{}
	}
}

// RemovedReviews returns the removed IDs of the "reviews" edge to the ReviewRecord entity.
func (m *ExtractionResultMutation) RemovedReviewsIDs() (ids []uuid.UUID) {
	for id := range m.removedreviews {
		ids = append(ids, id)
	}
	return
}

// ReviewsIDs returns the "reviews" edge IDs in the mutation.
func (m *ExtractionResultMutation) ReviewsIDs() (ids []uuid.UUID) {
	for id := range m.reviews {
		ids = append(ids, id)
	}
	return
}

// ResetReviews resets all changes to the "reviews" edge.
func (m *ExtractionResultMutation) ResetReviews() {
	m.reviews = nil
	m.clearedreviews = false
	m.removedreviews = nil
}

// Where appends a list predicates to the ExtractionResultMutation builder.
func (m *ExtractionResultMutation) Where(ps ...predicate.ExtractionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionResult).
func (m *ExtractionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionResultMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.document != nil {
		fields = append(fields, extractionresult.FieldDocumentID)
	}
	if m.document_type != nil {
		fields = append(fields, extractionresult.FieldDocumentType)
	}
	if m.status != nil {
		fields = append(fields, extractionresult.FieldStatus)
	}
	if m.tier != nil {
		fields = append(fields, extractionresult.FieldTier)
	}
	if m.language != nil {
		fields = append(fields, extractionresult.FieldLanguage)
	}
	if m.overall_confidence != nil {
		fields = append(fields, extractionresult.FieldOverallConfidence)
	}
	if m.fields != nil {
		fields = append(fields, extractionresult.FieldFields)
	}
	if m.metadata != nil {
		fields = append(fields, extractionresult.FieldMetadata)
	}
	if m.retry_count != nil {
		fields = append(fields, extractionresult.FieldRetryCount)
	}
	if m.needs_review != nil {
		fields = append(fields, extractionresult.FieldNeedsReview)
	}
	if m.error_message != nil {
		fields = append(fields, extractionresult.FieldErrorMessage)
	}
	if m.raw_response != nil {
		fields = append(fields, extractionresult.FieldRawResponse)
	}
	if m.source_text != nil {
		fields = append(fields, extractionresult.FieldSourceText)
	}
	if m.created_at != nil {
		fields = append(fields, extractionresult.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionresult.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.DocumentID()
	case extractionresult.FieldDocumentType:
		return m.DocumentType()
	case extractionresult.FieldStatus:
		return m.Status()
	case extractionresult.FieldTier:
		return m.Tier()
	case extractionresult.FieldLanguage:
		return m.Language()
	case extractionresult.FieldOverallConfidence:
		return m.OverallConfidence()
	case extractionresult.FieldFields:
		return m.GetFields()
	case extractionresult.FieldMetadata:
		return m.Metadata()
	case extractionresult.FieldRetryCount:
		return m.RetryCount()
	case extractionresult.FieldNeedsReview:
		return m.NeedsReview()
	case extractionresult.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionresult.FieldRawResponse:
		return m.RawResponse()
	case extractionresult.FieldSourceText:
		return m.SourceText()
	case extractionresult.FieldCreatedAt:
		return m.CreatedAt()
	case extractionresult.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionresult.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case extractionresult.FieldStatus:
		return m.OldStatus(ctx)
	case extractionresult.FieldTier:
		return m.OldTier(ctx)
	case extractionresult.FieldLanguage:
		return m.OldLanguage(ctx)
	case extractionresult.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case extractionresult.FieldFields:
		return m.OldFields(ctx)
	case extractionresult.FieldMetadata:
		return m.OldMetadata(ctx)
	case extractionresult.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case extractionresult.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractionresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionresult.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case extractionresult.FieldSourceText:
		return m.OldSourceText(ctx)
	case extractionresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionresult.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionresult.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case extractionresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionresult.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case extractionresult.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case extractionresult.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case extractionresult.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case extractionresult.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case extractionresult.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case extractionresult.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractionresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionresult.FieldRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case extractionresult.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case extractionresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionresult.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionResultMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_confidence != nil {
		fields = append(fields, extractionresult.FieldOverallConfidence)
	}
	if m.addretry_count != nil {
		fields = append(fields, extractionresult.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	case extractionresult.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	case extractionresult.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionresult.FieldTier) {
		fields = append(fields, extractionresult.FieldTier)
	}
	if m.FieldCleared(extractionresult.FieldLanguage) {
		fields = append(fields, extractionresult.FieldLanguage)
	}
	if m.FieldCleared(extractionresult.FieldFields) {
		fields = append(fields, extractionresult.FieldFields)
	}
	if m.FieldCleared(extractionresult.FieldMetadata) {
		fields = append(fields, extractionresult.FieldMetadata)
	}
	if m.FieldCleared(extractionresult.FieldErrorMessage) {
		fields = append(fields, extractionresult.FieldErrorMessage)
	}
	if m.FieldCleared(extractionresult.FieldRawResponse) {
		fields = append(fields, extractionresult.FieldRawResponse)
	}
	if m.FieldCleared(extractionresult.FieldSourceText) {
		fields = append(fields, extractionresult.FieldSourceText)
	}
	if m.FieldCleared(extractionresult.FieldFinishedAt) {
		fields = append(fields, extractionresult.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ClearField(name string) error {
	switch name {
	case extractionresult.FieldTier:
		m.ClearTier()
		return nil
	case extractionresult.FieldLanguage:
		m.ClearLanguage()
		return nil
	case extractionresult.FieldFields:
		m.ClearFields()
		return nil
	case extractionresult.FieldMetadata:
		m.ClearMetadata()
		return nil
	case extractionresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionresult.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	case extractionresult.FieldSourceText:
		m.ClearSourceText()
		return nil
	case extractionresult.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ResetField(name string) error {
	switch name {
	case extractionresult.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionresult.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case extractionresult.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionresult.FieldTier:
		m.ResetTier()
		return nil
	case extractionresult.FieldLanguage:
		m.ResetLanguage()
		return nil
	case extractionresult.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case extractionresult.FieldFields:
		m.ResetFields()
		return nil
	case extractionresult.FieldMetadata:
		m.ResetMetadata()
		return nil
	case extractionresult.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case extractionresult.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractionresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionresult.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case extractionresult.FieldSourceText:
		m.ResetSourceText()
		return nil
	case extractionresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionresult.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	if m.reviews != nil {
		edges = append(edges, extractionresult.EdgeReviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extractionresult.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.reviews))
		for id := range m.reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreviews != nil {
		edges = append(edges, extractionresult.EdgeReviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.removedreviews))
		for id := range m.removedreviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	if m.clearedreviews {
		edges = append(edges, extractionresult.EdgeReviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionResultMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionresult.EdgeDocument:
		return m.cleareddocument
	case extractionresult.EdgeReviews:
		return m.clearedreviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionResultMutation) ClearEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionResultMutation) ResetEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ResetDocument()
		return nil
	case extractionresult.EdgeReviews:
		m.ResetReviews()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult edge %s", name)
}

// ReviewRecordMutation represents an operation that mutates the ReviewRecord nodes in the graph.
type ReviewRecordMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	reviewer_id            *string
	original_fields        *json.RawMessage
	appendoriginal_fields  json.RawMessage
	corrected_fields       *json.RawMessage
	appendcorrected_fields json.RawMessage
	notes                  *string
	reviewed_at            *time.Time
	clearedFields          map[string]struct{}
	extraction             *uuid.UUID
	clearedextraction      bool
	done                   bool
	oldValue               func(context.Context) (*ReviewRecord, error)
	predicates             []predicate.ReviewRecord
}

var _ ent.Mutation = (*ReviewRecordMutation)(nil)

// reviewrecordOption allows management of the mutation configuration using functional options.
type reviewrecordOption func(*ReviewRecordMutation)

// newReviewRecordMutation creates new mutation for the ReviewRecord entity.
func newReviewRecordMutation(c config, op Op, opts ...reviewrecordOption) *ReviewRecordMutation {
	m := &ReviewRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewRecordID sets the ID field of the mutation.
func withReviewRecordID(id uuid.UUID) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewRecord
		)
		m.oldValue = func(ctx context.Context) (*ReviewRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewRecord sets the old ReviewRecord of the mutation.
func withReviewRecord(node *ReviewRecord) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		m.oldValue = func(context.Context) (*ReviewRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReviewRecord entities.
func (m *ReviewRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExtractionID sets the "extraction_id" field.
func (m *ReviewRecordMutation) SetExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// ExtractionID returns the value of the "extraction_id" field in the mutation.
func (m *ReviewRecordMutation) ExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionID returns the old "extraction_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionID: %w", err)
	}
	return oldValue.ExtractionID, nil
}

// ResetExtractionID resets all changes to the "extraction_id" field.
func (m *ReviewRecordMutation) ResetExtractionID() {
	m.extraction = nil
}

// SetReviewerID sets the "reviewer_id" field.
func (m *ReviewRecordMutation) SetReviewerID(s string) {
	m.reviewer_id = &s
}

// ReviewerID returns the value of the "reviewer_id" field in the mutation.
func (m *ReviewRecordMutation) ReviewerID() (r string, exists bool) {
	v := m.reviewer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerID returns the old "reviewer_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldReviewerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerID: %w", err)
	}
	return oldValue.ReviewerID, nil
}

// ResetReviewerID resets all changes to the "reviewer_id" field.
func (m *ReviewRecordMutation) ResetReviewerID() {
	m.reviewer_id = nil
}

// SetOriginalFields sets the "original_fields" field.
func (m *ReviewRecordMutation) SetOriginalFields(jm json.RawMessage) {
	m.original_fields = &jm
	m.appendoriginal_fields = nil
}

// OriginalFields returns the value of the "original_fields" field in the mutation.
func (m *ReviewRecordMutation) OriginalFields() (r json.RawMessage, exists bool) {
	v := m.original_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFields returns the old "original_fields" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldOriginalFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFields: %w", err)
	}
	return oldValue.OriginalFields, nil
}

// AppendOriginalFields adds jm to the "original_fields" field.
func (m *ReviewRecordMutation) AppendOriginalFields(jm json.RawMessage) {
	m.appendoriginal_fields = append(m.appendoriginal_fields, jm...)
}

// AppendedOriginalFields returns the list of values that were appended to the "original_fields" field in this mutation.
func (m *ReviewRecordMutation) AppendedOriginalFields() (json.RawMessage, bool) {
	if len(m.appendoriginal_fields) == 0 {
		return nil, false
	}
	return m.appendoriginal_fields, true
}

// ClearOriginalFields clears the value of the "original_fields" field.
func (m *ReviewRecordMutation) ClearOriginalFields() {
	m.original_fields = nil
	m.appendoriginal_fields = nil
	m.clearedFields[reviewrecord.FieldOriginalFields] = struct{}{}
}

// OriginalFieldsCleared returns if the "original_fields" field was cleared in this mutation.
func (m *ReviewRecordMutation) OriginalFieldsCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldOriginalFields]
	return ok
}

// ResetOriginalFields resets all changes to the "original_fields" field.
func (m *ReviewRecordMutation) ResetOriginalFields() {
	m.original_fields = nil
	m.appendoriginal_fields = nil
	delete(m.clearedFields, reviewrecord.FieldOriginalFields)
}

// SetCorrectedFields sets the "corrected_fields" field.
func (m *ReviewRecordMutation) SetCorrectedFields(jm json.RawMessage) {
	m.corrected_fields = &jm
	m.appendcorrected_fields = nil
}

// CorrectedFields returns the value of the "corrected_fields" field in the mutation.
func (m *ReviewRecordMutation) CorrectedFields() (r json.RawMessage, exists bool) {
	v := m.corrected_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedFields returns the old "corrected_fields" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldCorrectedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedFields: %w", err)
	}
	return oldValue.CorrectedFields, nil
}

// AppendCorrectedFields adds jm to the "corrected_fields" field.
func (m *ReviewRecordMutation) AppendCorrectedFields(jm json.RawMessage) {
	m.appendcorrected_fields = append(m.appendcorrected_fields, jm...)
}

// AppendedCorrectedFields returns the list of values that were appended to the "corrected_fields" field in this mutation.
func (m *ReviewRecordMutation) AppendedCorrectedFields() (json.RawMessage, bool) {
	if len(m.appendcorrected_fields) == 0 {
		return nil, false
	}
	return m.appendcorrected_fields, true
}

// ResetCorrectedFields resets all changes to the "corrected_fields" field.
func (m *ReviewRecordMutation) ResetCorrectedFields() {
	m.corrected_fields = nil
	m.appendcorrected_fields = nil
}

// SetNotes sets the "notes" field.
func (m *ReviewRecordMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *ReviewRecordMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *ReviewRecordMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[reviewrecord.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *ReviewRecordMutation) NotesCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *ReviewRecordMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, reviewrecord.FieldNotes)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ReviewRecordMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ReviewRecordMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ReviewRecordMutation) ResetReviewedAt() {
	m.reviewed_at = nil
}

// ClearExtraction clears the "extraction" edge to the ExtractionResult entity.
func (m *ReviewRecordMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[reviewrecord.FieldExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the ExtractionResult entity was cleared.
func (m *ReviewRecordMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *ReviewRecordMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *ReviewRecordMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the ReviewRecordMutation builder.
func (m *ReviewRecordMutation) Where(ps ...predicate.ReviewRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewRecord).
func (m *ReviewRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.extraction != nil {
		fields = append(fields, reviewrecord.FieldExtractionID)
	}
	if m.reviewer_id != nil {
		fields = append(fields, reviewrecord.FieldReviewerID)
	}
	if m.original_fields != nil {
		fields = append(fields, reviewrecord.FieldOriginalFields)
	}
	if m.corrected_fields != nil {
		fields = append(fields, reviewrecord.FieldCorrectedFields)
	}
	if m.notes != nil {
		fields = append(fields, reviewrecord.FieldNotes)
	}
	if m.reviewed_at != nil {
		fields = append(fields, reviewrecord.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldExtractionID:
		return m.ExtractionID()
	case reviewrecord.FieldReviewerID:
		return m.ReviewerID()
	case reviewrecord.FieldOriginalFields:
		return m.OriginalFields()
	case reviewrecord.FieldCorrectedFields:
		return m.CorrectedFields()
	case reviewrecord.FieldNotes:
		return m.Notes()
	case reviewrecord.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewrecord.FieldExtractionID:
		return m.OldExtractionID(ctx)
	case reviewrecord.FieldReviewerID:
		return m.OldReviewerID(ctx)
	case reviewrecord.FieldOriginalFields:
		return m.OldOriginalFields(ctx)
	case reviewrecord.FieldCorrectedFields:
		return m.OldCorrectedFields(ctx)
	case reviewrecord.FieldNotes:
		return m.OldNotes(ctx)
	case reviewrecord.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionID(v)
		return nil
	case reviewrecord.FieldReviewerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerID(v)
		return nil
	case reviewrecord.FieldOriginalFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFields(v)
		return nil
	case reviewrecord.FieldCorrectedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedFields(v)
		return nil
	case reviewrecord.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case reviewrecord.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReviewRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewrecord.FieldOriginalFields) {
		fields = append(fields, reviewrecord.FieldOriginalFields)
	}
	if m.FieldCleared(reviewrecord.FieldNotes) {
		fields = append(fields, reviewrecord.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ClearField(name string) error {
	switch name {
	case reviewrecord.FieldOriginalFields:
		m.ClearOriginalFields()
		return nil
	case reviewrecord.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ResetField(name string) error {
	switch name {
	case reviewrecord.FieldExtractionID:
		m.ResetExtractionID()
		return nil
	case reviewrecord.FieldReviewerID:
		m.ResetReviewerID()
		return nil
	case reviewrecord.FieldOriginalFields:
		m.ResetOriginalFields()
		return nil
	case reviewrecord.FieldCorrectedFields:
		m.ResetCorrectedFields()
		return nil
	case reviewrecord.FieldNotes:
		m.ResetNotes()
		return nil
	case reviewrecord.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extraction != nil {
		edges = append(edges, reviewrecord.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reviewrecord.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextraction {
		edges = append(edges, reviewrecord.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case reviewrecord.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewRecordMutation) ClearEdge(name string) error {
	switch name {
	case reviewrecord.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewRecordMutation) ResetEdge(name string) error {
	switch name {
	case reviewrecord.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord edge %s", name)
}
