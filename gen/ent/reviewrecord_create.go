// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrodesk/docextract/gen/ent/extractionresult"
	"github.com/agrodesk/docextract/gen/ent/reviewrecord"
	"github.com/google/uuid"
)

// ReviewRecordCreate is the builder for creating a ReviewRecord entity.
type ReviewRecordCreate struct {
	config
	mutation *ReviewRecordMutation
	hooks    []Hook
}

// SetExtractionID sets the "extraction_id" field.
func (_c *ReviewRecordCreate) SetExtractionID(v uuid.UUID) *ReviewRecordCreate {
	_c.mutation.SetExtractionID(v)
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *ReviewRecordCreate) SetReviewerID(v string) *ReviewRecordCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetOriginalFields sets the "original_fields" field.
func (_c *ReviewRecordCreate) SetOriginalFields(v json.RawMessage) *ReviewRecordCreate {
	_c.mutation.SetOriginalFields(v)
	return _c
}

// SetCorrectedFields sets the "corrected_fields" field.
func (_c *ReviewRecordCreate) SetCorrectedFields(v json.RawMessage) *ReviewRecordCreate {
	_c.mutation.SetCorrectedFields(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ReviewRecordCreate) SetNotes(v string) *ReviewRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableNotes(v *string) *ReviewRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ReviewRecordCreate) SetReviewedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableReviewedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewRecordCreate) SetID(v uuid.UUID) *ReviewRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableID(v *uuid.UUID) *ReviewRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the ExtractionResult entity.
func (_c *ReviewRecordCreate) SetExtraction(v *ExtractionResult) *ReviewRecordCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_c *ReviewRecordCreate) Mutation() *ReviewRecordMutation {
	return _c.mutation
}

// Save creates the ReviewRecord in the database.
func (_c *ReviewRecordCreate) Save(ctx context.Context) (*ReviewRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewRecordCreate) SaveX(ctx context.Context) *ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewRecordCreate) defaults() {
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		v := reviewrecord.DefaultReviewedAt()
		_c.mutation.SetReviewedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reviewrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewRecordCreate) check() error {
	if _, ok := _c.mutation.ExtractionID(); !ok {
		return &ValidationError{Name: "extraction_id", err: errors.New(`ent: missing required field "ReviewRecord.extraction_id"`)}
	}
	if _, ok := _c.mutation.ReviewerID(); !ok {
		return &ValidationError{Name: "reviewer_id", err: errors.New(`ent: missing required field "ReviewRecord.reviewer_id"`)}
	}
	if v, ok := _c.mutation.ReviewerID(); ok {
		if err := reviewrecord.ReviewerIDValidator(v); err != nil {
			return &ValidationError{Name: "reviewer_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.reviewer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectedFields(); !ok {
		return &ValidationError{Name: "corrected_fields", err: errors.New(`ent: missing required field "ReviewRecord.corrected_fields"`)}
	}
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		return &ValidationError{Name: "reviewed_at", err: errors.New(`ent: missing required field "ReviewRecord.reviewed_at"`)}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "ReviewRecord.extraction"`)}
	}
	return nil
}

func (_c *ReviewRecordCreate) sqlSave(ctx context.Context) (*ReviewRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewRecordCreate) createSpec() (*ReviewRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewrecord.Table, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(reviewrecord.FieldReviewerID, field.TypeString, value)
		_node.ReviewerID = value
	}
	if value, ok := _c.mutation.OriginalFields(); ok {
		_spec.SetField(reviewrecord.FieldOriginalFields, field.TypeJSON, value)
		_node.OriginalFields = value
	}
	if value, ok := _c.mutation.CorrectedFields(); ok {
		_spec.SetField(reviewrecord.FieldCorrectedFields, field.TypeJSON, value)
		_node.CorrectedFields = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(reviewrecord.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewrecord.ExtractionTable,
			Columns: []string{reviewrecord.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExtractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewRecordCreateBulk is the builder for creating many ReviewRecord entities in bulk.
type ReviewRecordCreateBulk struct {
	config
	err      error
	builders []*ReviewRecordCreate
}

// Save creates the ReviewRecord entities in the database.
func (_c *ReviewRecordCreateBulk) Save(ctx context.Context) ([]*ReviewRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) SaveX(ctx context.Context) []*ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
