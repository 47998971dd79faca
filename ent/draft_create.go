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
	"github.com/prepdeck/prepdeck/ent/draft"
)

// DraftCreate is the builder for creating a Draft entity.
type DraftCreate struct {
	config
	mutation *DraftMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DraftCreate) SetSessionID(v string) *DraftCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *DraftCreate) SetQuestions(v json.RawMessage) *DraftCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *DraftCreate) SetMetadata(v json.RawMessage) *DraftCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *DraftCreate) SetAnswers(v json.RawMessage) *DraftCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DraftCreate) SetUpdatedAt(v time.Time) *DraftCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DraftCreate) SetNillableUpdatedAt(v *time.Time) *DraftCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DraftMutation object of the builder.
func (_c *DraftCreate) Mutation() *DraftMutation {
	return _c.mutation
}

// Save creates the Draft in the database.
func (_c *DraftCreate) Save(ctx context.Context) (*Draft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DraftCreate) SaveX(ctx context.Context) *Draft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DraftCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := draft.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DraftCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Draft.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := draft.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Draft.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "Draft.questions"`)}
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "Draft.metadata"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Draft.updated_at"`)}
	}
	return nil
}

func (_c *DraftCreate) sqlSave(ctx context.Context) (*Draft, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DraftCreate) createSpec() (*Draft, *sqlgraph.CreateSpec) {
	var (
		_node = &Draft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(draft.Table, sqlgraph.NewFieldSpec(draft.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(draft.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(draft.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(draft.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(draft.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(draft.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DraftCreateBulk is the builder for creating many Draft entities in bulk.
type DraftCreateBulk struct {
	config
	err      error
	builders []*DraftCreate
}

// Save creates the Draft entities in the database.
func (_c *DraftCreateBulk) Save(ctx context.Context) ([]*Draft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Draft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DraftMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *DraftCreateBulk) SaveX(ctx context.Context) []*Draft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
