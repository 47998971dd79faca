// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRecordCreate) SetSessionID(v string) *SessionRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *SessionRecordCreate) SetRole(v string) *SessionRecordCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *SessionRecordCreate) SetCompany(v string) *SessionRecordCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCompany(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetInterviewType sets the "interview_type" field.
func (_c *SessionRecordCreate) SetInterviewType(v string) *SessionRecordCreate {
	_c.mutation.SetInterviewType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SessionRecordCreate) SetDifficulty(v string) *SessionRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *SessionRecordCreate) SetTotalQuestions(v int) *SessionRecordCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *SessionRecordCreate) SetAnswered(v int) *SessionRecordCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *SessionRecordCreate) SetSkipped(v int) *SessionRecordCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableSkipped(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *SessionRecordCreate) SetCompletionRate(v float64) *SessionRecordCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *SessionRecordCreate) SetOverallScore(v float64) *SessionRecordCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableOverallScore(v *float64) *SessionRecordCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *SessionRecordCreate) SetGrade(v string) *SessionRecordCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableGrade(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionRecordCreate) SetStartedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionRecordCreate) SetCompletedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.Skipped(); !ok {
		v := sessionrecord.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "SessionRecord.role"`)}
	}
	if _, ok := _c.mutation.InterviewType(); !ok {
		return &ValidationError{Name: "interview_type", err: errors.New(`ent: missing required field "SessionRecord.interview_type"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "SessionRecord.difficulty"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "SessionRecord.total_questions"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "SessionRecord.answered"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "SessionRecord.skipped"`)}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "SessionRecord.completion_rate"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionRecord.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "SessionRecord.completed_at"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
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

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(sessionrecord.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(sessionrecord.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.InterviewType(); ok {
		_spec.SetField(sessionrecord.FieldInterviewType, field.TypeString, value)
		_node.InterviewType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(sessionrecord.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(sessionrecord.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(sessionrecord.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sessionrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
