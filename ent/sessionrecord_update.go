// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/predicate"
	"github.com/prepdeck/prepdeck/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v string) *SessionRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SessionRecordUpdate) SetRole(v string) *SessionRecordUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableRole(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *SessionRecordUpdate) SetCompany(v string) *SessionRecordUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCompany(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *SessionRecordUpdate) ClearCompany() *SessionRecordUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetInterviewType sets the "interview_type" field.
func (_u *SessionRecordUpdate) SetInterviewType(v string) *SessionRecordUpdate {
	_u.mutation.SetInterviewType(v)
	return _u
}

// SetNillableInterviewType sets the "interview_type" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableInterviewType(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetInterviewType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionRecordUpdate) SetDifficulty(v string) *SessionRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableDifficulty(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionRecordUpdate) SetTotalQuestions(v int) *SessionRecordUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableTotalQuestions(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionRecordUpdate) AddTotalQuestions(v int) *SessionRecordUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SessionRecordUpdate) SetAnswered(v int) *SessionRecordUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableAnswered(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *SessionRecordUpdate) AddAnswered(v int) *SessionRecordUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SessionRecordUpdate) SetSkipped(v int) *SessionRecordUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSkipped(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *SessionRecordUpdate) AddSkipped(v int) *SessionRecordUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *SessionRecordUpdate) SetCompletionRate(v float64) *SessionRecordUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCompletionRate(v *float64) *SessionRecordUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *SessionRecordUpdate) AddCompletionRate(v float64) *SessionRecordUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SessionRecordUpdate) SetOverallScore(v float64) *SessionRecordUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableOverallScore(v *float64) *SessionRecordUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SessionRecordUpdate) AddOverallScore(v float64) *SessionRecordUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *SessionRecordUpdate) ClearOverallScore() *SessionRecordUpdate {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionRecordUpdate) SetGrade(v string) *SessionRecordUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableGrade(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *SessionRecordUpdate) ClearGrade() *SessionRecordUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionRecordUpdate) SetStartedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStartedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionRecordUpdate) SetCompletedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCompletedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(sessionrecord.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(sessionrecord.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(sessionrecord.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.InterviewType(); ok {
		_spec.SetField(sessionrecord.FieldInterviewType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(sessionrecord.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(sessionrecord.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(sessionrecord.FieldOverallScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(sessionrecord.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(sessionrecord.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SessionRecordUpdateOne) SetRole(v string) *SessionRecordUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableRole(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *SessionRecordUpdateOne) SetCompany(v string) *SessionRecordUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCompany(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *SessionRecordUpdateOne) ClearCompany() *SessionRecordUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetInterviewType sets the "interview_type" field.
func (_u *SessionRecordUpdateOne) SetInterviewType(v string) *SessionRecordUpdateOne {
	_u.mutation.SetInterviewType(v)
	return _u
}

// SetNillableInterviewType sets the "interview_type" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableInterviewType(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetInterviewType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionRecordUpdateOne) SetDifficulty(v string) *SessionRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableDifficulty(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionRecordUpdateOne) SetTotalQuestions(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableTotalQuestions(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionRecordUpdateOne) AddTotalQuestions(v int) *SessionRecordUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SessionRecordUpdateOne) SetAnswered(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableAnswered(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *SessionRecordUpdateOne) AddAnswered(v int) *SessionRecordUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SessionRecordUpdateOne) SetSkipped(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSkipped(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *SessionRecordUpdateOne) AddSkipped(v int) *SessionRecordUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *SessionRecordUpdateOne) SetCompletionRate(v float64) *SessionRecordUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCompletionRate(v *float64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *SessionRecordUpdateOne) AddCompletionRate(v float64) *SessionRecordUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SessionRecordUpdateOne) SetOverallScore(v float64) *SessionRecordUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableOverallScore(v *float64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SessionRecordUpdateOne) AddOverallScore(v float64) *SessionRecordUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *SessionRecordUpdateOne) ClearOverallScore() *SessionRecordUpdateOne {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SessionRecordUpdateOne) SetGrade(v string) *SessionRecordUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableGrade(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *SessionRecordUpdateOne) ClearGrade() *SessionRecordUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionRecordUpdateOne) SetStartedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStartedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionRecordUpdateOne) SetCompletedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(sessionrecord.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(sessionrecord.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(sessionrecord.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.InterviewType(); ok {
		_spec.SetField(sessionrecord.FieldInterviewType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(sessionrecord.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(sessionrecord.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(sessionrecord.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(sessionrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(sessionrecord.FieldOverallScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(sessionrecord.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(sessionrecord.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionrecord.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
