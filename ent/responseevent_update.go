// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infinitelife/pulse/ent/predicate"
	"github.com/infinitelife/pulse/ent/responseevent"
)

// ResponseEventUpdate is the builder for updating ResponseEvent entities.
type ResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseEventMutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdate) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdate) SetUserID(v string) *ResponseEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableUserID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdate) SetQuestionID(v string) *ResponseEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableQuestionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ResponseEventUpdate) SetSectionID(v string) *ResponseEventUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableSectionID(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdate) SetAnswer(v string) *ResponseEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableAnswer(v *string) *ResponseEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResponseEventUpdate) SetScore(v float64) *ResponseEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResponseEventUpdate) SetNillableScore(v *float64) *ResponseEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResponseEventUpdate) AddScore(v float64) *ResponseEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdate) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(responseevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseEventUpdateOne is the builder for updating a single ResponseEvent entity.
type ResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *ResponseEventUpdateOne) SetUserID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableUserID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseEventUpdateOne) SetQuestionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableQuestionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ResponseEventUpdateOne) SetSectionID(v string) *ResponseEventUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableSectionID(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *ResponseEventUpdateOne) SetAnswer(v string) *ResponseEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableAnswer(v *string) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResponseEventUpdateOne) SetScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResponseEventUpdateOne) SetNillableScore(v *float64) *ResponseEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResponseEventUpdateOne) AddScore(v float64) *ResponseEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the ResponseEventMutation object of the builder.
func (_u *ResponseEventUpdateOne) Mutation() *ResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseEventUpdate builder.
func (_u *ResponseEventUpdateOne) Where(ps ...predicate.ResponseEvent) *ResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseEventUpdateOne) Select(field string, fields ...string) *ResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResponseEvent entity.
func (_u *ResponseEventUpdateOne) Save(ctx context.Context) (*ResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) SaveX(ctx context.Context) *ResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *ResponseEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(responseevent.Table, responseevent.Columns, sqlgraph.NewFieldSpec(responseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, responseevent.FieldID)
		for _, f := range fields {
			if !responseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != responseevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(responseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(responseevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(responseevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(responseevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(responseevent.FieldScore, field.TypeFloat64, value)
	}
	_node = &ResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{responseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
