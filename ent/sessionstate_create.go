// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infinitelife/pulse/ent/sessionstate"
)

// SessionStateCreate is the builder for creating a SessionState entity.
type SessionStateCreate struct {
	config
	mutation *SessionStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SessionStateCreate) SetUserID(v string) *SessionStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *SessionStateCreate) SetAnswers(v map[string]interface{}) *SessionStateCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetSectionScores sets the "section_scores" field.
func (_c *SessionStateCreate) SetSectionScores(v map[string]float64) *SessionStateCreate {
	_c.mutation.SetSectionScores(v)
	return _c
}

// SetLastQuestionID sets the "last_question_id" field.
func (_c *SessionStateCreate) SetLastQuestionID(v string) *SessionStateCreate {
	_c.mutation.SetLastQuestionID(v)
	return _c
}

// SetCatalogVersion sets the "catalog_version" field.
func (_c *SessionStateCreate) SetCatalogVersion(v string) *SessionStateCreate {
	_c.mutation.SetCatalogVersion(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionStateCreate) SetSummary(v map[string]interface{}) *SessionStateCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionStateCreate) SetCreatedAt(v time.Time) *SessionStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionStateCreate) SetNillableCreatedAt(v *time.Time) *SessionStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionStateCreate) SetUpdatedAt(v time.Time) *SessionStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionStateCreate) SetNillableUpdatedAt(v *time.Time) *SessionStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionStateMutation object of the builder.
func (_c *SessionStateCreate) Mutation() *SessionStateMutation {
	return _c.mutation
}

// Save creates the SessionState in the database.
func (_c *SessionStateCreate) Save(ctx context.Context) (*SessionState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionStateCreate) SaveX(ctx context.Context) *SessionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionState.user_id"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "SessionState.answers"`)}
	}
	if _, ok := _c.mutation.SectionScores(); !ok {
		return &ValidationError{Name: "section_scores", err: errors.New(`ent: missing required field "SessionState.section_scores"`)}
	}
	if _, ok := _c.mutation.LastQuestionID(); !ok {
		return &ValidationError{Name: "last_question_id", err: errors.New(`ent: missing required field "SessionState.last_question_id"`)}
	}
	if _, ok := _c.mutation.CatalogVersion(); !ok {
		return &ValidationError{Name: "catalog_version", err: errors.New(`ent: missing required field "SessionState.catalog_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionState.updated_at"`)}
	}
	return nil
}

func (_c *SessionStateCreate) sqlSave(ctx context.Context) (*SessionState, error) {
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

func (_c *SessionStateCreate) createSpec() (*SessionState, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionstate.Table, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(sessionstate.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.SectionScores(); ok {
		_spec.SetField(sessionstate.FieldSectionScores, field.TypeJSON, value)
		_node.SectionScores = value
	}
	if value, ok := _c.mutation.LastQuestionID(); ok {
		_spec.SetField(sessionstate.FieldLastQuestionID, field.TypeString, value)
		_node.LastQuestionID = value
	}
	if value, ok := _c.mutation.CatalogVersion(); ok {
		_spec.SetField(sessionstate.FieldCatalogVersion, field.TypeString, value)
		_node.CatalogVersion = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sessionstate.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionStateCreateBulk is the builder for creating many SessionState entities in bulk.
type SessionStateCreateBulk struct {
	config
	err      error
	builders []*SessionStateCreate
}

// Save creates the SessionState entities in the database.
func (_c *SessionStateCreateBulk) Save(ctx context.Context) ([]*SessionState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionStateMutation)
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
func (_c *SessionStateCreateBulk) SaveX(ctx context.Context) []*SessionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
