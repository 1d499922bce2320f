// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisio/revisio/ent/masterystate"
)

// MasteryStateCreate is the builder for creating a MasteryState entity.
type MasteryStateCreate struct {
	config
	mutation *MasteryStateMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryStateCreate) SetStudentID(v string) *MasteryStateCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *MasteryStateCreate) SetTopicID(v string) *MasteryStateCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetEasiness sets the "easiness" field.
func (_c *MasteryStateCreate) SetEasiness(v float64) *MasteryStateCreate {
	_c.mutation.SetEasiness(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *MasteryStateCreate) SetIntervalDays(v int) *MasteryStateCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *MasteryStateCreate) SetRepetitions(v int) *MasteryStateCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetDue sets the "due" field.
func (_c *MasteryStateCreate) SetDue(v time.Time) *MasteryStateCreate {
	_c.mutation.SetDue(v)
	return _c
}

// SetLastQuality sets the "last_quality" field.
func (_c *MasteryStateCreate) SetLastQuality(v int) *MasteryStateCreate {
	_c.mutation.SetLastQuality(v)
	return _c
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableLastQuality(v *int) *MasteryStateCreate {
	if v != nil {
		_c.SetLastQuality(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *MasteryStateCreate) SetVersion(v int64) *MasteryStateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *MasteryStateCreate) SetNillableVersion(v *int64) *MasteryStateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_c *MasteryStateCreate) Mutation() *MasteryStateMutation {
	return _c.mutation
}

// Save creates the MasteryState in the database.
func (_c *MasteryStateCreate) Save(ctx context.Context) (*MasteryState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryStateCreate) SaveX(ctx context.Context) *MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryStateCreate) defaults() {
	if _, ok := _c.mutation.LastQuality(); !ok {
		v := masterystate.DefaultLastQuality
		_c.mutation.SetLastQuality(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := masterystate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryStateCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MasteryState.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := masterystate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "MasteryState.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := masterystate.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Easiness(); !ok {
		return &ValidationError{Name: "easiness", err: errors.New(`ent: missing required field "MasteryState.easiness"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "MasteryState.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := masterystate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "MasteryState.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "MasteryState.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := masterystate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "MasteryState.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Due(); !ok {
		return &ValidationError{Name: "due", err: errors.New(`ent: missing required field "MasteryState.due"`)}
	}
	if _, ok := _c.mutation.LastQuality(); !ok {
		return &ValidationError{Name: "last_quality", err: errors.New(`ent: missing required field "MasteryState.last_quality"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "MasteryState.version"`)}
	}
	return nil
}

func (_c *MasteryStateCreate) sqlSave(ctx context.Context) (*MasteryState, error) {
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

func (_c *MasteryStateCreate) createSpec() (*MasteryState, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masterystate.Table, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(masterystate.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(masterystate.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Easiness(); ok {
		_spec.SetField(masterystate.FieldEasiness, field.TypeFloat64, value)
		_node.Easiness = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(masterystate.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(masterystate.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.Due(); ok {
		_spec.SetField(masterystate.FieldDue, field.TypeTime, value)
		_node.Due = value
	}
	if value, ok := _c.mutation.LastQuality(); ok {
		_spec.SetField(masterystate.FieldLastQuality, field.TypeInt, value)
		_node.LastQuality = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(masterystate.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// MasteryStateCreateBulk is the builder for creating many MasteryState entities in bulk.
type MasteryStateCreateBulk struct {
	config
	err      error
	builders []*MasteryStateCreate
}

// Save creates the MasteryState entities in the database.
func (_c *MasteryStateCreateBulk) Save(ctx context.Context) ([]*MasteryState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryStateMutation)
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
func (_c *MasteryStateCreateBulk) SaveX(ctx context.Context) []*MasteryState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
