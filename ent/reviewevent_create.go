// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisio/revisio/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReviewEventCreate) SetSequence(v int64) *ReviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewEventCreate) SetTimestamp(v time.Time) *ReviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableTimestamp(v *time.Time) *ReviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *ReviewEventCreate) SetPlanID(v string) *ReviewEventCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *ReviewEventCreate) SetStudentID(v string) *ReviewEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ReviewEventCreate) SetTopicID(v string) *ReviewEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetDayIndex sets the "day_index" field.
func (_c *ReviewEventCreate) SetDayIndex(v int) *ReviewEventCreate {
	_c.mutation.SetDayIndex(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ReviewEventCreate) SetOutcome(v string) *ReviewEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetPerformancePct sets the "performance_pct" field.
func (_c *ReviewEventCreate) SetPerformancePct(v float64) *ReviewEventCreate {
	_c.mutation.SetPerformancePct(v)
	return _c
}

// SetNillablePerformancePct sets the "performance_pct" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillablePerformancePct(v *float64) *ReviewEventCreate {
	if v != nil {
		_c.SetPerformancePct(*v)
	}
	return _c
}

// SetQuality sets the "quality" field.
func (_c *ReviewEventCreate) SetQuality(v int) *ReviewEventCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableQuality(v *int) *ReviewEventCreate {
	if v != nil {
		_c.SetQuality(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewEventCreate) SetIntervalDays(v int) *ReviewEventCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableIntervalDays(v *int) *ReviewEventCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEasiness sets the "easiness" field.
func (_c *ReviewEventCreate) SetEasiness(v float64) *ReviewEventCreate {
	_c.mutation.SetEasiness(v)
	return _c
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableEasiness(v *float64) *ReviewEventCreate {
	if v != nil {
		_c.SetEasiness(*v)
	}
	return _c
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_c *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return _c.mutation
}

// Save creates the ReviewEvent in the database.
func (_c *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PerformancePct(); !ok {
		v := reviewevent.DefaultPerformancePct
		_c.mutation.SetPerformancePct(v)
	}
	if _, ok := _c.mutation.Quality(); !ok {
		v := reviewevent.DefaultQuality
		_c.mutation.SetQuality(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewevent.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Easiness(); !ok {
		v := reviewevent.DefaultEasiness
		_c.mutation.SetEasiness(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "ReviewEvent.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := reviewevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "ReviewEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := reviewevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ReviewEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := reviewevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DayIndex(); !ok {
		return &ValidationError{Name: "day_index", err: errors.New(`ent: missing required field "ReviewEvent.day_index"`)}
	}
	if v, ok := _c.mutation.DayIndex(); ok {
		if err := reviewevent.DayIndexValidator(v); err != nil {
			return &ValidationError{Name: "day_index", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.day_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ReviewEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := reviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PerformancePct(); !ok {
		return &ValidationError{Name: "performance_pct", err: errors.New(`ent: missing required field "ReviewEvent.performance_pct"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "ReviewEvent.quality"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewEvent.interval_days"`)}
	}
	if _, ok := _c.mutation.Easiness(); !ok {
		return &ValidationError{Name: "easiness", err: errors.New(`ent: missing required field "ReviewEvent.easiness"`)}
	}
	return nil
}

func (_c *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
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

func (_c *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(reviewevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(reviewevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(reviewevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.DayIndex(); ok {
		_spec.SetField(reviewevent.FieldDayIndex, field.TypeInt, value)
		_node.DayIndex = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(reviewevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.PerformancePct(); ok {
		_spec.SetField(reviewevent.FieldPerformancePct, field.TypeFloat64, value)
		_node.PerformancePct = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Easiness(); ok {
		_spec.SetField(reviewevent.FieldEasiness, field.TypeFloat64, value)
		_node.Easiness = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (_c *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
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
func (_c *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
