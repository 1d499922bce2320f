// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisio/revisio/ent/scheduledsession"
)

// ScheduledSessionCreate is the builder for creating a ScheduledSession entity.
type ScheduledSessionCreate struct {
	config
	mutation *ScheduledSessionMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *ScheduledSessionCreate) SetPlanID(v string) *ScheduledSessionCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetDayIndex sets the "day_index" field.
func (_c *ScheduledSessionCreate) SetDayIndex(v int) *ScheduledSessionCreate {
	_c.mutation.SetDayIndex(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *ScheduledSessionCreate) SetTopicID(v string) *ScheduledSessionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ScheduledSessionCreate) SetRole(v string) *ScheduledSessionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetEstimatedMins sets the "estimated_mins" field.
func (_c *ScheduledSessionCreate) SetEstimatedMins(v int) *ScheduledSessionCreate {
	_c.mutation.SetEstimatedMins(v)
	return _c
}

// Mutation returns the ScheduledSessionMutation object of the builder.
func (_c *ScheduledSessionCreate) Mutation() *ScheduledSessionMutation {
	return _c.mutation
}

// Save creates the ScheduledSession in the database.
func (_c *ScheduledSessionCreate) Save(ctx context.Context) (*ScheduledSession, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledSessionCreate) SaveX(ctx context.Context) *ScheduledSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledSessionCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "ScheduledSession.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := scheduledsession.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DayIndex(); !ok {
		return &ValidationError{Name: "day_index", err: errors.New(`ent: missing required field "ScheduledSession.day_index"`)}
	}
	if v, ok := _c.mutation.DayIndex(); ok {
		if err := scheduledsession.DayIndexValidator(v); err != nil {
			return &ValidationError{Name: "day_index", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.day_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ScheduledSession.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := scheduledsession.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ScheduledSession.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := scheduledsession.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedMins(); !ok {
		return &ValidationError{Name: "estimated_mins", err: errors.New(`ent: missing required field "ScheduledSession.estimated_mins"`)}
	}
	if v, ok := _c.mutation.EstimatedMins(); ok {
		if err := scheduledsession.EstimatedMinsValidator(v); err != nil {
			return &ValidationError{Name: "estimated_mins", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.estimated_mins": %w`, err)}
		}
	}
	return nil
}

func (_c *ScheduledSessionCreate) sqlSave(ctx context.Context) (*ScheduledSession, error) {
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

func (_c *ScheduledSessionCreate) createSpec() (*ScheduledSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledsession.Table, sqlgraph.NewFieldSpec(scheduledsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(scheduledsession.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.DayIndex(); ok {
		_spec.SetField(scheduledsession.FieldDayIndex, field.TypeInt, value)
		_node.DayIndex = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(scheduledsession.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(scheduledsession.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.EstimatedMins(); ok {
		_spec.SetField(scheduledsession.FieldEstimatedMins, field.TypeInt, value)
		_node.EstimatedMins = value
	}
	return _node, _spec
}

// ScheduledSessionCreateBulk is the builder for creating many ScheduledSession entities in bulk.
type ScheduledSessionCreateBulk struct {
	config
	err      error
	builders []*ScheduledSessionCreate
}

// Save creates the ScheduledSession entities in the database.
func (_c *ScheduledSessionCreateBulk) Save(ctx context.Context) ([]*ScheduledSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledSessionMutation)
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
func (_c *ScheduledSessionCreateBulk) SaveX(ctx context.Context) []*ScheduledSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
