// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/ranger/ent/predicate"
	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdate) SetRunID(v string) *RunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableRunID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RunEventUpdate) SetEventType(v string) *RunEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableEventType(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RunEventUpdate) SetPayload(v map[string]interface{}) *RunEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *RunEventUpdate) SetRun(v *Run) *RunEventUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *RunEventUpdate) ClearRun() *RunEventUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunEvent.run"`)
	}
	return nil
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(runevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(runevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runevent.RunTable,
			Columns: []string{runevent.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runevent.RunTable,
			Columns: []string{runevent.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdateOne) SetRunID(v string) *RunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableRunID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RunEventUpdateOne) SetEventType(v string) *RunEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableEventType(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RunEventUpdateOne) SetPayload(v map[string]interface{}) *RunEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *RunEventUpdateOne) SetRun(v *Run) *RunEventUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *RunEventUpdateOne) ClearRun() *RunEventUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunEventUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunEvent.run"`)
	}
	return nil
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(runevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(runevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runevent.RunTable,
			Columns: []string{runevent.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runevent.RunTable,
			Columns: []string{runevent.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
