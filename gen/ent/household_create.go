// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/homecrew/homecrew-backend/gen/ent/expense"
	"github.com/homecrew/homecrew-backend/gen/ent/household"
	"github.com/homecrew/homecrew-backend/gen/ent/merchant"
)

// HouseholdCreate is the builder for creating a Household entity.
type HouseholdCreate struct {
	config
	mutation *HouseholdMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *HouseholdCreate) SetName(v string) *HouseholdCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDefaultCurrency sets the "default_currency" field.
func (_c *HouseholdCreate) SetDefaultCurrency(v string) *HouseholdCreate {
	_c.mutation.SetDefaultCurrency(v)
	return _c
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableDefaultCurrency(v *string) *HouseholdCreate {
	if v != nil {
		_c.SetDefaultCurrency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HouseholdCreate) SetCreatedAt(v time.Time) *HouseholdCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableCreatedAt(v *time.Time) *HouseholdCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HouseholdCreate) SetUpdatedAt(v time.Time) *HouseholdCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableUpdatedAt(v *time.Time) *HouseholdCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HouseholdCreate) SetID(v uuid.UUID) *HouseholdCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HouseholdCreate) SetNillableID(v *uuid.UUID) *HouseholdCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddExpenseIDs adds the "expenses" edge to the Expense entity by IDs.
func (_c *HouseholdCreate) AddExpenseIDs(ids ...uuid.UUID) *HouseholdCreate {
	_c.mutation.AddExpenseIDs(ids...)
	return _c
}

// AddExpenses adds the "expenses" edges to the Expense entity.
func (_c *HouseholdCreate) AddExpenses(v ...*Expense) *HouseholdCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExpenseIDs(ids...)
}

// AddMerchantIDs adds the "merchants" edge to the Merchant entity by IDs.
func (_c *HouseholdCreate) AddMerchantIDs(ids ...uuid.UUID) *HouseholdCreate {
	_c.mutation.AddMerchantIDs(ids...)
	return _c
}

// AddMerchants adds the "merchants" edges to the Merchant entity.
func (_c *HouseholdCreate) AddMerchants(v ...*Merchant) *HouseholdCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMerchantIDs(ids...)
}

// Mutation returns the HouseholdMutation object of the builder.
func (_c *HouseholdCreate) Mutation() *HouseholdMutation {
	return _c.mutation
}

// Save creates the Household in the database.
func (_c *HouseholdCreate) Save(ctx context.Context) (*Household, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HouseholdCreate) SaveX(ctx context.Context) *Household {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HouseholdCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HouseholdCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HouseholdCreate) defaults() {
	if _, ok := _c.mutation.DefaultCurrency(); !ok {
		v := household.DefaultDefaultCurrency
		_c.mutation.SetDefaultCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := household.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := household.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := household.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HouseholdCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Household.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := household.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Household.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultCurrency(); !ok {
		return &ValidationError{Name: "default_currency", err: errors.New(`ent: missing required field "Household.default_currency"`)}
	}
	if v, ok := _c.mutation.DefaultCurrency(); ok {
		if err := household.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Household.default_currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Household.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Household.updated_at"`)}
	}
	return nil
}

func (_c *HouseholdCreate) sqlSave(ctx context.Context) (*Household, error) {
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

func (_c *HouseholdCreate) createSpec() (*Household, *sqlgraph.CreateSpec) {
	var (
		_node = &Household{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(household.Table, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(household.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DefaultCurrency(); ok {
		_spec.SetField(household.FieldDefaultCurrency, field.TypeString, value)
		_node.DefaultCurrency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(household.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.ExpensesTable,
			Columns: []string{household.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MerchantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   household.MerchantsTable,
			Columns: []string{household.MerchantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(merchant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HouseholdCreateBulk is the builder for creating many Household entities in bulk.
type HouseholdCreateBulk struct {
	config
	err      error
	builders []*HouseholdCreate
}

// Save creates the Household entities in the database.
func (_c *HouseholdCreateBulk) Save(ctx context.Context) ([]*Household, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Household, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HouseholdMutation)
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
func (_c *HouseholdCreateBulk) SaveX(ctx context.Context) []*Household {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HouseholdCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HouseholdCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
