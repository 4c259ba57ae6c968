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
	"github.com/google/uuid"
	"github.com/homecrew/homecrew-backend/gen/ent/expense"
	"github.com/homecrew/homecrew-backend/gen/ent/household"
	"github.com/homecrew/homecrew-backend/gen/ent/merchant"
	"github.com/homecrew/homecrew-backend/gen/ent/predicate"
)

// HouseholdUpdate is the builder for updating Household entities.
type HouseholdUpdate struct {
	config
	hooks    []Hook
	mutation *HouseholdMutation
}

// Where appends a list predicates to the HouseholdUpdate builder.
func (_u *HouseholdUpdate) Where(ps ...predicate.Household) *HouseholdUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *HouseholdUpdate) SetName(v string) *HouseholdUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableName(v *string) *HouseholdUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *HouseholdUpdate) SetDefaultCurrency(v string) *HouseholdUpdate {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableDefaultCurrency(v *string) *HouseholdUpdate {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HouseholdUpdate) SetCreatedAt(v time.Time) *HouseholdUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HouseholdUpdate) SetNillableCreatedAt(v *time.Time) *HouseholdUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HouseholdUpdate) SetUpdatedAt(v time.Time) *HouseholdUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExpenseIDs adds the "expenses" edge to the Expense entity by IDs.
func (_u *HouseholdUpdate) AddExpenseIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.AddExpenseIDs(ids...)
	return _u
}

// AddExpenses adds the "expenses" edges to the Expense entity.
func (_u *HouseholdUpdate) AddExpenses(v ...*Expense) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpenseIDs(ids...)
}

// AddMerchantIDs adds the "merchants" edge to the Merchant entity by IDs.
func (_u *HouseholdUpdate) AddMerchantIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.AddMerchantIDs(ids...)
	return _u
}

// AddMerchants adds the "merchants" edges to the Merchant entity.
func (_u *HouseholdUpdate) AddMerchants(v ...*Merchant) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMerchantIDs(ids...)
}

// Mutation returns the HouseholdMutation object of the builder.
func (_u *HouseholdUpdate) Mutation() *HouseholdMutation {
	return _u.mutation
}

// ClearExpenses clears all "expenses" edges to the Expense entity.
func (_u *HouseholdUpdate) ClearExpenses() *HouseholdUpdate {
	_u.mutation.ClearExpenses()
	return _u
}

// RemoveExpenseIDs removes the "expenses" edge to Expense entities by IDs.
func (_u *HouseholdUpdate) RemoveExpenseIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.RemoveExpenseIDs(ids...)
	return _u
}

// RemoveExpenses removes "expenses" edges to Expense entities.
func (_u *HouseholdUpdate) RemoveExpenses(v ...*Expense) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpenseIDs(ids...)
}

// ClearMerchants clears all "merchants" edges to the Merchant entity.
func (_u *HouseholdUpdate) ClearMerchants() *HouseholdUpdate {
	_u.mutation.ClearMerchants()
	return _u
}

// RemoveMerchantIDs removes the "merchants" edge to Merchant entities by IDs.
func (_u *HouseholdUpdate) RemoveMerchantIDs(ids ...uuid.UUID) *HouseholdUpdate {
	_u.mutation.RemoveMerchantIDs(ids...)
	return _u
}

// RemoveMerchants removes "merchants" edges to Merchant entities.
func (_u *HouseholdUpdate) RemoveMerchants(v ...*Merchant) *HouseholdUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMerchantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HouseholdUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HouseholdUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HouseholdUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := household.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := household.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Household.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := household.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Household.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *HouseholdUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(household.Table, household.Columns, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(household.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(household.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(household.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpensesIDs(); len(nodes) > 0 && !_u.mutation.ExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MerchantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMerchantsIDs(); len(nodes) > 0 && !_u.mutation.MerchantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{household.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HouseholdUpdateOne is the builder for updating a single Household entity.
type HouseholdUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HouseholdMutation
}

// SetName sets the "name" field.
func (_u *HouseholdUpdateOne) SetName(v string) *HouseholdUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableName(v *string) *HouseholdUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *HouseholdUpdateOne) SetDefaultCurrency(v string) *HouseholdUpdateOne {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableDefaultCurrency(v *string) *HouseholdUpdateOne {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HouseholdUpdateOne) SetCreatedAt(v time.Time) *HouseholdUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HouseholdUpdateOne) SetNillableCreatedAt(v *time.Time) *HouseholdUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HouseholdUpdateOne) SetUpdatedAt(v time.Time) *HouseholdUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExpenseIDs adds the "expenses" edge to the Expense entity by IDs.
func (_u *HouseholdUpdateOne) AddExpenseIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.AddExpenseIDs(ids...)
	return _u
}

// AddExpenses adds the "expenses" edges to the Expense entity.
func (_u *HouseholdUpdateOne) AddExpenses(v ...*Expense) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpenseIDs(ids...)
}

// AddMerchantIDs adds the "merchants" edge to the Merchant entity by IDs.
func (_u *HouseholdUpdateOne) AddMerchantIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.AddMerchantIDs(ids...)
	return _u
}

// AddMerchants adds the "merchants" edges to the Merchant entity.
func (_u *HouseholdUpdateOne) AddMerchants(v ...*Merchant) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMerchantIDs(ids...)
}

// Mutation returns the HouseholdMutation object of the builder.
func (_u *HouseholdUpdateOne) Mutation() *HouseholdMutation {
	return _u.mutation
}

// ClearExpenses clears all "expenses" edges to the Expense entity.
func (_u *HouseholdUpdateOne) ClearExpenses() *HouseholdUpdateOne {
	_u.mutation.ClearExpenses()
	return _u
}

// RemoveExpenseIDs removes the "expenses" edge to Expense entities by IDs.
func (_u *HouseholdUpdateOne) RemoveExpenseIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.RemoveExpenseIDs(ids...)
	return _u
}

// RemoveExpenses removes "expenses" edges to Expense entities.
func (_u *HouseholdUpdateOne) RemoveExpenses(v ...*Expense) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpenseIDs(ids...)
}

// ClearMerchants clears all "merchants" edges to the Merchant entity.
func (_u *HouseholdUpdateOne) ClearMerchants() *HouseholdUpdateOne {
	_u.mutation.ClearMerchants()
	return _u
}

// RemoveMerchantIDs removes the "merchants" edge to Merchant entities by IDs.
func (_u *HouseholdUpdateOne) RemoveMerchantIDs(ids ...uuid.UUID) *HouseholdUpdateOne {
	_u.mutation.RemoveMerchantIDs(ids...)
	return _u
}

// RemoveMerchants removes "merchants" edges to Merchant entities.
func (_u *HouseholdUpdateOne) RemoveMerchants(v ...*Merchant) *HouseholdUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMerchantIDs(ids...)
}

// Where appends a list predicates to the HouseholdUpdate builder.
func (_u *HouseholdUpdateOne) Where(ps ...predicate.Household) *HouseholdUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HouseholdUpdateOne) Select(field string, fields ...string) *HouseholdUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Household entity.
func (_u *HouseholdUpdateOne) Save(ctx context.Context) (*Household, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HouseholdUpdateOne) SaveX(ctx context.Context) *Household {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HouseholdUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HouseholdUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HouseholdUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := household.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HouseholdUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := household.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Household.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := household.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Household.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *HouseholdUpdateOne) sqlSave(ctx context.Context) (_node *Household, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(household.Table, household.Columns, sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Household.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, household.FieldID)
		for _, f := range fields {
			if !household.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != household.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(household.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(household.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(household.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(household.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpensesIDs(); len(nodes) > 0 && !_u.mutation.ExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MerchantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMerchantsIDs(); len(nodes) > 0 && !_u.mutation.MerchantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MerchantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Household{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{household.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
