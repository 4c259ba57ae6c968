// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Expense is the predicate function for expense builders.
type Expense func(*sql.Selector)

// Household is the predicate function for household builders.
type Household func(*sql.Selector)

// Merchant is the predicate function for merchant builders.
type Merchant func(*sql.Selector)
