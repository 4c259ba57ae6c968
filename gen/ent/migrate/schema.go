// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExpensesColumns holds the columns for the "expenses" table.
	ExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "merchant_name", Type: field.TypeString, Size: 50},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "category", Type: field.TypeString, Default: "Miscellaneous"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// ExpensesTable holds the schema information for the "expenses" table.
	ExpensesTable = &schema.Table{
		Name:       "expenses",
		Columns:    ExpensesColumns,
		PrimaryKey: []*schema.Column{ExpensesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "expenses_households_expenses",
				Columns:    []*schema.Column{ExpensesColumns[12]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// HouseholdsColumns holds the columns for the "households" table.
	HouseholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "default_currency", Type: field.TypeString, Size: 3, Default: "USD", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HouseholdsTable holds the schema information for the "households" table.
	HouseholdsTable = &schema.Table{
		Name:       "households",
		Columns:    HouseholdsColumns,
		PrimaryKey: []*schema.Column{HouseholdsColumns[0]},
	}
	// MerchantsColumns holds the columns for the "merchants" table.
	MerchantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 50},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// MerchantsTable holds the schema information for the "merchants" table.
	MerchantsTable = &schema.Table{
		Name:       "merchants",
		Columns:    MerchantsColumns,
		PrimaryKey: []*schema.Column{MerchantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "merchants_households_merchants",
				Columns:    []*schema.Column{MerchantsColumns[3]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "merchant_household_id_name",
				Unique:  true,
				Columns: []*schema.Column{MerchantsColumns[3], MerchantsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExpensesTable,
		HouseholdsTable,
		MerchantsTable,
	}
)

func init() {
	ExpensesTable.ForeignKeys[0].RefTable = HouseholdsTable
	ExpensesTable.Annotation = &entsql.Annotation{
		Table: "expenses",
	}
	HouseholdsTable.Annotation = &entsql.Annotation{
		Table: "households",
	}
	MerchantsTable.ForeignKeys[0].RefTable = HouseholdsTable
	MerchantsTable.Annotation = &entsql.Annotation{
		Table: "merchants",
	}
}
