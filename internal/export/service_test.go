package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/homecrew/homecrew-backend/constants"
	"github.com/homecrew/homecrew-backend/internal/entity"
)

type fakeExpenseSource struct {
	expenses []*entity.Expense
	err      error

	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeExpenseSource) ListExpenses(_ context.Context, _ uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Expense, error) {
	f.gotFrom = fromDate
	f.gotTo = toDate
	return f.expenses, f.err
}

func TestExportExpensesXLSX(t *testing.T) {
	hid := uuid.New()
	src := &fakeExpenseSource{
		expenses: []*entity.Expense{
			{
				ID:           uuid.New(),
				HouseholdID:  hid,
				MerchantName: "FairPrice",
				TxDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Total:        5.70,
				CurrencyCode: "SGD",
				Category:     string(constants.FoodDailyNeeds),
				Confidence:   0.8,
				LineItems: []entity.ExpenseItem{
					{Name: "Milk 1L", Price: 3.20},
					{Name: "Bread", Price: 2.50},
				},
			},
			{
				ID:           uuid.New(),
				HouseholdID:  hid,
				MerchantName: "Unknown",
				TxDate:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				Total:        12.00,
				CurrencyCode: "SGD",
				Category:     string(constants.Miscellaneous),
				Confidence:   0.5,
				NeedsReview:  true,
			},
		},
	}
	svc := NewService(src, nil)

	data, err := svc.ExportExpensesXLSX(context.Background(), hid, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 expenses

	assert.Equal(t, "Transaction Date", rows[0][0])
	assert.Equal(t, "2024-01-15", rows[1][0])
	assert.Equal(t, "FairPrice", rows[1][1])
	assert.Equal(t, string(constants.FoodDailyNeeds), rows[1][2])
	assert.Equal(t, "5.70", rows[1][3])
	assert.Equal(t, "Milk 1L (3.20); Bread (2.50)", rows[1][5])
	assert.Equal(t, "no", rows[1][7])
	assert.Equal(t, "yes", rows[2][7])
}

func TestExportDateWindowDefaults(t *testing.T) {
	src := &fakeExpenseSource{}
	svc := NewService(src, nil)

	from := time.Date(2024, 3, 10, 15, 4, 5, 0, time.Local)
	_, err := svc.ExportExpensesXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	// from is normalized to midnight UTC, to defaults to today.
	require.NotNil(t, src.gotFrom)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *src.gotFrom)
	require.NotNil(t, src.gotTo)
	assert.Equal(t, time.UTC, src.gotTo.Location())
}

func TestExportPropagatesQueryError(t *testing.T) {
	src := &fakeExpenseSource{err: errors.New("db down")}
	svc := NewService(src, nil)

	_, err := svc.ExportExpensesXLSX(context.Background(), uuid.New(), nil, nil)
	require.ErrorContains(t, err, "query expenses")
}
