package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecrew/homecrew-backend/constants"
	"github.com/homecrew/homecrew-backend/gen/ent"
	"github.com/homecrew/homecrew-backend/internal/entity"
	"github.com/homecrew/homecrew-backend/internal/repository"
	"github.com/homecrew/homecrew-backend/internal/vision"
)

type fakeHouseholds struct {
	household *ent.Household
	err       error
}

func (f *fakeHouseholds) GetByID(_ context.Context, _ uuid.UUID) (*ent.Household, error) {
	return f.household, f.err
}

func (f *fakeHouseholds) CreateHousehold(_ context.Context, _ *repository.Household) (*ent.Household, error) {
	return f.household, f.err
}

func (f *fakeHouseholds) GetOrCreateByName(_ context.Context, _, _ string) (*ent.Household, error) {
	return f.household, f.err
}

func (f *fakeHouseholds) ListHouseholds(_ context.Context) ([]*ent.Household, error) {
	return []*ent.Household{f.household}, f.err
}

func (f *fakeHouseholds) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.household != nil, f.err
}

type fakeMerchants struct {
	names []string
	err   error
}

func (f *fakeMerchants) ListNames(_ context.Context, _ uuid.UUID) ([]string, error) {
	return f.names, f.err
}

func (f *fakeMerchants) ListMerchants(_ context.Context, _ uuid.UUID) ([]*entity.Merchant, error) {
	return nil, f.err
}

func (f *fakeMerchants) Confirm(_ context.Context, householdID uuid.UUID, name string) (*entity.Merchant, error) {
	return &entity.Merchant{ID: uuid.New(), HouseholdID: householdID, Name: name}, f.err
}

type fakeExpenses struct {
	lastRequest *repository.CreateExpenseRequest
	err         error
}

func (f *fakeExpenses) CreateFromParsed(_ context.Context, req *repository.CreateExpenseRequest) (*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastRequest = req
	txDate, err := time.Parse("2006-01-02", req.Parsed.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Expense{
		ID:           uuid.New(),
		HouseholdID:  req.HouseholdID,
		MerchantName: req.Parsed.Merchant,
		TxDate:       txDate,
		Total:        req.Parsed.Total,
		CurrencyCode: req.CurrencyCode,
		Category:     string(req.Parsed.Category),
		Confidence:   req.Parsed.Confidence,
		NeedsReview:  req.NeedsReview,
		RawText:      req.Parsed.RawText,
	}, nil
}

func (f *fakeExpenses) ListExpenses(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]*entity.Expense, error) {
	return nil, f.err
}

func (f *fakeExpenses) GetByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, f.err
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(_ context.Context, _ vision.ExtractRequest) (vision.ExtractResult, error) {
	if f.err != nil {
		return vision.ExtractResult{}, f.err
	}
	return vision.ExtractResult{Text: f.text, Confidence: 0.85}, nil
}

func newTestPipeline(households *fakeHouseholds, merchants *fakeMerchants, expenses *fakeExpenses, extractor *fakeExtractor) *Pipeline {
	return NewPipeline(nil, Config{}, households, merchants, expenses, extractor)
}

func sgdHousehold() *ent.Household {
	return &ent.Household{ID: uuid.New(), Name: "Tan family", DefaultCurrency: "SGD"}
}

func TestPipelineRunRawText(t *testing.T) {
	households := &fakeHouseholds{household: sgdHousehold()}
	merchants := &fakeMerchants{names: []string{"Starbucks"}}
	expenses := &fakeExpenses{}
	p := newTestPipeline(households, merchants, expenses, &fakeExtractor{})

	raw := "Strabucks\nCoffee Latte   $5.40\nMuffin   $3.50\nTotal: $8.90\n2024-03-15"
	res, err := p.Run(context.Background(), ScanRequest{
		HouseholdID: households.household.ID,
		RawText:     raw,
	})
	require.NoError(t, err)

	assert.Equal(t, "Starbucks", res.Parsed.Merchant)
	assert.Equal(t, 8.90, res.Parsed.Total)
	assert.Equal(t, "2024-03-15", res.Parsed.Date)
	assert.Equal(t, constants.FoodDailyNeeds, res.Parsed.Category)
	assert.False(t, res.NeedsReview)

	require.NotNil(t, expenses.lastRequest)
	assert.Equal(t, "SGD", expenses.lastRequest.CurrencyCode)
	assert.Equal(t, "SGD", res.Expense.CurrencyCode)
}

func TestPipelineRunVisionPath(t *testing.T) {
	households := &fakeHouseholds{household: sgdHousehold()}
	merchants := &fakeMerchants{names: []string{"FairPrice Xtra"}}
	expenses := &fakeExpenses{}
	extractor := &fakeExtractor{text: "FairPrlce Xtra\nGrocery run\nTotal: $42.10\n2024-05-02"}
	p := newTestPipeline(households, merchants, expenses, extractor)

	res, err := p.Run(context.Background(), ScanRequest{
		HouseholdID: households.household.ID,
		ImagePath:   "/tmp/receipt.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "FairPrice Xtra", res.Parsed.Merchant)
	assert.Equal(t, 42.10, res.Parsed.Total)
	assert.Equal(t, constants.FoodDailyNeeds, res.Parsed.Category)
}

func TestPipelineFlagsWeakScans(t *testing.T) {
	households := &fakeHouseholds{household: sgdHousehold()}
	merchants := &fakeMerchants{}
	expenses := &fakeExpenses{}
	p := newTestPipeline(households, merchants, expenses, &fakeExtractor{})

	// No labeled total line, so the guessed amount carries low confidence.
	raw := "Corner Shop\nStuff   $12.00\n2024-04-01"
	res, err := p.Run(context.Background(), ScanRequest{
		HouseholdID: households.household.ID,
		RawText:     raw,
	})
	require.NoError(t, err)
	assert.True(t, res.NeedsReview)
	assert.Less(t, res.Parsed.Confidence, 0.6)
}

func TestPipelinePropagatesErrors(t *testing.T) {
	t.Run("household lookup", func(t *testing.T) {
		households := &fakeHouseholds{err: errors.New("not found")}
		p := newTestPipeline(households, &fakeMerchants{}, &fakeExpenses{}, &fakeExtractor{})
		_, err := p.Run(context.Background(), ScanRequest{HouseholdID: uuid.New(), RawText: "x"})
		require.ErrorContains(t, err, "load household")
	})

	t.Run("vision failure", func(t *testing.T) {
		households := &fakeHouseholds{household: sgdHousehold()}
		extractor := &fakeExtractor{err: errors.New("upstream 503")}
		p := newTestPipeline(households, &fakeMerchants{}, &fakeExpenses{}, extractor)
		_, err := p.Run(context.Background(), ScanRequest{HouseholdID: households.household.ID, ImagePath: "/tmp/x.jpg"})
		require.ErrorContains(t, err, "vision extract")
	})

	t.Run("persist failure", func(t *testing.T) {
		households := &fakeHouseholds{household: sgdHousehold()}
		expenses := &fakeExpenses{err: errors.New("db down")}
		p := newTestPipeline(households, &fakeMerchants{}, expenses, &fakeExtractor{})
		_, err := p.Run(context.Background(), ScanRequest{HouseholdID: households.household.ID, RawText: "Total: $5.00"})
		require.ErrorContains(t, err, "create expense")
	})
}
