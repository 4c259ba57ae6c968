package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homecrew/homecrew-backend/gen/ent"
	"github.com/homecrew/homecrew-backend/gen/ent/expense"
	"github.com/homecrew/homecrew-backend/internal/entity"
	"github.com/homecrew/homecrew-backend/internal/receipt"
	"github.com/homecrew/homecrew-backend/internal/utils"
)

// CreateExpenseRequest wraps parameters for persisting a parsed receipt.
type CreateExpenseRequest struct {
	HouseholdID  uuid.UUID
	CurrencyCode string
	Parsed       receipt.ParsedReceipt
	NeedsReview  bool
}

type ExpenseRepository interface {
	ListExpenses(ctx context.Context, householdID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Expense, error)
	CreateFromParsed(ctx context.Context, request *CreateExpenseRequest) (*entity.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
}

type expenseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExpenseRepository(client *ent.Client, logger *slog.Logger) ExpenseRepository {
	return &expenseRepository{
		client: client,
		logger: logger,
	}
}

func (r *expenseRepository) ListExpenses(ctx context.Context, householdID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Expense, error) {
	q := r.client.Expense.Query().Where(expense.HouseholdID(householdID))
	if fromDate != nil {
		q = q.Where(expense.TxDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(expense.TxDateLTE(*toDate))
	}
	recs, err := q.Order(expense.ByTxDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list expenses", "household_id", householdID, "error", err)
		return nil, err
	}

	result := make([]*entity.Expense, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToExpense(rec)
	}
	return result, nil
}

func (r *expenseRepository) CreateFromParsed(ctx context.Context, request *CreateExpenseRequest) (*entity.Expense, error) {
	p := request.Parsed

	txDate, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return nil, err
	}

	items := make([]entity.ExpenseItem, len(p.LineItems))
	for i, it := range p.LineItems {
		items[i] = entity.ExpenseItem{Name: it.Name, Price: it.Price}
	}

	builder := r.client.Expense.Create().
		SetHouseholdID(request.HouseholdID).
		SetMerchantName(p.Merchant).
		SetTxDate(txDate).
		SetTotal(p.Total).
		SetCurrencyCode(request.CurrencyCode).
		SetCategory(string(p.Category)).
		SetConfidence(p.Confidence).
		SetNeedsReview(request.NeedsReview).
		SetRawText(p.RawText)
	if len(items) > 0 {
		builder = builder.SetLineItems(items)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create expense", "household_id", request.HouseholdID, "merchant", p.Merchant, "error", err)
		return nil, err
	}
	return utils.ToExpense(rec), nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	rec, err := r.client.Expense.Query().Where(expense.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToExpense(rec), nil
}
