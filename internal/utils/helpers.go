package utils

import (
	"fmt"
	"time"

	"github.com/homecrew/homecrew-backend/gen/ent"
	homecrewpb "github.com/homecrew/homecrew-backend/gen/proto/homecrew/v1"
	"github.com/homecrew/homecrew-backend/internal/entity"
)

func ToPBHousehold(h *ent.Household) *homecrewpb.Household {
	return &homecrewpb.Household{
		Id:              h.ID.String(),
		Name:            h.Name,
		DefaultCurrency: h.DefaultCurrency,
		CreatedAt:       h.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       h.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBMerchant(m *entity.Merchant) *homecrewpb.Merchant {
	return &homecrewpb.Merchant{
		Id:          m.ID.String(),
		HouseholdId: m.HouseholdID.String(),
		Name:        m.Name,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBExpense(e *entity.Expense) *homecrewpb.Expense {
	items := make([]*homecrewpb.ExpenseItem, len(e.LineItems))
	for i, it := range e.LineItems {
		items[i] = &homecrewpb.ExpenseItem{
			Name:  it.Name,
			Price: fmt.Sprintf("%.2f", it.Price),
		}
	}
	return &homecrewpb.Expense{
		Id:           e.ID.String(),
		HouseholdId:  e.HouseholdID.String(),
		MerchantName: e.MerchantName,
		TxDate:       e.TxDate.Format("2006-01-02"),
		Total:        fmt.Sprintf("%.2f", e.Total),
		CurrencyCode: e.CurrencyCode,
		Category:     e.Category,
		Confidence:   e.Confidence,
		NeedsReview:  e.NeedsReview,
		LineItems:    items,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToHousehold(e *ent.Household) *entity.Household {
	return &entity.Household{
		ID:              e.ID,
		Name:            e.Name,
		DefaultCurrency: e.DefaultCurrency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToMerchant(e *ent.Merchant) *entity.Merchant {
	return &entity.Merchant{
		ID:          e.ID,
		HouseholdID: e.HouseholdID,
		Name:        e.Name,
		CreatedAt:   e.CreatedAt,
	}
}

func ToExpense(e *ent.Expense) *entity.Expense {
	return &entity.Expense{
		ID:           e.ID,
		HouseholdID:  e.HouseholdID,
		MerchantName: e.MerchantName,
		TxDate:       e.TxDate,
		Total:        e.Total,
		CurrencyCode: e.CurrencyCode,
		Category:     e.Category,
		Confidence:   e.Confidence,
		NeedsReview:  e.NeedsReview,
		RawText:      e.RawText,
		LineItems:    e.LineItems,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
