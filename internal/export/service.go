package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/homecrew/homecrew-backend/internal/entity"
)

// ExpenseSource is the slice of the expense repository the exporter needs.
type ExpenseSource interface {
	ListExpenses(ctx context.Context, householdID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Expense, error)
}

// Service produces XLSX bytes for expense exports.
type Service struct {
	expenses ExpenseSource
	logger   *slog.Logger
}

func NewService(expenses ExpenseSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{expenses: expenses, logger: logger}
}

// ExportExpensesXLSX returns an XLSX workbook (as bytes) for the given household and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all expenses for the household.
func (s *Service) ExportExpensesXLSX(ctx context.Context, householdID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.expenses.ListExpenses(ctx, householdID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Expenses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Transaction Date",
		"Merchant",
		"Category",
		"Total",
		"Currency",
		"Line Items",
		"Confidence",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !r.TxDate.IsZero() {
			write(1, r.TxDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, r.MerchantName)
		write(3, r.Category)
		write(4, fmt.Sprintf("%.2f", r.Total))
		write(5, r.CurrencyCode)
		write(6, truncate(formatItems(r.LineItems), 140))
		write(7, fmt.Sprintf("%.2f", r.Confidence))
		if r.NeedsReview {
			write(8, "yes")
		} else {
			write(8, "no")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // merchant
	_ = f.SetColWidth(sheet, "C", "C", 22) // category
	_ = f.SetColWidth(sheet, "D", "E", 12) // total, currency
	_ = f.SetColWidth(sheet, "F", "F", 48) // items
	_ = f.SetColWidth(sheet, "G", "H", 12) // confidence, review

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"household_id", householdID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatItems(items []entity.ExpenseItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s (%.2f)", it.Name, it.Price)
	}
	return strings.Join(parts, "; ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
