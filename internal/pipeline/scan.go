// Package pipeline runs the receipt scan flow: vision text extraction,
// normalization into structured expense fields, and persistence.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homecrew/homecrew-backend/constants"
	"github.com/homecrew/homecrew-backend/internal/entity"
	"github.com/homecrew/homecrew-backend/internal/receipt"
	"github.com/homecrew/homecrew-backend/internal/repository"
	"github.com/homecrew/homecrew-backend/internal/vision"
)

// Config holds thresholds and behavior flags for the scan pipeline.
type Config struct {
	MinConfidence float64 // default 0.60
}

type Pipeline struct {
	Logger     *slog.Logger
	Cfg        Config
	Households repository.HouseholdRepository
	Merchants  repository.MerchantRepository
	Expenses   repository.ExpenseRepository
	Extractor  vision.TextExtractor
}

func NewPipeline(
	logger *slog.Logger,
	cfg Config,
	households repository.HouseholdRepository,
	merchants repository.MerchantRepository,
	expenses repository.ExpenseRepository,
	extractor vision.TextExtractor,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Pipeline{
		Logger:     logger,
		Cfg:        cfg,
		Households: households,
		Merchants:  merchants,
		Expenses:   expenses,
		Extractor:  extractor,
	}
}

// ScanRequest describes one receipt to process. Exactly one of ImagePath or
// RawText should be set; RawText skips the vision stage.
type ScanRequest struct {
	HouseholdID uuid.UUID
	ImagePath   string
	RawText     string
}

type ScanResult struct {
	Expense     *entity.Expense
	Parsed      receipt.ParsedReceipt
	NeedsReview bool
}

// Run executes the scan flow for one receipt: extract text if needed, parse
// it against the household's confirmed merchants, and persist the expense.
func (p *Pipeline) Run(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	household, err := p.Households.GetByID(ctx, req.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("load household: %w", err)
	}

	rawText := req.RawText
	if rawText == "" {
		res, err := p.Extractor.ExtractText(ctx, vision.ExtractRequest{ImagePath: req.ImagePath})
		if err != nil {
			p.Logger.Error("scan.vision.failed", "household_id", req.HouseholdID, "path", req.ImagePath, "err", err)
			return nil, fmt.Errorf("vision extract: %w", err)
		}
		p.Logger.Info("scan.vision.ok",
			"household_id", req.HouseholdID,
			"text_bytes", len(res.Text),
			"confidence", res.Confidence,
		)
		rawText = res.Text
	}

	known, err := p.Merchants.ListNames(ctx, req.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}

	p.Logger.Info("scan.parse.start",
		"household_id", req.HouseholdID,
		"raw_bytes", len(rawText), "known_merchants", len(known),
	)
	parsed := receipt.Parse(rawText, receipt.Options{KnownMerchants: known})

	needsReview := false
	if parsed.Confidence < p.Cfg.MinConfidence {
		needsReview = true
	}
	if parsed.Merchant == receipt.UnknownMerchant {
		needsReview = true
	}
	if parsed.Category == constants.Miscellaneous {
		needsReview = true
	}

	exp, err := p.Expenses.CreateFromParsed(ctx, &repository.CreateExpenseRequest{
		HouseholdID:  req.HouseholdID,
		CurrencyCode: household.DefaultCurrency,
		Parsed:       parsed,
		NeedsReview:  needsReview,
	})
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	p.Logger.Info("scan.ok",
		"household_id", req.HouseholdID, "expense_id", exp.ID,
		"merchant", parsed.Merchant,
		"date", parsed.Date, "total", parsed.Total,
		"category", string(parsed.Category), "needs_review", needsReview,
		"confidence", parsed.Confidence,
	)
	return &ScanResult{Expense: exp, Parsed: parsed, NeedsReview: needsReview}, nil
}
