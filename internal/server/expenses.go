package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	homecrewpb "github.com/homecrew/homecrew-backend/gen/proto/homecrew/v1"
	"github.com/homecrew/homecrew-backend/internal/common"
	"github.com/homecrew/homecrew-backend/internal/pipeline"
	"github.com/homecrew/homecrew-backend/internal/repository"
	"github.com/homecrew/homecrew-backend/internal/utils"
)

type ExpenseServer struct {
	homecrewpb.UnimplementedExpensesServiceServer
	expenseRepo   repository.ExpenseRepository
	householdRepo repository.HouseholdRepository
	pipe          *pipeline.Pipeline
	logger        *slog.Logger
}

func NewExpenseServer(expenseRepo repository.ExpenseRepository, householdRepo repository.HouseholdRepository, pipe *pipeline.Pipeline, logger *slog.Logger) *ExpenseServer {
	return &ExpenseServer{
		expenseRepo:   expenseRepo,
		householdRepo: householdRepo,
		pipe:          pipe,
		logger:        logger,
	}
}

// ScanReceipt runs the full scan flow for one receipt and returns the
// persisted expense.
func (s *ExpenseServer) ScanReceipt(ctx context.Context, req *homecrewpb.ScanReceiptRequest) (*homecrewpb.ScanReceiptResponse, error) {
	householdID, err := parseHouseholdID(req.GetHouseholdId())
	if err != nil {
		s.logger.Error("invalid household_id for scan", "household_id", req.GetHouseholdId(), "error", err)
		return nil, err
	}

	imagePath := strings.TrimSpace(req.GetImagePath())
	rawText := req.GetRawText()
	if imagePath == "" && strings.TrimSpace(rawText) == "" {
		return nil, common.InvalidArgumentError("image_path or raw_text is required")
	}

	if exists, _ := s.householdRepo.Exists(ctx, householdID); !exists {
		s.logger.Error("household not found for scan", "household_id", householdID)
		return nil, common.NotFoundError("household not found")
	}

	s.logger.Info("starting receipt scan", "household_id", householdID, "image_path", imagePath, "raw_bytes", len(rawText))
	res, err := s.pipe.Run(ctx, pipeline.ScanRequest{
		HouseholdID: householdID,
		ImagePath:   imagePath,
		RawText:     rawText,
	})
	if err != nil {
		s.logger.Error("scan.failed", "household_id", householdID, "err", err)
		return nil, common.InternalErrorf("scan receipt: %v", err)
	}

	return &homecrewpb.ScanReceiptResponse{
		Expense:     utils.ToPBExpense(res.Expense),
		NeedsReview: res.NeedsReview,
	}, nil
}

func (s *ExpenseServer) ListExpenses(ctx context.Context, req *homecrewpb.ListExpensesRequest) (*homecrewpb.ListExpensesResponse, error) {
	householdID, err := parseHouseholdID(req.GetHouseholdId())
	if err != nil {
		s.logger.Error("invalid household_id for list expenses", "household_id", req.GetHouseholdId(), "error", err)
		return nil, err
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing expenses", "household_id", householdID, "from_date", fromDate, "to_date", toDate)
	recs, err := s.expenseRepo.ListExpenses(ctx, householdID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list expenses", "household_id", householdID, "error", err)
		return nil, common.InternalErrorf("list expenses: %v", err)
	}
	s.logger.Info("expenses listed successfully", "household_id", householdID, "count", len(recs))

	out := make([]*homecrewpb.Expense, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBExpense(r))
	}
	return &homecrewpb.ListExpensesResponse{Expenses: out}, nil
}
