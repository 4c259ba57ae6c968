package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	homecrewpb "github.com/homecrew/homecrew-backend/gen/proto/homecrew/v1"
	"github.com/homecrew/homecrew-backend/internal/common"
	"github.com/homecrew/homecrew-backend/internal/export"
)

type ExportServer struct {
	homecrewpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportExpenses builds an XLSX workbook covering the requested date window.
// Only from -> from..today; only to -> beginning..to; neither -> everything.
func (s *ExportServer) ExportExpenses(ctx context.Context, req *homecrewpb.ExportExpensesRequest) (*homecrewpb.ExportExpensesResponse, error) {
	householdID, err := parseHouseholdID(req.GetHouseholdId())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportExpensesXLSX(ctx, householdID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "household_id", householdID, "err", err)
		return nil, common.InternalErrorf("export expenses: %v", err)
	}

	return &homecrewpb.ExportExpensesResponse{Xlsx: xlsx}, nil
}
