package server

import (
	"context"
	"log/slog"
	"strings"

	homecrewpb "github.com/homecrew/homecrew-backend/gen/proto/homecrew/v1"
	"github.com/homecrew/homecrew-backend/internal/common"
	"github.com/homecrew/homecrew-backend/internal/repository"
	"github.com/homecrew/homecrew-backend/internal/utils"
)

type HouseholdServer struct {
	homecrewpb.UnimplementedHouseholdsServiceServer
	householdRepo repository.HouseholdRepository
	logger        *slog.Logger
}

func NewHouseholdServer(householdRepo repository.HouseholdRepository, logger *slog.Logger) *HouseholdServer {
	return &HouseholdServer{
		householdRepo: householdRepo,
		logger:        logger,
	}
}

// CreateHousehold creates a new household profile.
func (s *HouseholdServer) CreateHousehold(ctx context.Context, req *homecrewpb.CreateHouseholdRequest) (*homecrewpb.CreateHouseholdResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		s.logger.Error("create household request missing name")
		return nil, common.InvalidArgumentError("name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, common.InvalidArgumentError("default_currency must be a 3-letter code")
	}

	h, err := s.householdRepo.CreateHousehold(ctx, &repository.Household{
		Name:            name,
		DefaultCurrency: currency,
	})
	if err != nil {
		s.logger.Error("failed to create household", "name", name, "error", err)
		return nil, common.InternalErrorf("create household: %v", err)
	}

	s.logger.Info("household created", "household_id", h.ID, "name", h.Name)
	return &homecrewpb.CreateHouseholdResponse{
		Household: utils.ToPBHousehold(h),
	}, nil
}

// ListHouseholds lists all the households.
func (s *HouseholdServer) ListHouseholds(ctx context.Context, _ *homecrewpb.ListHouseholdsRequest) (*homecrewpb.ListHouseholdsResponse, error) {
	hlist, err := s.householdRepo.ListHouseholds(ctx)
	if err != nil {
		s.logger.Error("failed to list households", "error", err)
		return nil, common.InternalErrorf("list households: %v", err)
	}

	out := make([]*homecrewpb.Household, 0, len(hlist))
	for _, h := range hlist {
		out = append(out, utils.ToPBHousehold(h))
	}
	return &homecrewpb.ListHouseholdsResponse{Households: out}, nil
}
