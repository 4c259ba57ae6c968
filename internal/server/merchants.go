package server

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	homecrewpb "github.com/homecrew/homecrew-backend/gen/proto/homecrew/v1"
	"github.com/homecrew/homecrew-backend/internal/common"
	"github.com/homecrew/homecrew-backend/internal/repository"
	"github.com/homecrew/homecrew-backend/internal/utils"
)

type MerchantServer struct {
	homecrewpb.UnimplementedMerchantsServiceServer
	merchantRepo  repository.MerchantRepository
	householdRepo repository.HouseholdRepository
	logger        *slog.Logger
}

func NewMerchantServer(merchantRepo repository.MerchantRepository, householdRepo repository.HouseholdRepository, logger *slog.Logger) *MerchantServer {
	return &MerchantServer{
		merchantRepo:  merchantRepo,
		householdRepo: householdRepo,
		logger:        logger,
	}
}

func (s *MerchantServer) ListMerchants(ctx context.Context, req *homecrewpb.ListMerchantsRequest) (*homecrewpb.ListMerchantsResponse, error) {
	householdID, err := parseHouseholdID(req.GetHouseholdId())
	if err != nil {
		s.logger.Error("invalid household_id for list merchants", "household_id", req.GetHouseholdId(), "error", err)
		return nil, err
	}

	mlist, err := s.merchantRepo.ListMerchants(ctx, householdID)
	if err != nil {
		s.logger.Error("failed to list merchants", "household_id", householdID, "error", err)
		return nil, common.InternalErrorf("list merchants: %v", err)
	}

	out := make([]*homecrewpb.Merchant, 0, len(mlist))
	for _, m := range mlist {
		out = append(out, utils.ToPBMerchant(m))
	}
	return &homecrewpb.ListMerchantsResponse{Merchants: out}, nil
}

// ConfirmMerchant records a merchant name as household-approved, growing the
// corpus future scans snap against.
func (s *MerchantServer) ConfirmMerchant(ctx context.Context, req *homecrewpb.ConfirmMerchantRequest) (*homecrewpb.ConfirmMerchantResponse, error) {
	householdID, err := parseHouseholdID(req.GetHouseholdId())
	if err != nil {
		s.logger.Error("invalid household_id for confirm merchant", "household_id", req.GetHouseholdId(), "error", err)
		return nil, err
	}

	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if utf8.RuneCountInString(name) > 50 {
		return nil, common.InvalidArgumentError("name must be at most 50 characters")
	}

	if exists, _ := s.householdRepo.Exists(ctx, householdID); !exists {
		s.logger.Error("household not found for confirm merchant", "household_id", householdID)
		return nil, common.NotFoundError("household not found")
	}

	m, err := s.merchantRepo.Confirm(ctx, householdID, name)
	if err != nil {
		s.logger.Error("failed to confirm merchant", "household_id", householdID, "name", name, "error", err)
		return nil, common.InternalErrorf("confirm merchant: %v", err)
	}

	s.logger.Info("merchant confirmed", "household_id", householdID, "merchant_id", m.ID, "name", m.Name)
	return &homecrewpb.ConfirmMerchantResponse{Merchant: utils.ToPBMerchant(m)}, nil
}

func parseHouseholdID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, common.InvalidArgumentError("household_id is required")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("household_id must be a UUID")
	}
	return id, nil
}
