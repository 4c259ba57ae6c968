package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homecrew/homecrew-backend/gen/ent"
	"github.com/homecrew/homecrew-backend/gen/ent/merchant"
	"github.com/homecrew/homecrew-backend/internal/entity"
	"github.com/homecrew/homecrew-backend/internal/utils"
)

type MerchantRepository interface {
	// ListNames returns every confirmed merchant name for a household,
	// the corpus the parser snaps noisy OCR guesses against.
	ListNames(ctx context.Context, householdID uuid.UUID) ([]string, error)
	ListMerchants(ctx context.Context, householdID uuid.UUID) ([]*entity.Merchant, error)
	// Confirm records a merchant name for a household. Confirming the same
	// name twice is a no-op.
	Confirm(ctx context.Context, householdID uuid.UUID, name string) (*entity.Merchant, error)
}

type merchantRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMerchantRepository(client *ent.Client, logger *slog.Logger) MerchantRepository {
	return &merchantRepository{
		client: client,
		logger: logger,
	}
}

func (r *merchantRepository) ListNames(ctx context.Context, householdID uuid.UUID) ([]string, error) {
	names, err := r.client.Merchant.Query().
		Where(merchant.HouseholdID(householdID)).
		Order(merchant.ByName()).
		Select(merchant.FieldName).
		Strings(ctx)
	if err != nil {
		r.logger.Error("failed to list merchant names", "household_id", householdID, "error", err)
		return nil, err
	}
	return names, nil
}

func (r *merchantRepository) ListMerchants(ctx context.Context, householdID uuid.UUID) ([]*entity.Merchant, error) {
	mlist, err := r.client.Merchant.Query().
		Where(merchant.HouseholdID(householdID)).
		Order(merchant.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list merchants", "household_id", householdID, "error", err)
		return nil, err
	}

	result := make([]*entity.Merchant, len(mlist))
	for i, m := range mlist {
		result[i] = utils.ToMerchant(m)
	}
	return result, nil
}

func (r *merchantRepository) Confirm(ctx context.Context, householdID uuid.UUID, name string) (*entity.Merchant, error) {
	existing, err := r.client.Merchant.Query().
		Where(merchant.HouseholdID(householdID), merchant.Name(name)).
		Only(ctx)
	if err == nil {
		return utils.ToMerchant(existing), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up merchant", "household_id", householdID, "name", name, "error", err)
		return nil, err
	}

	created, err := r.client.Merchant.Create().
		SetHouseholdID(householdID).
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to confirm merchant", "household_id", householdID, "name", name, "error", err)
		return nil, err
	}
	return utils.ToMerchant(created), nil
}
