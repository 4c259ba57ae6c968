package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homecrew/homecrew-backend/gen/ent"
	"github.com/homecrew/homecrew-backend/gen/ent/household"
)

type Household struct {
	Name            string
	DefaultCurrency string
}

type HouseholdRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Household, error)
	CreateHousehold(ctx context.Context, h *Household) (*ent.Household, error)
	GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*ent.Household, error)
	ListHouseholds(ctx context.Context) ([]*ent.Household, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type householdRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewHouseholdRepository(client *ent.Client, logger *slog.Logger) HouseholdRepository {
	return &householdRepository{
		client: client,
		logger: logger,
	}
}

func (r *householdRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Household, error) {
	return r.client.Household.
		Query().
		Where(household.ID(id)).
		Only(ctx)
}

func (r *householdRepository) CreateHousehold(ctx context.Context, h *Household) (*ent.Household, error) {
	created, err := r.client.Household.Create().
		SetName(h.Name).
		SetDefaultCurrency(h.DefaultCurrency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create household", "name", h.Name, "currency", h.DefaultCurrency, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *householdRepository) GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*ent.Household, error) {
	existing, err := r.client.Household.Query().
		Where(household.Name(name)).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up household", "name", name, "error", err)
		return nil, err
	}
	return r.CreateHousehold(ctx, &Household{Name: name, DefaultCurrency: defaultCurrency})
}

func (r *householdRepository) ListHouseholds(ctx context.Context) ([]*ent.Household, error) {
	hlist, err := r.client.Household.Query().Order(household.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list households", "error", err)
		return nil, err
	}
	return hlist, nil
}

func (r *householdRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Household.Query().Where(household.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check household existence", "household_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
