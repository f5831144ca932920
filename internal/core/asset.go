package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
	"github.com/corpac/coba/internal/validation"
)

const assetColumns = `id, name, type, status, service_id, description, location, created_at`

type AssetService struct {
	db DB
}

func NewAssetService(db DB) *AssetService {
	return &AssetService{db: db}
}

func scanAsset(row scanner) (model.Asset, error) {
	var a model.Asset
	err := row.Scan(&a.ID, &a.Name, &a.Type, &a.Status, &a.ServiceID, &a.Description, &a.Location, &a.CreatedAt)
	return a, err
}

// Create stores a new asset. A service reference must exist but may be
// inactive.
func (s *AssetService) Create(ctx context.Context, a *model.Asset) error {
	if a.ServiceID != nil {
		var exists bool
		err := s.db.QueryRow(ctx, `SELECT true FROM services WHERE id = $1`, *a.ServiceID).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return validation.Errors{"service_id": "references an unknown service"}
		}
		if err != nil {
			return fmt.Errorf("check asset service %s: %w", *a.ServiceID, err)
		}
	}

	a.ID = platform.NewID()
	a.CreatedAt = time.Now()
	if a.Status == "" {
		a.Status = model.AssetOperational
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO assets (id, name, type, status, service_id, description, location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Name, a.Type, a.Status, a.ServiceID, a.Description, a.Location, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

func (s *AssetService) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	a, err := scanAsset(s.db.QueryRow(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "asset", id)
	}
	return &a, nil
}

// List returns assets newest first. Search matches name and location.
func (s *AssetService) List(ctx context.Context, params request.ListParams) ([]model.Asset, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("assets")
	q.equal("type", params.Type)
	q.applyCommon(params, "name", "location")
	sql, args := q.build(assetColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list assets: %w", err)
	}
	return collect(rows, limit, "asset", scanAsset)
}
