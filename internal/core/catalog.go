package core

import (
	"context"
	"fmt"
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
)

const serviceColumns = `id, name, description, status, created_at`

// CatalogService manages the service catalog.
type CatalogService struct {
	db DB
}

func NewCatalogService(db DB) *CatalogService {
	return &CatalogService{db: db}
}

func scanService(row scanner) (model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Status, &s.CreatedAt)
	return s, err
}

func (s *CatalogService) Create(ctx context.Context, svc *model.Service) error {
	svc.ID = platform.NewID()
	svc.CreatedAt = time.Now()
	if svc.Status == "" {
		svc.Status = model.ServiceActive
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO services (id, name, description, status, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		svc.ID, svc.Name, svc.Description, svc.Status, svc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Service, error) {
	svc, err := scanService(s.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "service", id)
	}
	return &svc, nil
}

// List returns services newest first. Search matches name and description.
func (s *CatalogService) List(ctx context.Context, params request.ListParams) ([]model.Service, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("services")
	q.applyCommon(params, "name", "description")
	sql, args := q.build(serviceColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list services: %w", err)
	}
	return collect(rows, limit, "service", scanService)
}
