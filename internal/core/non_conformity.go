package core

import (
	"context"
	"fmt"
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
)

const nonConformityColumns = `id, description, cause, corrective_action, category, severity, status, created_at`

type NonConformityService struct {
	db DB
}

func NewNonConformityService(db DB) *NonConformityService {
	return &NonConformityService{db: db}
}

func scanNonConformity(row scanner) (model.NonConformity, error) {
	var nc model.NonConformity
	err := row.Scan(&nc.ID, &nc.Description, &nc.Cause, &nc.CorrectiveAction,
		&nc.Category, &nc.Severity, &nc.Status, &nc.CreatedAt)
	return nc, err
}

// Create stores a new non-conformity. New records always start open.
func (s *NonConformityService) Create(ctx context.Context, nc *model.NonConformity) error {
	nc.ID = platform.NewID()
	nc.Status = model.NonConformityOpen
	nc.CreatedAt = time.Now()

	_, err := s.db.Exec(ctx,
		`INSERT INTO non_conformities (id, description, cause, corrective_action, category, severity, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		nc.ID, nc.Description, nc.Cause, nc.CorrectiveAction, nc.Category, nc.Severity, nc.Status, nc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert non-conformity: %w", err)
	}
	return nil
}

func (s *NonConformityService) GetByID(ctx context.Context, id string) (*model.NonConformity, error) {
	nc, err := scanNonConformity(s.db.QueryRow(ctx,
		`SELECT `+nonConformityColumns+` FROM non_conformities WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "non-conformity", id)
	}
	return &nc, nil
}

// List returns non-conformities newest first, filtered by severity and
// category. Search matches description and cause.
func (s *NonConformityService) List(ctx context.Context, params request.ListParams) ([]model.NonConformity, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("non_conformities")
	q.equal("severity", params.Severity)
	q.equal("category", params.Category)
	q.applyCommon(params, "description", "cause")
	sql, args := q.build(nonConformityColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list non-conformities: %w", err)
	}
	return collect(rows, limit, "non-conformity", scanNonConformity)
}
