package core

import (
	"context"
	"fmt"
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
)

const riskColumns = `id, description, priority, mitigation, category, status, created_at`

type RiskService struct {
	db DB
}

func NewRiskService(db DB) *RiskService {
	return &RiskService{db: db}
}

func scanRisk(row scanner) (model.Risk, error) {
	var r model.Risk
	err := row.Scan(&r.ID, &r.Description, &r.Priority, &r.Mitigation, &r.Category, &r.Status, &r.CreatedAt)
	return r, err
}

func (s *RiskService) Create(ctx context.Context, r *model.Risk) error {
	r.ID = platform.NewID()
	r.Status = model.RiskOpen
	r.CreatedAt = time.Now()

	_, err := s.db.Exec(ctx,
		`INSERT INTO risks (id, description, priority, mitigation, category, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.Description, r.Priority, r.Mitigation, r.Category, r.Status, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert risk: %w", err)
	}
	return nil
}

func (s *RiskService) GetByID(ctx context.Context, id string) (*model.Risk, error) {
	r, err := scanRisk(s.db.QueryRow(ctx,
		`SELECT `+riskColumns+` FROM risks WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "risk", id)
	}
	return &r, nil
}

func (s *RiskService) List(ctx context.Context, params request.ListParams) ([]model.Risk, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("risks")
	q.equal("priority", params.Priority)
	q.equal("category", params.Category)
	q.applyCommon(params, "description", "mitigation")
	sql, args := q.build(riskColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list risks: %w", err)
	}
	return collect(rows, limit, "risk", scanRisk)
}
