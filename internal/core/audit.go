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
	"github.com/corpac/coba/internal/rules"
)

const auditColumns = `id, date, scope, result, status, recommendations, created_at`

type AuditService struct {
	db DB
}

func NewAuditService(db DB) *AuditService {
	return &AuditService{db: db}
}

func scanAudit(row scanner) (model.Audit, error) {
	var a model.Audit
	err := row.Scan(&a.ID, &a.Date, &a.Scope, &a.Result, &a.Status, &a.Recommendations, &a.CreatedAt)
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	return a, err
}

func (s *AuditService) Create(ctx context.Context, a *model.Audit) error {
	a.ID = platform.NewID()
	a.CreatedAt = time.Now()
	a.Result = rules.AuditResult(a.Result)
	if a.Status == "" {
		a.Status = model.AuditPlanned
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO audits (id, date, scope, result, status, recommendations, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Date, a.Scope, a.Result, a.Status, a.Recommendations, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func (s *AuditService) GetByID(ctx context.Context, id string) (*model.Audit, error) {
	a, err := scanAudit(s.db.QueryRow(ctx,
		`SELECT `+auditColumns+` FROM audits WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "audit", id)
	}
	return &a, nil
}

// List returns audits newest first. Search matches scope and result.
func (s *AuditService) List(ctx context.Context, params request.ListParams) ([]model.Audit, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("audits")
	q.applyCommon(params, "scope", "result")
	sql, args := q.build(auditColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list audits: %w", err)
	}
	return collect(rows, limit, "audit", scanAudit)
}

// LatestCompleted returns the most recent completed audit, or nil when no
// audit has completed yet.
func (s *AuditService) LatestCompleted(ctx context.Context) (*model.Audit, error) {
	a, err := scanAudit(s.db.QueryRow(ctx,
		`SELECT `+auditColumns+` FROM audits
		 WHERE status = 'completed'
		 ORDER BY created_at DESC, id DESC LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest completed audit: %w", err)
	}
	return &a, nil
}
