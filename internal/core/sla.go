package core

import (
	"context"
	"fmt"
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
	"github.com/corpac/coba/internal/rules"
)

const slaColumns = `id, name, description, target, current_value, status, last_updated, created_at`

type SLAService struct {
	db DB
}

func NewSLAService(db DB) *SLAService {
	return &SLAService{db: db}
}

// SLAPatch carries the mutable SLA fields. Nil fields are left unchanged.
type SLAPatch struct {
	Name         *string
	Description  *string
	Target       *float64
	CurrentValue *float64
}

func (p SLAPatch) empty() bool {
	return p.Name == nil && p.Description == nil && p.Target == nil && p.CurrentValue == nil
}

func scanSLA(row scanner) (model.SLA, error) {
	var s model.SLA
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Target, &s.CurrentValue,
		&s.Status, &s.LastUpdated, &s.CreatedAt)
	return s, err
}

// Create stores a new SLA with its status derived from target and value.
func (s *SLAService) Create(ctx context.Context, sla *model.SLA) error {
	now := time.Now()
	sla.ID = platform.NewID()
	sla.Status = rules.SLAStatus(sla.Target, sla.CurrentValue)
	sla.LastUpdated = now
	sla.CreatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO slas (id, name, description, target, current_value, status, last_updated, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sla.ID, sla.Name, sla.Description, sla.Target, sla.CurrentValue,
		sla.Status, sla.LastUpdated, sla.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sla: %w", err)
	}
	return nil
}

func (s *SLAService) GetByID(ctx context.Context, id string) (*model.SLA, error) {
	sla, err := scanSLA(s.db.QueryRow(ctx,
		`SELECT `+slaColumns+` FROM slas WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "sla", id)
	}
	return &sla, nil
}

// List returns SLAs newest first. Search matches the name.
func (s *SLAService) List(ctx context.Context, params request.ListParams) ([]model.SLA, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("slas")
	q.applyCommon(params, "name")
	sql, args := q.build(slaColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list slas: %w", err)
	}
	return collect(rows, limit, "sla", scanSLA)
}

// Update applies patch and recomputes status and last_updated. Concurrent
// updates to the same SLA are last-write-wins.
func (s *SLAService) Update(ctx context.Context, id string, patch SLAPatch) (*model.SLA, error) {
	if patch.empty() {
		return nil, ErrInvalidPatch
	}

	sla, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		sla.Name = *patch.Name
	}
	if patch.Description != nil {
		sla.Description = *patch.Description
	}
	if patch.Target != nil {
		sla.Target = *patch.Target
	}
	if patch.CurrentValue != nil {
		sla.CurrentValue = *patch.CurrentValue
	}
	sla.Status = rules.SLAStatus(sla.Target, sla.CurrentValue)
	sla.LastUpdated = time.Now()

	tag, err := s.db.Exec(ctx,
		`UPDATE slas SET name = $2, description = $3, target = $4, current_value = $5,
		        status = $6, last_updated = $7
		 WHERE id = $1`,
		sla.ID, sla.Name, sla.Description, sla.Target, sla.CurrentValue, sla.Status, sla.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("update sla %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("sla %s: %w", id, ErrNotFound)
	}
	return sla, nil
}

// All returns every SLA, newest first. Used by the dashboard.
func (s *SLAService) All(ctx context.Context) ([]model.SLA, error) {
	rows, err := s.db.Query(ctx, `SELECT `+slaColumns+` FROM slas ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all slas: %w", err)
	}
	return collectAll(rows, "sla", scanSLA)
}
