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

const incidentColumns = `id, title, description, priority, status, type, category,
	service_id, created_at, updated_at`

// IncidentService stores incidents and service requests. Both share the
// incidents table and are told apart by type.
type IncidentService struct {
	db DB
}

func NewIncidentService(db DB) *IncidentService {
	return &IncidentService{db: db}
}

func scanIncident(row scanner) (model.Incident, error) {
	var inc model.Incident
	err := row.Scan(&inc.ID, &inc.Title, &inc.Description, &inc.Priority, &inc.Status,
		&inc.Type, &inc.Category, &inc.ServiceID, &inc.CreatedAt, &inc.UpdatedAt)
	return inc, err
}

// Create assigns an INC/REQ ticket ID and stores the incident. A service
// reference must point at an active service.
func (s *IncidentService) Create(ctx context.Context, inc *model.Incident) error {
	if inc.ServiceID != nil {
		if err := s.checkService(ctx, *inc.ServiceID); err != nil {
			return err
		}
	}

	now := time.Now()
	if inc.Type == "" {
		inc.Type = model.TypeIncident
	}
	if inc.Status == "" {
		inc.Status = model.IncidentOpen
	}
	inc.ID = platform.NewTicketID(inc.Type.IDPrefix(), now)
	inc.CreatedAt = now
	inc.UpdatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO incidents (id, title, description, priority, status, type, category,
		                        service_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inc.ID, inc.Title, inc.Description, inc.Priority, inc.Status, inc.Type, inc.Category,
		inc.ServiceID, inc.CreatedAt, inc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

func (s *IncidentService) checkService(ctx context.Context, id string) error {
	var status model.ServiceStatus
	err := s.db.QueryRow(ctx, `SELECT status FROM services WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return validation.Errors{"service_id": "references an unknown service"}
	}
	if err != nil {
		return fmt.Errorf("check incident service %s: %w", id, err)
	}
	if status != model.ServiceActive {
		return validation.Errors{"service_id": "must reference an active service"}
	}
	return nil
}

func (s *IncidentService) GetByID(ctx context.Context, id string) (*model.Incident, error) {
	inc, err := scanIncident(s.db.QueryRow(ctx,
		`SELECT `+incidentColumns+` FROM incidents WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "incident", id)
	}
	return &inc, nil
}

// List returns incidents newest first, filtered by status set, priority,
// type and category. Search matches title and description.
func (s *IncidentService) List(ctx context.Context, params request.ListParams) ([]model.Incident, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("incidents")
	q.equal("priority", params.Priority)
	q.equal("type", params.Type)
	q.equal("category", params.Category)
	q.applyCommon(params, "title", "description")
	sql, args := q.build(incidentColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list incidents: %w", err)
	}
	return collect(rows, limit, "incident", scanIncident)
}

// Active returns every open or in-progress incident, newest first.
func (s *IncidentService) Active(ctx context.Context) ([]model.Incident, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+incidentColumns+` FROM incidents
		 WHERE status IN ('open', 'in_progress')
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list active incidents: %w", err)
	}
	return collectAll(rows, "incident", scanIncident)
}
