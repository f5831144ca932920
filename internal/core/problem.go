package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
	"github.com/corpac/coba/internal/rules"
)

const problemColumns = `id, description, root_cause, solution, priority, category, status, created_at`

type ProblemService struct {
	db DB
}

func NewProblemService(db DB) *ProblemService {
	return &ProblemService{db: db}
}

func scanProblem(row scanner) (model.Problem, error) {
	var p model.Problem
	err := row.Scan(&p.ID, &p.Description, &p.RootCause, &p.Solution, &p.Priority, &p.Category, &p.Status, &p.CreatedAt)
	return p, err
}

// Create stores a new problem. The initial status is investigating when a
// root cause is supplied and open otherwise; blank optional fields are
// stored as NULL.
func (s *ProblemService) Create(ctx context.Context, p *model.Problem) error {
	p.RootCause = blankToNil(p.RootCause)
	p.Solution = blankToNil(p.Solution)

	rootCause := ""
	if p.RootCause != nil {
		rootCause = *p.RootCause
	}

	p.ID = platform.NewID()
	p.Status = rules.ProblemInitialStatus(rootCause)
	p.CreatedAt = time.Now()

	_, err := s.db.Exec(ctx,
		`INSERT INTO problems (id, description, root_cause, solution, priority, category, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Description, p.RootCause, p.Solution, p.Priority, p.Category, p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert problem: %w", err)
	}
	return nil
}

func (s *ProblemService) GetByID(ctx context.Context, id string) (*model.Problem, error) {
	p, err := scanProblem(s.db.QueryRow(ctx,
		`SELECT `+problemColumns+` FROM problems WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "problem", id)
	}
	return &p, nil
}

// List returns problems newest first. Search matches description and root
// cause.
func (s *ProblemService) List(ctx context.Context, params request.ListParams) ([]model.Problem, bool, error) {
	limit := pageLimit(params.Limit)
	q := newListQuery("problems")
	q.equal("priority", params.Priority)
	q.equal("category", params.Category)
	q.applyCommon(params, "description", "root_cause")
	sql, args := q.build(problemColumns, limit)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list problems: %w", err)
	}
	return collect(rows, limit, "problem", scanProblem)
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
