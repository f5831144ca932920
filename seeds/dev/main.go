package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/demo"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/rules"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("Seeding COBA database...")

	d := demo.Data(time.Now())
	s := seeder{ctx: ctx, pool: pool}

	fmt.Printf("  Inserting %d services...\n", len(d.Services))
	for _, v := range d.Services {
		s.insert("services", v.ID, cols{"name": v.Name, "description": v.Description, "status": v.Status, "created_at": v.CreatedAt})
	}

	fmt.Printf("  Inserting %d SLAs...\n", len(d.SLAs))
	for _, v := range d.SLAs {
		s.insert("slas", v.ID, cols{
			"name": v.Name, "description": v.Description, "target": v.Target, "current_value": v.CurrentValue,
			"status": v.Status, "last_updated": v.LastUpdated, "created_at": v.CreatedAt,
		})
	}

	fmt.Printf("  Inserting %d incidents and requests...\n", len(d.Incidents))
	for _, v := range d.Incidents {
		s.insert("incidents", v.ID, cols{
			"title": v.Title, "description": v.Description, "priority": v.Priority, "status": v.Status,
			"type": v.Type, "category": v.Category, "service_id": v.ServiceID,
			"created_at": v.CreatedAt, "updated_at": v.UpdatedAt,
		})
	}

	fmt.Printf("  Inserting %d audits...\n", len(d.Audits))
	for _, v := range d.Audits {
		s.insert("audits", v.ID, cols{
			"date": v.Date, "scope": v.Scope, "result": v.Result, "status": v.Status,
			"recommendations": v.Recommendations, "created_at": v.CreatedAt,
		})
	}

	fmt.Printf("  Inserting %d non-conformities...\n", len(d.NonConformities))
	for _, v := range d.NonConformities {
		s.insert("non_conformities", v.ID, cols{
			"description": v.Description, "cause": v.Cause, "corrective_action": v.CorrectiveAction,
			"category": v.Category, "severity": v.Severity, "status": v.Status, "created_at": v.CreatedAt,
		})
	}

	fmt.Printf("  Inserting %d risks...\n", len(d.Risks))
	for _, v := range d.Risks {
		s.insert("risks", v.ID, cols{
			"description": v.Description, "priority": v.Priority, "mitigation": v.Mitigation,
			"category": v.Category, "status": v.Status, "created_at": v.CreatedAt,
		})
	}

	fmt.Printf("  Inserting %d assets...\n", len(d.Assets))
	for _, v := range d.Assets {
		s.insert("assets", v.ID, cols{
			"name": v.Name, "type": v.Type, "status": v.Status, "service_id": v.ServiceID,
			"description": v.Description, "location": v.Location, "created_at": v.CreatedAt,
		})
	}

	fmt.Printf("  Inserting %d problems...\n", len(d.Problems))
	for _, v := range d.Problems {
		s.insert("problems", v.ID, cols{
			"description": v.Description, "root_cause": v.RootCause, "solution": v.Solution,
			"priority": v.Priority, "category": v.Category, "status": v.Status, "created_at": v.CreatedAt,
		})
	}

	fmt.Printf("  Inserting %d reports...\n", len(d.Reports))
	for _, v := range d.Reports {
		s.insert("reports", v.ID, cols{
			"name": v.Name, "type": v.Type, "format": v.Format, "date_from": v.DateFrom, "date_to": v.DateTo,
			"description": v.Description, "status": v.Status, "generated_at": v.GeneratedAt,
			"file_url": v.FileURL, "created_at": v.CreatedAt,
		})
	}

	fmt.Println("  Storing customer satisfaction setting...")
	settings := core.NewSettingsService(pool)
	if _, err := settings.Set(ctx, model.SettingCustomerSatisfaction, strconv.Itoa(rules.DefaultCustomerSatisfaction)); err != nil {
		fmt.Fprintf(os.Stderr, "store setting: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Seed complete!")
	fmt.Println()
	fmt.Println("  Try: cobactl dashboard")
	fmt.Println("       cobactl incidents list --search erp")
}

// cols maps column names to values for one row.
type cols map[string]any

type seeder struct {
	ctx  context.Context
	pool *pgxpool.Pool
}

// insert adds the row unless its ID already exists, so the seed can be run
// repeatedly. Failures abort the seed.
func (s seeder) insert(table, id string, c cols) {
	names := []string{"id"}
	args := []any{id}
	for name, v := range c {
		names = append(names, name)
		args = append(args, v)
	}
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO NOTHING`,
		table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	if _, err := s.pool.Exec(s.ctx, query, args...); err != nil {
		fmt.Fprintf(os.Stderr, "insert %s %s: %v\n", table, id, err)
		os.Exit(1)
	}
}
