package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/corpac/coba/internal/controller"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/validation"
)

// Collection is one controller-driven collection with its record type
// erased, so commands can address it by name.
type Collection interface {
	Name() string
	Columns() []string
	// List refreshes and returns the visible rows for search.
	List(ctx context.Context, search string) ([][]string, error)
	// Show refreshes and returns the record with the ID.
	Show(ctx context.Context, id string) (any, error)
	// Create decodes a YAML form and submits it.
	Create(ctx context.Context, form []byte) (validation.Errors, error)
}

type layout[T any] struct {
	name    string
	noun    string
	columns []string
	row     func(T) []string
	id      func(T) string
	search  func(T) []string
}

type collection[T, F any] struct {
	layout[T]
	ctrl *controller.Controller[T, F]
}

func newCollection[T, F any](l layout[T], src controller.Source[T, F], n controller.Notifier) *collection[T, F] {
	return &collection[T, F]{
		layout: l,
		ctrl:   controller.New(src, n, controller.Options[T]{Name: l.noun, ID: l.id, SearchText: l.search}),
	}
}

func (c *collection[T, F]) Name() string      { return c.name }
func (c *collection[T, F]) Columns() []string { return c.columns }

func (c *collection[T, F]) List(ctx context.Context, search string) ([][]string, error) {
	if err := c.ctrl.Refresh(ctx); err != nil {
		return nil, err
	}
	c.ctrl.SetSearch(search)

	var rows [][]string
	for _, item := range c.ctrl.Visible() {
		rows = append(rows, c.row(item))
	}
	return rows, nil
}

func (c *collection[T, F]) Show(ctx context.Context, id string) (any, error) {
	if err := c.ctrl.Refresh(ctx); err != nil {
		return nil, err
	}
	defer c.ctrl.Close()
	return c.ctrl.View(id)
}

func (c *collection[T, F]) Create(ctx context.Context, data []byte) (validation.Errors, error) {
	form, err := DecodeForm[F](data)
	if err != nil {
		return nil, err
	}
	c.ctrl.BeginCreate()
	return c.ctrl.Submit(ctx, form)
}

// CollectionNames are the registry keys in menu order.
var CollectionNames = []string{
	"services", "slas", "incidents", "audits", "non-conformities",
	"risks", "assets", "problems", "reports",
}

// Registry is the set of collections cobactl knows, keyed by the same names
// as the REST paths.
type Registry map[string]Collection

func (r Registry) Get(name string) (Collection, error) {
	c, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return c, nil
}

func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func pct(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) + "%" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func period(r model.Report) string {
	return r.DateFrom.Format(validation.DateLayout) + " a " + r.DateTo.Format(validation.DateLayout)
}

var (
	serviceLayout = layout[model.Service]{
		name:    "services",
		noun:    "servicio",
		columns: []string{"ID", "NOMBRE", "ESTADO"},
		row:     func(s model.Service) []string { return []string{s.ID, s.Name, string(s.Status)} },
		id:      func(s model.Service) string { return s.ID },
		search:  func(s model.Service) []string { return []string{s.Name, s.Description} },
	}
	slaLayout = layout[model.SLA]{
		name:    "slas",
		noun:    "SLA",
		columns: []string{"ID", "NOMBRE", "OBJETIVO", "ACTUAL", "ESTADO"},
		row: func(s model.SLA) []string {
			return []string{s.ID, s.Name, pct(s.Target), pct(s.CurrentValue), string(s.Status)}
		},
		id:     func(s model.SLA) string { return s.ID },
		search: func(s model.SLA) []string { return []string{s.Name} },
	}
	incidentLayout = layout[model.Incident]{
		name:    "incidents",
		noun:    "incidente",
		columns: []string{"ID", "TITULO", "PRIORIDAD", "ESTADO", "TIPO"},
		row: func(i model.Incident) []string {
			return []string{i.ID, i.Title, string(i.Priority), string(i.Status), string(i.Type)}
		},
		id:     func(i model.Incident) string { return i.ID },
		search: func(i model.Incident) []string { return []string{i.Title, i.Description} },
	}
	auditLayout = layout[model.Audit]{
		name:    "audits",
		noun:    "auditoría",
		columns: []string{"ID", "FECHA", "ALCANCE", "RESULTADO", "ESTADO"},
		row: func(a model.Audit) []string {
			return []string{a.ID, a.Date.Format(validation.DateLayout), a.Scope, a.Result, string(a.Status)}
		},
		id:     func(a model.Audit) string { return a.ID },
		search: func(a model.Audit) []string { return []string{a.Scope, a.Result} },
	}
	nonConformityLayout = layout[model.NonConformity]{
		name:    "non-conformities",
		noun:    "no conformidad",
		columns: []string{"ID", "DESCRIPCION", "SEVERIDAD", "ESTADO"},
		row: func(n model.NonConformity) []string {
			return []string{n.ID, n.Description, string(n.Severity), string(n.Status)}
		},
		id:     func(n model.NonConformity) string { return n.ID },
		search: func(n model.NonConformity) []string { return []string{n.Description, n.Cause} },
	}
	riskLayout = layout[model.Risk]{
		name:    "risks",
		noun:    "riesgo",
		columns: []string{"ID", "DESCRIPCION", "PRIORIDAD", "CATEGORIA", "ESTADO"},
		row: func(r model.Risk) []string {
			return []string{r.ID, r.Description, string(r.Priority), string(r.Category), string(r.Status)}
		},
		id:     func(r model.Risk) string { return r.ID },
		search: func(r model.Risk) []string { return []string{r.Description, r.Mitigation} },
	}
	assetLayout = layout[model.Asset]{
		name:    "assets",
		noun:    "activo",
		columns: []string{"ID", "NOMBRE", "TIPO", "ESTADO", "UBICACION"},
		row: func(a model.Asset) []string {
			return []string{a.ID, a.Name, string(a.Type), string(a.Status), a.Location}
		},
		id:     func(a model.Asset) string { return a.ID },
		search: func(a model.Asset) []string { return []string{a.Name, a.Location} },
	}
	problemLayout = layout[model.Problem]{
		name:    "problems",
		noun:    "problema",
		columns: []string{"ID", "DESCRIPCION", "PRIORIDAD", "ESTADO"},
		row: func(p model.Problem) []string {
			return []string{p.ID, p.Description, string(p.Priority), string(p.Status)}
		},
		id:     func(p model.Problem) string { return p.ID },
		search: func(p model.Problem) []string { return []string{p.Description, deref(p.RootCause)} },
	}
	reportLayout = layout[model.Report]{
		name:    "reports",
		noun:    "reporte",
		columns: []string{"ID", "NOMBRE", "TIPO", "FORMATO", "PERIODO", "ESTADO", "ARCHIVO"},
		row: func(r model.Report) []string {
			return []string{r.ID, r.Name, string(r.Type), string(r.Format), period(r), string(r.Status), deref(r.FileURL)}
		},
		id:     func(r model.Report) string { return r.ID },
		search: func(r model.Report) []string { return []string{r.Name} },
	}
)
