// Package report renders report documents as PDF or XLSX and publishes the
// generated files.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/platform"
	"github.com/corpac/coba/internal/validation"
)

// Field is one label/value line of a document summary.
type Field struct {
	Label string
	Value string
}

// Table is the tabular body of a document.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Document is the format independent content of a generated report.
type Document struct {
	Title       string
	Period      string
	Description string
	Summary     []Field
	Table       Table
	GeneratedAt time.Time
}

// New starts a document for r. The caller fills Summary and Table.
func New(r model.Report, now time.Time) Document {
	return Document{
		Title:       r.Name,
		Period:      fmt.Sprintf("Periodo: %s a %s", r.DateFrom.Format(validation.DateLayout), r.DateTo.Format(validation.DateLayout)),
		Description: r.Description,
		GeneratedAt: now,
	}
}

// FileName is the object key of a report's generated file.
func FileName(r model.Report) string {
	return platform.ObjectKey(r.ID, r.Format.Extension())
}

// Render encodes doc in the requested format and returns the bytes with
// their content type.
func Render(doc Document, format model.ReportFormat) ([]byte, string, error) {
	switch format {
	case model.FormatPDF:
		b, err := RenderPDF(doc)
		return b, "application/pdf", err
	case model.FormatExcel:
		b, err := RenderXLSX(doc)
		return b, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	}
	return nil, "", fmt.Errorf("unsupported report format %q", format)
}

func day(t time.Time) string {
	return t.Format(validation.DateLayout)
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func SLATable(slas []model.SLA) Table {
	t := Table{Columns: []string{"ID", "Nombre", "Objetivo", "Actual", "Estado", "Actualizado"}}
	for _, s := range slas {
		t.Rows = append(t.Rows, []string{s.ID, s.Name, pct(s.Target), pct(s.CurrentValue), string(s.Status), day(s.LastUpdated)})
	}
	return t
}

func IncidentTable(incidents []model.Incident) Table {
	t := Table{Columns: []string{"ID", "Título", "Tipo", "Prioridad", "Categoría", "Estado", "Servicio", "Creado"}}
	for _, i := range incidents {
		t.Rows = append(t.Rows, []string{i.ID, i.Title, string(i.Type), string(i.Priority), string(i.Category),
			string(i.Status), deref(i.ServiceID), day(i.CreatedAt)})
	}
	return t
}

func AuditTable(audits []model.Audit) Table {
	t := Table{Columns: []string{"ID", "Fecha", "Alcance", "Resultado", "Estado", "Recomendaciones"}}
	for _, a := range audits {
		t.Rows = append(t.Rows, []string{a.ID, day(a.Date), a.Scope, a.Result, string(a.Status), strings.Join(a.Recommendations, "; ")})
	}
	return t
}

func NonConformityTable(ncs []model.NonConformity) Table {
	t := Table{Columns: []string{"ID", "Descripción", "Causa", "Acción correctiva", "Categoría", "Severidad", "Estado"}}
	for _, n := range ncs {
		t.Rows = append(t.Rows, []string{n.ID, n.Description, n.Cause, n.CorrectiveAction, string(n.Category),
			string(n.Severity), string(n.Status)})
	}
	return t
}

func RiskTable(risks []model.Risk) Table {
	t := Table{Columns: []string{"ID", "Descripción", "Prioridad", "Mitigación", "Categoría", "Estado"}}
	for _, r := range risks {
		t.Rows = append(t.Rows, []string{r.ID, r.Description, string(r.Priority), r.Mitigation, string(r.Category), string(r.Status)})
	}
	return t
}

func AssetTable(assets []model.Asset) Table {
	t := Table{Columns: []string{"ID", "Nombre", "Tipo", "Estado", "Servicio", "Ubicación"}}
	for _, a := range assets {
		t.Rows = append(t.Rows, []string{a.ID, a.Name, string(a.Type), string(a.Status), deref(a.ServiceID), a.Location})
	}
	return t
}

func ProblemTable(problems []model.Problem) Table {
	t := Table{Columns: []string{"ID", "Descripción", "Causa raíz", "Solución", "Prioridad", "Categoría", "Estado"}}
	for _, p := range problems {
		t.Rows = append(t.Rows, []string{p.ID, p.Description, deref(p.RootCause), deref(p.Solution),
			string(p.Priority), string(p.Category), string(p.Status)})
	}
	return t
}

// DashboardContent summarizes the KPIs and lists the active alerts.
func DashboardContent(s model.DashboardSnapshot) ([]Field, Table) {
	summary := []Field{
		{"Disponibilidad del sistema", pct(s.KPIs.SystemAvailability) + " (" + string(s.Bands.SystemAvailability) + ")"},
		{"Incidentes activos", strconv.Itoa(s.KPIs.ActiveIncidents) + " (" + string(s.Bands.ActiveIncidents) + ")"},
		{"Cumplimiento de SLA", strconv.Itoa(s.KPIs.SLACompliance) + "% (" + string(s.Bands.SLACompliance) + ")"},
		{"Satisfacción del cliente", strconv.Itoa(s.KPIs.CustomerSatisfaction) + "% (" + string(s.Bands.CustomerSatisfaction) + ")"},
		{"SLAs que requieren atención", strconv.Itoa(s.SLAsNeedingAttention)},
	}
	t := Table{Columns: []string{"Alerta", "Descripción", "Severidad", "Origen", "Registro"}}
	for _, a := range s.Alerts {
		t.Rows = append(t.Rows, []string{a.Title, a.Description, string(a.Severity), string(a.Source), a.RecordID})
	}
	return summary, t
}

// ISOContent lists every clause of the given standards with one summary
// line per standard.
func ISOContent(standards []model.ISOCompliance) ([]Field, Table) {
	var summary []Field
	t := Table{Columns: []string{"Norma", "Cláusula", "Requisito", "Estado", "Evidencia"}}
	for _, std := range standards {
		summary = append(summary, Field{std.Title, strconv.Itoa(std.CompliancePercent) + "% de cumplimiento"})
		for _, r := range std.Requirements {
			t.Rows = append(t.Rows, []string{string(std.Standard), r.Clause, r.Title, string(r.Status), r.Source})
		}
	}
	return summary, t
}
