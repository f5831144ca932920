// Package demo holds the demo data set used to seed development databases
// and to run cobactl without an API.
package demo

import (
	"time"

	"github.com/corpac/coba/internal/model"
)

// Dataset is one fixture per collection, each newest first.
type Dataset struct {
	Services        []model.Service
	SLAs            []model.SLA
	Incidents       []model.Incident
	Audits          []model.Audit
	NonConformities []model.NonConformity
	Risks           []model.Risk
	Assets          []model.Asset
	Problems        []model.Problem
	Reports         []model.Report
}

func ptr[T any](v T) *T { return &v }

// Data builds the data set with timestamps relative to now.
func Data(now time.Time) *Dataset {
	ago := func(d time.Duration) time.Time { return now.Add(-d).Truncate(time.Second) }
	day := 24 * time.Hour
	date := func(daysAgo int) time.Time {
		y, m, d := now.AddDate(0, 0, -daysAgo).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return &Dataset{
		Services: []model.Service{
			{ID: "svc-mesa-ayuda", Name: "Mesa de ayuda", Description: "Atención de incidentes y requerimientos de usuarios", Status: model.ServiceActive, CreatedAt: ago(10 * day)},
			{ID: "svc-correo", Name: "Correo corporativo", Description: "Servicio de correo electrónico y calendario", Status: model.ServiceActive, CreatedAt: ago(30 * day)},
			{ID: "svc-erp", Name: "ERP", Description: "Sistema de planificación de recursos empresariales", Status: model.ServiceActive, CreatedAt: ago(60 * day)},
			{ID: "svc-intranet", Name: "Intranet antigua", Description: "Portal interno en proceso de retiro", Status: model.ServiceInactive, CreatedAt: ago(200 * day)},
		},
		SLAs: []model.SLA{
			{ID: "sla-respuesta", Name: "Tiempo de respuesta de mesa de ayuda", Description: "Tickets atendidos dentro de 30 minutos", Target: 95, CurrentValue: 91, Status: model.SLAAtRisk, LastUpdated: ago(2 * time.Hour), CreatedAt: ago(20 * day)},
			{ID: "sla-correo", Name: "Disponibilidad del correo", Target: 99.9, CurrentValue: 99.95, Status: model.SLACompliant, LastUpdated: ago(3 * time.Hour), CreatedAt: ago(30 * day)},
			{ID: "sla-erp", Name: "Disponibilidad del ERP", Target: 99.9, CurrentValue: 99.8, Status: model.SLAAtRisk, LastUpdated: ago(1 * time.Hour), CreatedAt: ago(60 * day)},
			{ID: "sla-backup", Name: "Respaldos completados", Description: "Respaldos nocturnos sin errores", Target: 100, CurrentValue: 88, Status: model.SLANonCompliant, LastUpdated: ago(5 * time.Hour), CreatedAt: ago(90 * day)},
		},
		Incidents: []model.Incident{
			{ID: "INC482913", Title: "Caída del ERP", Description: "El ERP no responde desde las 9:00", Priority: model.PriorityCritical, Status: model.IncidentInProgress, Type: model.TypeIncident, Category: model.IncidentCategorySoftware, ServiceID: ptr("svc-erp"), CreatedAt: ago(3 * time.Hour), UpdatedAt: ago(1 * time.Hour)},
			{ID: "REQ371204", Title: "Alta de usuario", Description: "Crear cuenta de correo para nuevo analista", Priority: model.PriorityLow, Status: model.IncidentOpen, Type: model.TypeRequest, Category: model.IncidentCategoryAccess, ServiceID: ptr("svc-correo"), CreatedAt: ago(1 * day), UpdatedAt: ago(1 * day)},
			{ID: "INC265530", Title: "Lentitud en la red", Description: "Latencia alta en el piso 3", Priority: model.PriorityMedium, Status: model.IncidentOpen, Type: model.TypeIncident, Category: model.IncidentCategoryNetwork, CreatedAt: ago(2 * day), UpdatedAt: ago(2 * day)},
			{ID: "INC118842", Title: "Impresora sin servicio", Description: "La impresora del área contable no imprime", Priority: model.PriorityLow, Status: model.IncidentResolved, Type: model.TypeIncident, Category: model.IncidentCategoryHardware, CreatedAt: ago(6 * day), UpdatedAt: ago(5 * day)},
		},
		Audits: []model.Audit{
			{ID: "aud-2024-q3", Date: date(-14), Scope: "Gestión de cambios", Result: model.DefaultAuditResult, Status: model.AuditPlanned, Recommendations: []string{}, CreatedAt: ago(3 * day)},
			{ID: "aud-2024-q2", Date: date(20), Scope: "Gestión de incidentes ISO 20000", Result: "Conforme con observaciones", Status: model.AuditCompleted,
				Recommendations: []string{"Documentar escalamientos", "Revisar tiempos de respuesta"}, CreatedAt: ago(25 * day)},
			{ID: "aud-2024-q1", Date: date(110), Scope: "Control de documentos ISO 9001", Result: "Conforme", Status: model.AuditCompleted,
				Recommendations: []string{"Actualizar procedimiento de respaldo"}, CreatedAt: ago(115 * day)},
		},
		NonConformities: []model.NonConformity{
			{ID: "nc-escalamiento", Description: "Escalamientos sin registro", Cause: "Procedimiento no actualizado", CorrectiveAction: "Actualizar y difundir el procedimiento", Category: model.NonConformityISO20000, Severity: model.SeverityMajor, Status: model.NonConformityInProgress, CreatedAt: ago(20 * day)},
			{ID: "nc-respaldo", Description: "Respaldos fallidos no reportados", Cause: "Falta de monitoreo", CorrectiveAction: "Configurar alertas de respaldo", Category: model.NonConformitySLA, Severity: model.SeverityCritical, Status: model.NonConformityOpen, CreatedAt: ago(4 * day)},
		},
		Risks: []model.Risk{
			{ID: "risk-ransomware", Description: "Ataque de ransomware sobre servidores de archivos", Priority: model.PriorityHigh, Mitigation: "Respaldos fuera de línea y parches mensuales", Category: model.RiskSecurity, Status: model.RiskOpen, CreatedAt: ago(7 * day)},
			{ID: "risk-proveedor", Description: "Dependencia de un único proveedor de enlace", Priority: model.PriorityMedium, Mitigation: "Contratar enlace de respaldo", Category: model.RiskOperational, Status: model.RiskMitigated, CreatedAt: ago(40 * day)},
		},
		Assets: []model.Asset{
			{ID: "asset-srv-erp", Name: "Servidor ERP01", Type: model.AssetHardware, Status: model.AssetOperational, ServiceID: ptr("svc-erp"), Description: "Servidor de aplicaciones del ERP", Location: "Centro de datos principal", CreatedAt: ago(60 * day)},
			{ID: "asset-lic-correo", Name: "Licencias de correo", Type: model.AssetSoftware, Status: model.AssetOperational, ServiceID: ptr("svc-correo"), Location: "Nube", CreatedAt: ago(30 * day)},
			{ID: "asset-switch-p3", Name: "Switch piso 3", Type: model.AssetHardware, Status: model.AssetMaintenance, Location: "Piso 3, gabinete B", CreatedAt: ago(90 * day)},
		},
		Problems: []model.Problem{
			{ID: "prb-erp-memoria", Description: "Caídas recurrentes del ERP", RootCause: ptr("Fuga de memoria en el módulo de facturación"), Priority: model.PriorityHigh, Category: model.ProblemApplication, Status: model.ProblemInvestigating, CreatedAt: ago(2 * day)},
			{ID: "prb-latencia", Description: "Latencia intermitente en la red interna", Priority: model.PriorityMedium, Category: model.ProblemNetwork, Status: model.ProblemOpen, CreatedAt: ago(9 * day)},
		},
		Reports: []model.Report{
			{ID: "REP120443", Name: "Cumplimiento de SLA mensual", Type: model.ReportSLA, Format: model.FormatPDF, DateFrom: date(30), DateTo: date(0), Description: "Resumen para comité", Status: model.ReportCompleted, GeneratedAt: ptr(ago(23 * time.Hour)), FileURL: ptr("https://example.com/reports/REP120443.pdf"), CreatedAt: ago(1 * day)},
		},
	}
}
