package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/corpac/coba/internal/model"
)

// WriteTable prints rows aligned under columns.
func WriteTable(w io.Writer, columns []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteRecord prints one record as indented JSON with the API's field names.
func WriteRecord(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func WriteDashboard(w io.Writer, s *model.DashboardSnapshot) error {
	rows := [][]string{
		{"Disponibilidad del sistema", fmt.Sprintf("%s%%", formatFloat(s.KPIs.SystemAvailability)), string(s.Bands.SystemAvailability)},
		{"Incidentes activos", fmt.Sprint(s.KPIs.ActiveIncidents), string(s.Bands.ActiveIncidents)},
		{"Cumplimiento de SLA", fmt.Sprintf("%d%%", s.KPIs.SLACompliance), string(s.Bands.SLACompliance)},
		{"Satisfacción del cliente", fmt.Sprintf("%d%%", s.KPIs.CustomerSatisfaction), string(s.Bands.CustomerSatisfaction)},
		{"SLAs que requieren atención", fmt.Sprint(s.SLAsNeedingAttention), ""},
	}
	if err := WriteTable(w, []string{"KPI", "VALOR", "NIVEL"}, rows); err != nil {
		return err
	}

	if len(s.Alerts) == 0 {
		_, err := fmt.Fprintln(w, "\nSin alertas.")
		return err
	}
	fmt.Fprintln(w)
	alerts := make([][]string, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		alerts = append(alerts, []string{string(a.Severity), a.Title, a.Description})
	}
	return WriteTable(w, []string{"SEVERIDAD", "ALERTA", "DETALLE"}, alerts)
}

func WriteISO(w io.Writer, c *model.ISOCompliance) error {
	fmt.Fprintf(w, "%s: %d%% de cumplimiento (%d cumple, %d en progreso, %d no cumple)\n\n",
		c.Title, c.CompliancePercent, c.Compliant, c.InProgress, c.NonCompliant)
	rows := make([][]string, 0, len(c.Requirements))
	for _, r := range c.Requirements {
		rows = append(rows, []string{r.Clause, r.Title, string(r.Status), r.Source})
	}
	return WriteTable(w, []string{"CLAUSULA", "REQUISITO", "ESTADO", "FUENTE"}, rows)
}

func formatFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
