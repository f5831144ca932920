package report

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/corpac/coba/internal/config"
	"github.com/corpac/coba/internal/model"
)

func sampleReport(format model.ReportFormat) model.Report {
	return model.Report{
		ID:          "REP000001",
		Name:        "Informe de SLA",
		Type:        model.ReportSLA,
		Format:      format,
		DateFrom:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Description: "Cumplimiento mensual",
	}
}

func sampleDocument() Document {
	doc := New(sampleReport(model.FormatPDF), time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC))
	doc.Summary = []Field{{"Total", "2"}}
	doc.Table = SLATable([]model.SLA{
		{ID: "SLA1", Name: "Disponibilidad", Target: 99.9, CurrentValue: 99.95, Status: model.SLACompliant, LastUpdated: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "SLA2", Name: "Tiempo de respuesta", Target: 95, CurrentValue: 80, Status: model.SLANonCompliant, LastUpdated: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
	})
	return doc
}

func TestNew(t *testing.T) {
	doc := New(sampleReport(model.FormatPDF), time.Now())

	assert.Equal(t, "Informe de SLA", doc.Title)
	assert.Equal(t, "Periodo: 2024-01-01 a 2024-01-31", doc.Period)
	assert.Equal(t, "Cumplimiento mensual", doc.Description)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "REP000001.pdf", FileName(sampleReport(model.FormatPDF)))
	assert.Equal(t, "REP000001.xlsx", FileName(sampleReport(model.FormatExcel)))
}

func TestSLATable(t *testing.T) {
	tbl := sampleDocument().Table

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"SLA1", "Disponibilidad", "99.9%", "99.95%", "compliant", "2024-01-15"}, tbl.Rows[0])
	assert.Len(t, tbl.Columns, len(tbl.Rows[0]))
}

func TestProblemTable_NilPointers(t *testing.T) {
	tbl := ProblemTable([]model.Problem{{ID: "PRB1", Description: "Caída", Priority: model.PriorityHigh}})

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "", tbl.Rows[0][2])
	assert.Equal(t, "", tbl.Rows[0][3])
}

func TestDashboardContent(t *testing.T) {
	summary, tbl := DashboardContent(model.DashboardSnapshot{
		KPIs:                 model.KPIs{SystemAvailability: 99.95, ActiveIncidents: 3, SLACompliance: 90, CustomerSatisfaction: 92},
		Bands:                model.KPIBands{SystemAvailability: model.BandGood, ActiveIncidents: model.BandCritical, SLACompliance: model.BandWarning, CustomerSatisfaction: model.BandGood},
		Alerts:               []model.Alert{{Title: "SLA en riesgo", Severity: model.AlertWarning, Source: model.AlertSourceSLA, RecordID: "SLA1"}},
		SLAsNeedingAttention: 1,
	})

	require.Len(t, summary, 5)
	assert.Equal(t, "99.95% (good)", summary[0].Value)
	assert.Equal(t, "3 (critical)", summary[1].Value)
	assert.Equal(t, "1", summary[4].Value)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "SLA1", tbl.Rows[0][4])
}

func TestISOContent(t *testing.T) {
	summary, tbl := ISOContent([]model.ISOCompliance{{
		Standard:          model.ISO9001,
		Title:             "ISO 9001",
		CompliancePercent: 50,
		Requirements: []model.ISORequirement{
			{Clause: "7.5", Title: "Información documentada", Status: model.RequirementCompliant, Source: "audits"},
			{Clause: "10.2", Title: "No conformidad", Status: model.RequirementInProgress, Source: "non_conformities"},
		},
	}})

	require.Len(t, summary, 1)
	assert.Equal(t, "50% de cumplimiento", summary[0].Value)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"iso9001", "10.2", "No conformidad", "in_progress", "non_conformities"}, tbl.Rows[1])
}

func TestRender_PDF(t *testing.T) {
	b, ct, err := Render(sampleDocument(), model.FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRenderPDF_EmptyTable(t *testing.T) {
	doc := sampleDocument()
	doc.Table.Rows = nil

	b, err := RenderPDF(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestRenderPDF_ManyRows(t *testing.T) {
	doc := sampleDocument()
	for i := 0; i < 200; i++ {
		doc.Table.Rows = append(doc.Table.Rows, []string{"SLA", "Un nombre muy largo que no cabe en la celda de la tabla", "99%", "98%", "at_risk", "2024-01-01"})
	}

	b, err := RenderPDF(doc)

	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestRender_XLSX(t *testing.T) {
	b, ct, err := Render(sampleDocument(), model.FormatExcel)
	require.NoError(t, err)
	assert.Contains(t, ct, "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	cell := func(name string) string {
		v, err := f.GetCellValue(sheetName, name)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Informe de SLA", cell("A1"))
	assert.Equal(t, "Periodo: 2024-01-01 a 2024-01-31", cell("A2"))
	assert.Equal(t, "Cumplimiento mensual", cell("A4"))
	assert.Equal(t, "Total", cell("A6"))
	assert.Equal(t, "2", cell("B6"))
	assert.Equal(t, "ID", cell("A8"))
	assert.Equal(t, "SLA1", cell("A9"))
	assert.Equal(t, "Tiempo de respuesta", cell("B10"))
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, _, err := Render(sampleDocument(), model.ReportFormat("CSV"))
	assert.Error(t, err)
}

func TestNewStore_Unconfigured(t *testing.T) {
	store := NewStore(config.StorageConfig{}, "https://example.com/reports")

	url, err := store.Put(context.Background(), "REP000001.pdf", "application/pdf", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/reports/REP000001.pdf", url)
}

func TestS3Store_Put(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		ctype  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method, path, ctype = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewStore(config.StorageConfig{
		Endpoint:  srv.URL,
		Bucket:    "reports",
		AccessKey: "key",
		SecretKey: "secret",
		Region:    "us-east-1",
	}, "https://files.example.com")
	require.IsType(t, &S3Store{}, store)

	url, err := store.Put(context.Background(), "REP000001.xlsx", "application/vnd.ms-excel", []byte("data"))

	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/REP000001.xlsx", url)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/reports/REP000001.xlsx", path)
	assert.Equal(t, "application/vnd.ms-excel", ctype)
}

func TestS3Store_PutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	store := NewS3Store(config.StorageConfig{Endpoint: srv.URL, Bucket: "reports", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}, "https://files.example.com")

	_, err := store.Put(context.Background(), "REP000001.pdf", "application/pdf", []byte("data"))

	assert.Error(t, err)
}
