package activity

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/model"
)

type putCall struct {
	key         string
	contentType string
	body        []byte
}

type fakeStore struct {
	calls []putCall
	err   error
}

func (f *fakeStore) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, putCall{key, contentType, body})
	return "https://files.example.com/" + key, nil
}

var fixedNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestReport(t *testing.T, db *mockDB, store *fakeStore) *Report {
	t.Helper()
	services, err := core.NewServices(db, nil, core.Options{TaskQueue: "coba-tasks", CustomerSatisfaction: 92})
	require.NoError(t, err)
	a := NewReport(services, store, zerolog.Nop())
	a.now = func() time.Time { return fixedNow }
	return a
}

func reportOf(typ model.ReportType, format model.ReportFormat) model.Report {
	return model.Report{
		ID:       "REP781600",
		Name:     "Informe",
		Type:     typ,
		Format:   format,
		DateFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:   model.ReportInProgress,
	}
}

func isNonRetryable(err error) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.NonRetryable()
}

func TestReport_GenerateReportFile_SLAPDF(t *testing.T) {
	db := &mockDB{}
	store := &fakeStore{}
	a := newTestReport(t, db, store)
	ctx := context.Background()

	rows := newFakeRows(func(dest ...any) error {
		*(dest[0].(*string)) = "SLA1"
		*(dest[1].(*string)) = "Disponibilidad"
		*(dest[2].(*string)) = ""
		*(dest[3].(*float64)) = 99.9
		*(dest[4].(*float64)) = 99.95
		*(dest[5].(*model.SLAStatus)) = model.SLACompliant
		*(dest[6].(*time.Time)) = fixedNow
		*(dest[7].(*time.Time)) = fixedNow
		return nil
	})
	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil).Once()

	url, err := a.GenerateReportFile(ctx, reportOf(model.ReportSLA, model.FormatPDF))
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/REP781600.pdf", url)
	require.Len(t, store.calls, 1)
	assert.Equal(t, "REP781600.pdf", store.calls[0].key)
	assert.Equal(t, "application/pdf", store.calls[0].contentType)
	assert.True(t, bytes.HasPrefix(store.calls[0].body, []byte("%PDF")))

	sql := db.Calls[0].Arguments.Get(1).(string)
	assert.Contains(t, sql, "FROM slas")
	assert.Contains(t, sql, "created_at >=")
	args := db.Calls[0].Arguments.Get(2).([]any)
	assert.Contains(t, args, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, args, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, args, request.MaxLimit+1)
	db.AssertExpectations(t)
}

func TestReport_GenerateReportFile_ISOExcel(t *testing.T) {
	db := &mockDB{}
	store := &fakeStore{}
	a := newTestReport(t, db, store)

	url, err := a.GenerateReportFile(context.Background(), reportOf(model.ReportISOCompliance, model.FormatExcel))
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/REP781600.xlsx", url)
	require.Len(t, store.calls, 1)
	assert.Contains(t, store.calls[0].contentType, "spreadsheetml")
	db.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}

func TestReport_GenerateReportFile_QueryError(t *testing.T) {
	db := &mockDB{}
	store := &fakeStore{}
	a := newTestReport(t, db, store)
	ctx := context.Background()

	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := a.GenerateReportFile(ctx, reportOf(model.ReportRisks, model.FormatPDF))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load risks report data")
	assert.False(t, isNonRetryable(err))
	assert.Empty(t, store.calls)
}

func TestReport_GenerateReportFile_StoreError(t *testing.T) {
	db := &mockDB{}
	store := &fakeStore{err: errors.New("bucket unreachable")}
	a := newTestReport(t, db, store)

	_, err := a.GenerateReportFile(context.Background(), reportOf(model.ReportISOCompliance, model.FormatPDF))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unreachable")
}

func TestReport_GenerateReportFile_UnknownType(t *testing.T) {
	a := newTestReport(t, &mockDB{}, &fakeStore{})

	_, err := a.GenerateReportFile(context.Background(), reportOf(model.ReportType("sales"), model.FormatPDF))

	require.Error(t, err)
	assert.True(t, isNonRetryable(err))
}

func TestReport_GetReport_NotFound(t *testing.T) {
	db := &mockDB{}
	a := newTestReport(t, db, &fakeStore{})
	ctx := context.Background()

	db.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return(fakeRow(func(...any) error { return pgx.ErrNoRows }))

	_, err := a.GetReport(ctx, "REP000404")

	require.Error(t, err)
	assert.True(t, isNonRetryable(err))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestReport_CompleteReport(t *testing.T) {
	db := &mockDB{}
	a := newTestReport(t, db, &fakeStore{})
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	err := a.CompleteReport(ctx, CompleteReportParams{ReportID: "REP000001", FileURL: "https://files.example.com/REP000001.pdf"})
	require.NoError(t, err)

	args := db.Calls[0].Arguments.Get(2).([]any)
	assert.Equal(t, "REP000001", args[0])
	assert.Equal(t, model.ReportCompleted, args[1])
	assert.Equal(t, fixedNow, args[2])
	assert.Equal(t, "https://files.example.com/REP000001.pdf", args[3])
}

func TestReport_CompleteReport_AlreadyFinished(t *testing.T) {
	db := &mockDB{}
	a := newTestReport(t, db, &fakeStore{})
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	err := a.CompleteReport(ctx, CompleteReportParams{ReportID: "REP000001", FileURL: "x"})

	require.Error(t, err)
	assert.True(t, isNonRetryable(err))
}

func TestReport_FailReport(t *testing.T) {
	db := &mockDB{}
	a := newTestReport(t, db, &fakeStore{})
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	require.NoError(t, a.FailReport(ctx, "REP000001"))
	args := db.Calls[0].Arguments.Get(2).([]any)
	assert.Equal(t, "REP000001", args[0])
	assert.Equal(t, model.ReportFailed, args[1])
}

func TestListAll_FollowsCursor(t *testing.T) {
	var cursors []string
	list := func(_ context.Context, p request.ListParams) ([]string, bool, error) {
		cursors = append(cursors, p.Cursor)
		assert.Equal(t, request.MaxLimit, p.Limit)
		switch p.Cursor {
		case "":
			return []string{"a", "b"}, true, nil
		case "b":
			return []string{"c"}, false, nil
		}
		return nil, false, errors.New("unexpected cursor")
	}

	out, err := listAll(context.Background(), list, request.ListParams{}, func(s string) string { return s })

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out)
	assert.Equal(t, []string{"", "b"}, cursors)
}

func TestReport_FailStaleReports(t *testing.T) {
	db := &mockDB{}
	a := newTestReport(t, db, &fakeStore{})
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.NewCommandTag("UPDATE 3"), nil)

	n, err := a.FailStaleReports(ctx, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	args := db.Calls[0].Arguments.Get(2).([]any)
	assert.Equal(t, fixedNow.Add(-15*time.Minute), args[2])
}
