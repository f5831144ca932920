package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	temporalmocks "go.temporal.io/sdk/mocks"
)

func TestNewServices(t *testing.T) {
	db := &mockDB{}
	tc := &temporalmocks.Client{}

	svcs, err := NewServices(db, tc, Options{TaskQueue: "coba-tasks", ReportDelay: 3 * time.Second, CustomerSatisfaction: 92})

	require.NoError(t, err)
	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.Catalog)
	assert.NotNil(t, svcs.SLA)
	assert.NotNil(t, svcs.Incident)
	assert.NotNil(t, svcs.Audit)
	assert.NotNil(t, svcs.NonConformity)
	assert.NotNil(t, svcs.Risk)
	assert.NotNil(t, svcs.Asset)
	assert.NotNil(t, svcs.Problem)
	assert.NotNil(t, svcs.Report)
	assert.NotNil(t, svcs.Dashboard)
	assert.NotNil(t, svcs.Settings)
	assert.NotNil(t, svcs.ISO)
	assert.Equal(t, "coba-tasks", svcs.Report.taskQueue)
	assert.Equal(t, 92, svcs.Dashboard.satisfaction)
}
