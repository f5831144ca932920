package cli

import (
	"context"
	"time"

	"github.com/corpac/coba/internal/core"
	"github.com/corpac/coba/internal/demo"
	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/rules"
)

// Views are the read-only screens next to the collections. *client.Client
// implements it against the API.
type Views interface {
	Dashboard(ctx context.Context) (*model.DashboardSnapshot, error)
	ISO(ctx context.Context, standard string) (*model.ISOCompliance, error)
}

// DemoViews derives the screens from the demo data set and the embedded ISO
// catalog.
type DemoViews struct {
	Data    *demo.Dataset
	Catalog *core.ISOService
	Now     func() time.Time
}

func (v DemoViews) Dashboard(context.Context) (*model.DashboardSnapshot, error) {
	return v.Data.Snapshot(v.Now(), rules.DefaultCustomerSatisfaction), nil
}

func (v DemoViews) ISO(_ context.Context, standard string) (*model.ISOCompliance, error) {
	return v.Catalog.Get(model.ISOStandard(standard))
}
