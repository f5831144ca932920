package cli

import (
	"time"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/client"
	"github.com/corpac/coba/internal/controller"
	"github.com/corpac/coba/internal/demo"
	"github.com/corpac/coba/internal/model"
)

// Sources backs every collection. cobactl runs against the REST API or, with
// -demo, against in-memory demo data.
type Sources struct {
	Services        controller.Source[model.Service, request.CreateService]
	SLAs            controller.Source[model.SLA, request.CreateSLA]
	Incidents       controller.Source[model.Incident, request.CreateIncident]
	Audits          controller.Source[model.Audit, request.CreateAudit]
	NonConformities controller.Source[model.NonConformity, request.CreateNonConformity]
	Risks           controller.Source[model.Risk, request.CreateRisk]
	Assets          controller.Source[model.Asset, request.CreateAsset]
	Problems        controller.Source[model.Problem, request.CreateProblem]
	Reports         controller.Source[model.Report, request.CreateReport]
}

// APISources reads and writes through the REST API.
func APISources(c *client.Client) Sources {
	return Sources{
		Services:        client.NewCollection[model.Service, request.CreateService](c, "/services", nil),
		SLAs:            client.NewCollection[model.SLA, request.CreateSLA](c, "/slas", nil),
		Incidents:       client.NewCollection[model.Incident, request.CreateIncident](c, "/incidents", nil),
		Audits:          client.NewCollection[model.Audit, request.CreateAudit](c, "/audits", nil),
		NonConformities: client.NewCollection[model.NonConformity, request.CreateNonConformity](c, "/non-conformities", nil),
		Risks:           client.NewCollection[model.Risk, request.CreateRisk](c, "/risks", nil),
		Assets:          client.NewCollection[model.Asset, request.CreateAsset](c, "/assets", nil),
		Problems:        client.NewCollection[model.Problem, request.CreateProblem](c, "/problems", nil),
		Reports:         client.NewCollection[model.Report, request.CreateReport](c, "/reports", nil),
	}
}

// stamped adapts a demo builder to the clock.
func stamped[T, F any](build func(F, time.Time) (T, error), now func() time.Time) func(F) (T, error) {
	return func(f F) (T, error) { return build(f, now()) }
}

// DemoSources serves the demo data set from memory. Nothing persists
// between runs.
func DemoSources(d *demo.Dataset, now func() time.Time) Sources {
	return Sources{
		Services:        controller.NewMemory(d.Services, stamped(demo.NewService, now)),
		SLAs:            controller.NewMemory(d.SLAs, stamped(demo.NewSLA, now)),
		Incidents:       controller.NewMemory(d.Incidents, stamped(demo.NewIncident, now)),
		Audits:          controller.NewMemory(d.Audits, stamped(demo.NewAudit, now)),
		NonConformities: controller.NewMemory(d.NonConformities, stamped(demo.NewNonConformity, now)),
		Risks:           controller.NewMemory(d.Risks, stamped(demo.NewRisk, now)),
		Assets:          controller.NewMemory(d.Assets, stamped(demo.NewAsset, now)),
		Problems:        controller.NewMemory(d.Problems, stamped(demo.NewProblem, now)),
		Reports:         controller.NewMemory(d.Reports, stamped(demo.NewReport, now)),
	}
}

// Registry wires one controller per collection, all reporting to n.
func (s Sources) Registry(n controller.Notifier) Registry {
	r := Registry{}
	add := func(c Collection) { r[c.Name()] = c }

	add(newCollection(serviceLayout, s.Services, n))
	add(newCollection(slaLayout, s.SLAs, n))
	add(newCollection(incidentLayout, s.Incidents, n))
	add(newCollection(auditLayout, s.Audits, n))
	add(newCollection(nonConformityLayout, s.NonConformities, n))
	add(newCollection(riskLayout, s.Risks, n))
	add(newCollection(assetLayout, s.Assets, n))
	add(newCollection(problemLayout, s.Problems, n))
	add(newCollection(reportLayout, s.Reports, n))
	return r
}
