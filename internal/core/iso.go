package core

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/corpac/coba/internal/model"
	"github.com/corpac/coba/internal/rules"
)

//go:embed iso_catalog.yaml
var isoCatalogYAML []byte

type isoCatalog struct {
	Standards []struct {
		ID           model.ISOStandard      `yaml:"id"`
		Title        string                 `yaml:"title"`
		Requirements []model.ISORequirement `yaml:"requirements"`
	} `yaml:"standards"`
}

// ISOService serves the clause mapping of the tracked standards.
type ISOService struct {
	standards map[model.ISOStandard]model.ISOCompliance
	order     []model.ISOStandard
}

// NewISOService parses the embedded catalog.
func NewISOService() (*ISOService, error) {
	return parseISOCatalog(isoCatalogYAML)
}

func parseISOCatalog(data []byte) (*ISOService, error) {
	var cat isoCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse iso catalog: %w", err)
	}

	s := &ISOService{standards: make(map[model.ISOStandard]model.ISOCompliance)}
	for _, std := range cat.Standards {
		if !std.ID.Valid() {
			return nil, fmt.Errorf("iso catalog: unknown standard %q", std.ID)
		}
		for _, r := range std.Requirements {
			if !r.Status.Valid() {
				return nil, fmt.Errorf("iso catalog: %s %s: invalid status %q", std.ID, r.Clause, r.Status)
			}
		}
		s.standards[std.ID] = rules.ISOCompliance(std.ID, std.Title, std.Requirements)
		s.order = append(s.order, std.ID)
	}
	return s, nil
}

// Get returns the compliance summary of one standard.
func (s *ISOService) Get(standard model.ISOStandard) (*model.ISOCompliance, error) {
	c, ok := s.standards[standard]
	if !ok {
		return nil, fmt.Errorf("iso standard %s: %w", standard, ErrNotFound)
	}
	return &c, nil
}

// All returns every standard in catalog order.
func (s *ISOService) All() []model.ISOCompliance {
	out := make([]model.ISOCompliance, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.standards[id])
	}
	return out
}
