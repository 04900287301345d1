package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellness_backend/internals/constants"
	"wellness_backend/internals/features/programs/domains/model"
	helper "wellness_backend/internals/helpers"
)

// Catalog is an in-memory view of the domain table.
type Catalog struct {
	byID   map[uuid.UUID]model.DomainModel
	byName map[string]model.DomainModel
}

func NewCatalog(entries []model.DomainModel) *Catalog {
	c := &Catalog{
		byID:   make(map[uuid.UUID]model.DomainModel, len(entries)),
		byName: make(map[string]model.DomainModel, len(entries)),
	}
	for _, e := range entries {
		c.byID[e.DomainID] = e
		c.byName[e.DomainName] = e
	}
	return c
}

// LoadCatalog reads every live catalog entry.
func LoadCatalog(ctx context.Context, db *gorm.DB) (*Catalog, error) {
	var rows []model.DomainModel
	if err := db.WithContext(ctx).Order("domain_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return NewCatalog(rows), nil
}

// LoadCatalogByIDs reads only the requested entries. Unknown ids are a
// validation error.
func LoadCatalogByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (*Catalog, error) {
	if len(ids) == 0 {
		return NewCatalog(nil), nil
	}
	var rows []model.DomainModel
	if err := db.WithContext(ctx).Where("domain_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	c := NewCatalog(rows)
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("%w: unknown domain %s", helper.ErrValidation, id)
		}
	}
	return c, nil
}

func (c *Catalog) ByID(id uuid.UUID) (model.DomainModel, bool) {
	m, ok := c.byID[id]
	return m, ok
}

func (c *Catalog) ByName(name string) (model.DomainModel, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// HappinessParameters returns the parameters tagged on name, or an empty set
// when the catalog has no such domain.
func (c *Catalog) HappinessParameters(name string) []constants.HappinessParameter {
	m, ok := c.byName[name]
	if !ok {
		return []constants.HappinessParameter{}
	}
	return m.Parameters()
}

func (c *Catalog) Len() int { return len(c.byID) }
