package repository

import (
	"context"
	"sort"
	"sync"

	"realestate-api/domain"
)

// PropertyRepositoryMemory is an in-memory implementation of
// PropertyRepository, used in tests and when no store is configured.
type PropertyRepositoryMemory struct {
	mu        sync.RWMutex
	byID      map[string]domain.Property
	byAddress map[string]string
}

// NewPropertyRepositoryMemory creates an empty in-memory repository.
func NewPropertyRepositoryMemory() *PropertyRepositoryMemory {
	return &PropertyRepositoryMemory{
		byID:      make(map[string]domain.Property),
		byAddress: make(map[string]string),
	}
}

// Save stores the property record.
func (r *PropertyRepositoryMemory) Save(ctx context.Context, p domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	r.byAddress[p.Address] = p.ID
	return nil
}

// List returns records matching the filter, newest first, capped at
// filter.Limit.
func (r *PropertyRepositoryMemory) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]domain.Property, 0, len(r.byID))
	for _, p := range r.byID {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Location != "" && p.Location != filter.Location {
			continue
		}
		properties = append(properties, p)
	}

	sort.Slice(properties, func(i, j int) bool {
		return properties[i].CreatedAt > properties[j].CreatedAt
	})

	if filter.Limit > 0 && len(properties) > filter.Limit {
		properties = properties[:filter.Limit]
	}
	return properties, nil
}

// FindByAddress looks up a record by its exact address.
func (r *PropertyRepositoryMemory) FindByAddress(ctx context.Context, address string) (domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byAddress[address]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return r.byID[id], nil
}

// Ping always succeeds for the in-memory store.
func (r *PropertyRepositoryMemory) Ping(ctx context.Context) error {
	return nil
}
