package repository

import (
	"context"

	"realestate-api/domain"
)

// PropertyRepository is the key-value backed property table.
// FindByAddress returns domain.ErrNotFound when no record matches.
type PropertyRepository interface {
	Save(ctx context.Context, p domain.Property) error
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	FindByAddress(ctx context.Context, address string) (domain.Property, error)
	Ping(ctx context.Context) error
}
