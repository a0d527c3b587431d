package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"realestate-api/domain"
	"realestate-api/repository"
)

// PropertyService implements property record management on top of the
// key-value repository.
type PropertyService struct {
	repo   repository.PropertyRepository
	logger *zap.Logger
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(repo repository.PropertyRepository, logger *zap.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

// Create validates the request, rejects duplicate addresses, stamps
// system fields, and persists the record.
func (s *PropertyService) Create(ctx context.Context, req domain.PropertyCreate) (domain.Property, error) {
	if err := validatePropertyCreate(req); err != nil {
		return domain.Property{}, err
	}

	existing, err := s.repo.FindByAddress(ctx, req.Address)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		// The duplicate check is best-effort; creation proceeds
		s.logger.Warn("duplicate address check failed",
			zap.String("address", req.Address),
			zap.Error(err),
		)
	}
	if err == nil {
		s.logger.Warn("property with same address already exists",
			zap.String("address", req.Address),
			zap.String("existing_id", existing.ID),
		)
		return domain.Property{}, domain.ErrDuplicateAddress
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := domain.Property{
		ID:           uuid.NewString(),
		Address:      req.Address,
		Price:        req.Price,
		Location:     req.Location,
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		Description:  req.Description,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return domain.Property{}, fmt.Errorf("save property: %w", err)
	}
	return p, nil
}

// List returns property records matching the filter. The limit defaults
// to DefaultListLimit and is capped at MaxListLimit.
func (s *PropertyService) List(ctx context.Context, filter domain.PropertyFilter) (domain.PropertyList, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	properties, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.PropertyList{}, fmt.Errorf("list properties: %w", err)
	}

	return domain.PropertyList{
		Properties: properties,
		Count:      len(properties),
		Filters:    filter,
	}, nil
}

// Ping reports whether the backing store is reachable.
func (s *PropertyService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func validatePropertyCreate(req domain.PropertyCreate) error {
	verr := &domain.ValidationError{}

	if n := len(req.Address); n < MinAddressLen || n > MaxAddressLen {
		verr.Add("address", fmt.Sprintf("must be between %d and %d characters", MinAddressLen, MaxAddressLen))
	}
	if req.Price <= 0 {
		verr.Add("price", "must be greater than 0")
	}
	if n := len(req.Location); n < MinLocationLen || n > MaxLocationLen {
		verr.Add("location", fmt.Sprintf("must be between %d and %d characters", MinLocationLen, MaxLocationLen))
	}
	if n := len(req.PropertyType); n < MinPropertyTypeLen || n > MaxPropertyTypeLen {
		verr.Add("property_type", fmt.Sprintf("must be between %d and %d characters", MinPropertyTypeLen, MaxPropertyTypeLen))
	}
	if req.Bedrooms != nil && (*req.Bedrooms < 0 || *req.Bedrooms > MaxBedrooms) {
		verr.Add("bedrooms", fmt.Sprintf("must be between 0 and %d", MaxBedrooms))
	}
	if req.Bathrooms != nil && (*req.Bathrooms < 0 || *req.Bathrooms > MaxBathrooms) {
		verr.Add("bathrooms", fmt.Sprintf("must be between 0 and %.0f", MaxBathrooms))
	}
	if req.SquareFeet != nil && *req.SquareFeet <= 0 {
		verr.Add("square_feet", "must be greater than 0")
	}
	if len(req.Description) > MaxDescriptionLen {
		verr.Add("description", fmt.Sprintf("must be at most %d characters", MaxDescriptionLen))
	}
	if req.Status != "" && !validStatus(req.Status) {
		verr.Add("status", fmt.Sprintf("must be one of: %v", domain.ValidStatuses))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func validStatus(status string) bool {
	for _, s := range domain.ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
