package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"realestate-api/domain"
)

const (
	propertyKeyPrefix    = "property:"
	propertyIDsKey       = "properties:ids"
	propertyStatusPrefix = "properties:status:"
	propertyLocPrefix    = "properties:location:"
	propertyAddressesKey = "properties:addresses"
)

// RedisPropertyRepository stores property records in redis: the JSON
// record under property:<id>, membership sets per status and location,
// and an address-to-id hash for uniqueness checks.
type RedisPropertyRepository struct {
	client *redis.Client
}

// NewRedisPropertyRepository connects to redis at the given address.
func NewRedisPropertyRepository(addr string) *RedisPropertyRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPropertyRepository{client: rdb}
}

// Save writes the record and its index entries in one pipeline.
func (r *RedisPropertyRepository) Save(ctx context.Context, p domain.Property) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal property %s: %w", p.ID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, propertyKeyPrefix+p.ID, data, 0)
		pipe.SAdd(ctx, propertyIDsKey, p.ID)
		pipe.SAdd(ctx, propertyStatusPrefix+p.Status, p.ID)
		pipe.SAdd(ctx, propertyLocPrefix+p.Location, p.ID)
		pipe.HSet(ctx, propertyAddressesKey, p.Address, p.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save property %s: %w", p.ID, err)
	}
	return nil
}

// List fetches ids from the narrowest matching index set, loads the
// records, and returns them newest first, capped at filter.Limit.
// Records that fail to decode are skipped rather than failing the whole
// listing.
func (r *RedisPropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	indexKey := propertyIDsKey
	if filter.Status != "" {
		indexKey = propertyStatusPrefix + filter.Status
	} else if filter.Location != "" {
		indexKey = propertyLocPrefix + filter.Location
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list property ids: %w", err)
	}

	properties := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, propertyKeyPrefix+id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("load property %s: %w", id, err)
		}

		var p domain.Property
		if err := json.Unmarshal(data, &p); err != nil {
			continue
		}
		// Index sets can lag the record on filtered lookups
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

// FindByAddress resolves the address hash to an id and loads the record.
func (r *RedisPropertyRepository) FindByAddress(ctx context.Context, address string) (domain.Property, error) {
	id, err := r.client.HGet(ctx, propertyAddressesKey, address).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, fmt.Errorf("resolve address: %w", err)
	}

	data, err := r.client.Get(ctx, propertyKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, fmt.Errorf("load property %s: %w", id, err)
	}

	var p domain.Property
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Property{}, fmt.Errorf("decode property %s: %w", id, err)
	}
	return p, nil
}

// Ping checks that the store is reachable.
func (r *RedisPropertyRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
