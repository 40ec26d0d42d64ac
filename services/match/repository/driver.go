package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/swiftcab/swiftcab/internal/pkg/constants"
	"github.com/swiftcab/swiftcab/internal/pkg/database"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/internal/utils"
)

// DriverRepo stores driver availability records in Redis: one hash per
// driver, a set of available driver ids, and a geo set mirroring their
// coordinates.
type DriverRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewDriverRepository creates a new driver availability repository
func NewDriverRepository(cfg *models.Config, redis *database.RedisClient) *DriverRepo {
	return &DriverRepo{
		cfg:   cfg,
		redis: redis,
	}
}

func availabilityKey(driverID string) string {
	return fmt.Sprintf(constants.KeyDriverAvailability, driverID)
}

// SetAvailable marks a driver available and records coordinates,
// vehicle class and geohash cell.
func (r *DriverRepo) SetAvailable(ctx context.Context, record models.DriverAvailability) error {
	key := availabilityKey(record.DriverID)

	cell := record.Geohash
	if cell == "" {
		cell = utils.EncodeLocation(record.Location)
	}
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	err := r.redis.HSet(ctx, key,
		constants.FieldLatitude, record.Location.Latitude,
		constants.FieldLongitude, record.Location.Longitude,
		constants.FieldVehicleClass, string(record.VehicleClass),
		constants.FieldGeohash, cell,
		constants.FieldUpdatedAt, updatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store availability record: %w", err)
	}

	if err := r.redis.SAdd(ctx, constants.KeyAvailableDrivers, record.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to available set: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo,
		record.Location.Longitude, record.Location.Latitude, record.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to geo set: %w", err)
	}

	return nil
}

// SetUnavailable removes a driver from matching.
func (r *DriverRepo) SetUnavailable(ctx context.Context, driverID string) error {
	if err := r.redis.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from available set: %w", err)
	}
	if err := r.redis.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo set: %w", err)
	}
	if err := r.redis.Delete(ctx, availabilityKey(driverID)); err != nil {
		return fmt.Errorf("failed to delete availability record: %w", err)
	}
	return nil
}

// UpdateLocation refreshes a driver's coordinates, geohash cell and
// updated-at timestamp without touching vehicle class or availability.
func (r *DriverRepo) UpdateLocation(ctx context.Context, driverID string, location models.Coordinates) error {
	key := availabilityKey(driverID)

	err := r.redis.HSet(ctx, key,
		constants.FieldLatitude, location.Latitude,
		constants.FieldLongitude, location.Longitude,
		constants.FieldGeohash, utils.EncodeLocation(location),
		constants.FieldUpdatedAt, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo,
		location.Longitude, location.Latitude, driverID); err != nil {
		return fmt.Errorf("failed to update driver geo position: %w", err)
	}

	return nil
}

// GetAvailableDrivers loads the full availability record of every
// driver in the available set. Drivers whose hash has disappeared are
// skipped rather than failing the whole scan.
func (r *DriverRepo) GetAvailableDrivers(ctx context.Context) ([]models.DriverAvailability, error) {
	ids, err := r.redis.SMembers(ctx, constants.KeyAvailableDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to list available drivers: %w", err)
	}

	records := make([]models.DriverAvailability, 0, len(ids))
	for _, id := range ids {
		fields, err := r.redis.HGetAll(ctx, availabilityKey(id))
		if err != nil {
			return nil, fmt.Errorf("failed to load availability record for %s: %w", id, err)
		}
		if len(fields) == 0 {
			logger.Warn("Available driver has no availability record, skipping",
				logger.String("driver_id", id))
			continue
		}

		record, err := parseAvailability(id, fields)
		if err != nil {
			logger.Warn("Skipping corrupt availability record",
				logger.String("driver_id", id),
				logger.Err(err))
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func parseAvailability(driverID string, fields map[string]string) (models.DriverAvailability, error) {
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return models.DriverAvailability{}, fmt.Errorf("bad latitude %q: %w", fields[constants.FieldLatitude], err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return models.DriverAvailability{}, fmt.Errorf("bad longitude %q: %w", fields[constants.FieldLongitude], err)
	}
	updatedUnix, err := strconv.ParseInt(fields[constants.FieldUpdatedAt], 10, 64)
	if err != nil {
		return models.DriverAvailability{}, fmt.Errorf("bad updated_at %q: %w", fields[constants.FieldUpdatedAt], err)
	}

	return models.DriverAvailability{
		DriverID:     driverID,
		Location:     models.Coordinates{Latitude: lat, Longitude: lng},
		VehicleClass: models.VehicleClass(fields[constants.FieldVehicleClass]),
		Available:    true,
		Geohash:      fields[constants.FieldGeohash],
		UpdatedAt:    time.Unix(updatedUnix, 0),
	}, nil
}
