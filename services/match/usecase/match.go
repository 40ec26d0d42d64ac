package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/internal/utils"
	"github.com/swiftcab/swiftcab/services/match"
)

// matchUC implements the match.MatchUC interface
type matchUC struct {
	cfg        *models.Config
	driverRepo match.DriverRepo
	matchGW    match.MatchGW
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	driverRepo match.DriverRepo,
	matchGW match.MatchGW,
) match.MatchUC {
	return &matchUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		matchGW:    matchGW,
	}
}

// HandleRideCreated assembles the candidate set for a new ride: every
// available driver of the right vehicle class within the search radius,
// judged on the coordinates known right now. All qualifiers are pushed
// at once; there is no ranking and no cap. An empty set produces no
// event. Storage errors propagate so the bus redelivers.
func (uc *matchUC) HandleRideCreated(ctx context.Context, event models.RideCreatedEvent) error {
	drivers, err := uc.driverRepo.GetAvailableDrivers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load available drivers: %w", err)
	}

	neighborhood := utils.GeohashNeighborhood(event.Coordinates)
	radius := uc.cfg.Match.SearchRadiusKm
	freshness := time.Duration(uc.cfg.Match.LocationFreshness) * time.Second
	now := time.Now()

	candidates := make([]string, 0, len(drivers))
	for _, d := range drivers {
		if d.VehicleClass != event.VehicleClass {
			continue
		}
		if freshness > 0 && now.Sub(d.UpdatedAt) > freshness {
			logger.Debug("Excluding driver with stale location",
				logger.String("driver_id", d.DriverID),
				logger.Duration("age", now.Sub(d.UpdatedAt)))
			continue
		}
		// Coarse cut by geohash cell before the exact distance check.
		if d.Geohash != "" {
			if _, ok := neighborhood[utils.NeighborhoodCell(d.Geohash)]; !ok {
				continue
			}
		}
		if utils.CalculateDistance(event.Coordinates, d.Location) > radius {
			continue
		}
		candidates = append(candidates, d.DriverID)
	}

	if len(candidates) == 0 {
		logger.Info("No candidate drivers for ride",
			logger.String("ride_id", event.RideID),
			logger.String("vehicle_class", string(event.VehicleClass)))
		return nil
	}

	logger.Info("Publishing candidate set",
		logger.String("ride_id", event.RideID),
		logger.Int("candidates", len(candidates)))

	set := models.CandidateSet{
		Ride:      event,
		DriverIDs: candidates,
	}
	if err := uc.matchGW.PublishCandidateSet(ctx, set); err != nil {
		return fmt.Errorf("failed to publish candidate set: %w", err)
	}
	return nil
}

// UpdateAvailability handles a driver going online or offline.
func (uc *matchUC) UpdateAvailability(ctx context.Context, driverID string, req models.AvailabilityRequest) error {
	if !req.Available {
		logger.Info("Driver going offline", logger.String("driver_id", driverID))
		return uc.driverRepo.SetUnavailable(ctx, driverID)
	}

	record := models.DriverAvailability{
		DriverID:     driverID,
		Location:     req.Location,
		VehicleClass: req.VehicleClass,
		Available:    true,
		Geohash:      utils.EncodeLocation(req.Location),
		UpdatedAt:    time.Now(),
	}

	logger.Info("Driver going online",
		logger.String("driver_id", driverID),
		logger.String("vehicle_class", string(req.VehicleClass)))
	return uc.driverRepo.SetAvailable(ctx, record)
}

// UpdateLocation refreshes an online driver's coordinates.
func (uc *matchUC) UpdateLocation(ctx context.Context, driverID string, location models.Coordinates) error {
	return uc.driverRepo.UpdateLocation(ctx, driverID, location)
}
