package usecase

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/swiftcab/internal/pkg/database"
	"github.com/swiftcab/swiftcab/internal/pkg/models"
	"github.com/swiftcab/swiftcab/services/match/mocks"
	"github.com/swiftcab/swiftcab/services/match/repository"
)

// Full pass through the real Redis repository: two drivers go online,
// one near and one far, and only the near one lands in the candidate
// set for a bike ride at (12.90, 77.60).
func TestMatchingPassAgainstRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := repository.NewDriverRepository(&models.Config{}, database.NewRedisClientFromConn(client))

	mockGW := mocks.NewMockMatchGW(ctrl)
	uc := NewMatchUC(matchConfig(), repo, mockGW)
	ctx := context.Background()

	nearID := uuid.NewString()
	farID := uuid.NewString()

	require.NoError(t, uc.UpdateAvailability(ctx, nearID, models.AvailabilityRequest{
		Available:    true,
		Location:     models.Coordinates{Latitude: 12.905, Longitude: 77.605},
		VehicleClass: models.VehicleBike,
	}))
	require.NoError(t, uc.UpdateAvailability(ctx, farID, models.AvailabilityRequest{
		Available:    true,
		Location:     models.Coordinates{Latitude: 12.95, Longitude: 77.65},
		VehicleClass: models.VehicleBike,
	}))

	event := rideAt(12.90, 77.60, models.VehicleBike)
	mockGW.EXPECT().PublishCandidateSet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, set models.CandidateSet) error {
			assert.Equal(t, []string{nearID}, set.DriverIDs)
			return nil
		})

	require.NoError(t, uc.HandleRideCreated(ctx, event))

	// After the near driver goes offline the same ride finds nobody and
	// no candidate set is published.
	require.NoError(t, uc.UpdateAvailability(ctx, nearID, models.AvailabilityRequest{Available: false}))
	require.NoError(t, uc.HandleRideCreated(ctx, rideAt(12.90, 77.60, models.VehicleBike)))
}
