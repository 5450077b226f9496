package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sproutly/domain/dto"
)

func newPlantServiceForTest(t *testing.T) (*PlantServiceImpl, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	svc := NewPlantService(newFakePlantRepo(), userRepo).(*PlantServiceImpl)
	return svc, userRepo
}

func TestCreatePlantForcesStartingState(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newPlantServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	plant, err := svc.CreatePlant(ctx, owner.ID, &dto.CreatePlantRequest{
		Name:              "Fern",
		Type:              "fern",
		PointsToNextStage: 50,
		MaxStage:          4,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, plant.Stage)
	assert.Equal(t, 0, plant.Points)
	assert.False(t, plant.Completed)
	assert.WithinDuration(t, time.Now(), plant.StartDate, time.Second)
	assert.Equal(t, owner.ID, plant.UserID)
}

func TestGetCurrentPlantSkipsCompleted(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newPlantServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	finished, err := svc.CreatePlant(ctx, owner.ID, &dto.CreatePlantRequest{
		Name: "Old oak", Type: "oak", PointsToNextStage: 100, MaxStage: 3,
	})
	require.NoError(t, err)

	completed := true
	_, err = svc.UpdatePlant(ctx, finished.ID, &dto.UpdatePlantRequest{Completed: &completed})
	require.NoError(t, err)

	growing, err := svc.CreatePlant(ctx, owner.ID, &dto.CreatePlantRequest{
		Name: "New cactus", Type: "cactus", PointsToNextStage: 80, MaxStage: 5,
	})
	require.NoError(t, err)

	current, err := svc.GetCurrentPlant(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, growing.ID, current.ID)
}

func TestGetCurrentPlantNoneInProgress(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newPlantServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	current, err := svc.GetCurrentPlant(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestUpdatePlantPartialFields(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newPlantServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	plant, err := svc.CreatePlant(ctx, owner.ID, &dto.CreatePlantRequest{
		Name: "Fern", Type: "fern", PointsToNextStage: 50, MaxStage: 4,
	})
	require.NoError(t, err)

	points := 30
	stage := 2
	updated, err := svc.UpdatePlant(ctx, plant.ID, &dto.UpdatePlantRequest{
		Points: &points,
		Stage:  &stage,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 30, updated.Points)
	assert.Equal(t, 2, updated.Stage)
	assert.Equal(t, "Fern", updated.Name)
	assert.Equal(t, 50, updated.PointsToNextStage)
	assert.False(t, updated.Completed)
}

func TestUpdatePlantNotFound(t *testing.T) {
	svc, _ := newPlantServiceForTest(t)

	updated, err := svc.UpdatePlant(context.Background(), 123, &dto.UpdatePlantRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
