package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlbb-fantasy/api/internal/domain/roster"
	"github.com/mlbb-fantasy/api/internal/infrastructure/repository/memory"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

func TestApplyPointsUpdatesAndCountsMissing(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	seedRoster(t, rosterRepo, 100, testID(9), 3, 0)
	seedRoster(t, rosterRepo, 101, testID(8), 3, 0)

	svc := NewPointsService(rosterRepo, logging.NewNop())

	result, err := svc.ApplyPoints(context.Background(), ApplyPointsInput{
		Week: 3,
		Entries: []PointsEntry{
			{UserID: testID(9), Points: 120},
			{UserID: testID(8), Points: 95},
			{UserID: testID(7), Points: 60},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 1, result.Missing)
	assert.Equal(t, 0, result.Failed)

	stored, exists, err := rosterRepo.GetByUserAndWeek(context.Background(), testID(9), 3)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, int64(120), stored.Points)
}

func TestApplyPointsFeedsLeaderboard(t *testing.T) {
	rosterRepo := memory.NewRosterRepository()
	seedRoster(t, rosterRepo, 100, testID(9), 3, 0)

	pointsSvc := NewPointsService(rosterRepo, logging.NewNop())
	_, err := pointsSvc.ApplyPoints(context.Background(), ApplyPointsInput{
		Week:    3,
		Entries: []PointsEntry{{UserID: testID(9), Points: 77}},
	})
	require.NoError(t, err)

	sums, err := rosterRepo.SumPointsByUser(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, roster.UserPoints{UserID: testID(9), Points: 77}, sums[0])
}

func TestApplyPointsValidation(t *testing.T) {
	svc := NewPointsService(memory.NewRosterRepository(), logging.NewNop())

	_, err := svc.ApplyPoints(context.Background(), ApplyPointsInput{Week: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ApplyPoints(context.Background(), ApplyPointsInput{Week: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ApplyPoints(context.Background(), ApplyPointsInput{
		Week:    1,
		Entries: []PointsEntry{{UserID: "bad", Points: 10}},
	})
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.ApplyPoints(context.Background(), ApplyPointsInput{
		Week:    1,
		Entries: []PointsEntry{{UserID: testID(9), Points: -1}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
