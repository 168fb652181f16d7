package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/domain/roster"
	"github.com/mlbb-fantasy/api/internal/infrastructure/repository/memory"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

func newRosterFixture(players []player.Player) (*RosterService, *memory.RosterRepository) {
	rosterRepo := memory.NewRosterRepository()
	svc := NewRosterService(memory.NewPlayerRepository(players), rosterRepo, &seqIDGen{next: 100}, logging.NewNop())
	svc.now = testClock

	return svc, rosterRepo
}

func TestCreateRosterAtExactBudgetCap(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(2, 35),
		testPlayer(3, 25),
	}
	svc, _ := newRosterFixture(players)

	drafted, err := svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    testID(9),
		Week:      3,
		PlayerIDs: []string{testID(1), testID(2), testID(3)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), drafted.TotalCost)
	assert.Equal(t, roster.DefaultBudget, drafted.Budget)
	assert.Equal(t, int64(1), drafted.Version)
	assert.Equal(t, testClock().UTC(), drafted.CreatedAt)
}

func TestCreateRosterBudgetExceeded(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(2, 35),
		testPlayer(3, 26),
	}
	svc, rosterRepo := newRosterFixture(players)

	_, err := svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    testID(9),
		Week:      3,
		PlayerIDs: []string{testID(1), testID(2), testID(3)},
	})
	require.ErrorIs(t, err, roster.ErrBudgetExceeded)

	_, exists, err := rosterRepo.GetByUserAndWeek(context.Background(), testID(9), 3)
	require.NoError(t, err)
	assert.False(t, exists, "a rejected draft must not persist")
}

func TestCreateRosterUnknownPlayerFails(t *testing.T) {
	svc, _ := newRosterFixture([]player.Player{testPlayer(1, 40)})

	_, err := svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    testID(9),
		Week:      3,
		PlayerIDs: []string{testID(1), testID(2)},
	})
	require.ErrorIs(t, err, roster.ErrUnknownPlayer)
}

func TestCreateRosterMalformedIDs(t *testing.T) {
	svc, _ := newRosterFixture([]player.Player{testPlayer(1, 40)})

	_, err := svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    "not-a-hex-id",
		Week:      3,
		PlayerIDs: []string{testID(1)},
	})
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    testID(9),
		Week:      3,
		PlayerIDs: []string{"zzzz"},
	})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestCreateRosterDuplicateWeekConflicts(t *testing.T) {
	svc, _ := newRosterFixture([]player.Player{testPlayer(1, 40)})

	input := CreateRosterInput{
		UserID:    testID(9),
		Week:      3,
		PlayerIDs: []string{testID(1)},
	}
	_, err := svc.CreateRoster(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateRoster(context.Background(), input)
	require.ErrorIs(t, err, ErrConflict)
}

func TestCreateRosterCustomBudget(t *testing.T) {
	svc, _ := newRosterFixture([]player.Player{testPlayer(1, 110)})

	drafted, err := svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    testID(9),
		Week:      1,
		PlayerIDs: []string{testID(1)},
		Budget:    120,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), drafted.Budget)
}

func TestGetRosterNotFound(t *testing.T) {
	svc, _ := newRosterFixture(nil)

	_, err := svc.GetRoster(context.Background(), testID(9), 1)
	require.ErrorIs(t, err, ErrNotFound)
}
