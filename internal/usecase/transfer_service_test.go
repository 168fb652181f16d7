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

// contendedRosterRepo rejects the first n conditional writes, simulating
// another writer landing between read and write.
type contendedRosterRepo struct {
	*memory.RosterRepository
	rejections int
}

func (r *contendedRosterRepo) ApplyTransfer(ctx context.Context, rosterID string, expectedVersion int64, update roster.Update, audit roster.Transfer) (bool, error) {
	if r.rejections > 0 {
		r.rejections--
		return false, nil
	}

	return r.RosterRepository.ApplyTransfer(ctx, rosterID, expectedVersion, update, audit)
}

func draftFixtureRoster(t *testing.T, svc *RosterService, playerIDs []string) roster.Roster {
	t.Helper()

	drafted, err := svc.CreateRoster(context.Background(), CreateRosterInput{
		UserID:    testID(9),
		Week:      3,
		PlayerIDs: playerIDs,
	})
	require.NoError(t, err)

	return drafted
}

func newTransferFixture(players []player.Player) (*RosterService, *TransferService, *memory.RosterRepository) {
	playerRepo := memory.NewPlayerRepository(players)
	rosterRepo := memory.NewRosterRepository()
	logger := logging.NewNop()

	rosterSvc := NewRosterService(playerRepo, rosterRepo, &seqIDGen{next: 100}, logger)
	rosterSvc.now = testClock
	transferSvc := NewTransferService(playerRepo, rosterRepo, &seqIDGen{next: 200}, logger)
	transferSvc.now = testClock

	return rosterSvc, transferSvc, rosterRepo
}

func TestTransferSwapsAndRecordsAudit(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(2, 35),
		testPlayer(3, 20),
		testPlayer(4, 24),
	}
	rosterSvc, transferSvc, _ := newTransferFixture(players)
	draftFixtureRoster(t, rosterSvc, []string{testID(1), testID(2), testID(3)})

	updated, err := transferSvc.Transfer(context.Background(), TransferInput{
		UserID:      testID(9),
		Week:        3,
		OutPlayerID: testID(3),
		InPlayerID:  testID(4),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{testID(1), testID(2), testID(4)}, updated.PlayerIDs)
	assert.Equal(t, int64(99), updated.TotalCost)
	assert.Equal(t, int64(2), updated.Version)

	audits, err := transferSvc.ListTransfers(context.Background(), testID(9), 3)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, testID(3), audits[0].OutPlayerID)
	assert.Equal(t, testID(4), audits[0].InPlayerID)
	assert.Equal(t, 3, audits[0].Week)
}

func TestTransferBudgetExceededLeavesRosterUntouched(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(2, 35),
		testPlayer(3, 20),
		testPlayer(4, 30),
	}
	rosterSvc, transferSvc, rosterRepo := newTransferFixture(players)
	before := draftFixtureRoster(t, rosterSvc, []string{testID(1), testID(2), testID(3)})

	_, err := transferSvc.Transfer(context.Background(), TransferInput{
		UserID:      testID(9),
		Week:        3,
		OutPlayerID: testID(3),
		InPlayerID:  testID(4),
	})
	require.ErrorIs(t, err, roster.ErrBudgetExceeded)

	stored, exists, err := rosterRepo.GetByUserAndWeek(context.Background(), testID(9), 3)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, before.PlayerIDs, stored.PlayerIDs)
	assert.Equal(t, before.TotalCost, stored.TotalCost)
	assert.Equal(t, before.Version, stored.Version)

	audits, err := transferSvc.ListTransfers(context.Background(), testID(9), 3)
	require.NoError(t, err)
	assert.Empty(t, audits, "a rejected transfer must not leave an audit record")
}

func TestTransferAbsentOutPlayerIsNoOpRemoval(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(4, 24),
		testPlayer(5, 10),
	}
	rosterSvc, transferSvc, _ := newTransferFixture(players)
	draftFixtureRoster(t, rosterSvc, []string{testID(1)})

	updated, err := transferSvc.Transfer(context.Background(), TransferInput{
		UserID:      testID(9),
		Week:        3,
		OutPlayerID: testID(5),
		InPlayerID:  testID(4),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{testID(1), testID(4)}, updated.PlayerIDs)
	assert.Equal(t, int64(64), updated.TotalCost)
}

func TestTransferRetriesPastVersionRace(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(4, 24),
	}
	playerRepo := memory.NewPlayerRepository(players)
	rosterRepo := memory.NewRosterRepository()
	rosterSvc := NewRosterService(playerRepo, rosterRepo, &seqIDGen{next: 100}, logging.NewNop())
	rosterSvc.now = testClock
	draftFixtureRoster(t, rosterSvc, []string{testID(1)})

	contended := &contendedRosterRepo{RosterRepository: rosterRepo, rejections: 2}
	transferSvc := NewTransferService(playerRepo, contended, &seqIDGen{next: 200}, logging.NewNop())
	transferSvc.now = testClock

	updated, err := transferSvc.Transfer(context.Background(), TransferInput{
		UserID:      testID(9),
		Week:        3,
		OutPlayerID: testID(1),
		InPlayerID:  testID(4),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{testID(4)}, updated.PlayerIDs)
}

func TestTransferGivesUpAfterMaxAttempts(t *testing.T) {
	players := []player.Player{
		testPlayer(1, 40),
		testPlayer(4, 24),
	}
	playerRepo := memory.NewPlayerRepository(players)
	rosterRepo := memory.NewRosterRepository()
	rosterSvc := NewRosterService(playerRepo, rosterRepo, &seqIDGen{next: 100}, logging.NewNop())
	rosterSvc.now = testClock
	draftFixtureRoster(t, rosterSvc, []string{testID(1)})

	contended := &contendedRosterRepo{RosterRepository: rosterRepo, rejections: transferMaxAttempts}
	transferSvc := NewTransferService(playerRepo, contended, &seqIDGen{next: 200}, logging.NewNop())
	transferSvc.now = testClock

	_, err := transferSvc.Transfer(context.Background(), TransferInput{
		UserID:      testID(9),
		Week:        3,
		OutPlayerID: testID(1),
		InPlayerID:  testID(4),
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestTransferMissingRoster(t *testing.T) {
	_, transferSvc, _ := newTransferFixture([]player.Player{testPlayer(1, 40)})

	_, err := transferSvc.Transfer(context.Background(), TransferInput{
		UserID:      testID(9),
		Week:        3,
		OutPlayerID: testID(1),
		InPlayerID:  testID(1),
	})
	require.ErrorIs(t, err, ErrNotFound)
}
