package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlbb-fantasy/api/internal/domain/player"
	"github.com/mlbb-fantasy/api/internal/infrastructure/repository/memory"
	"github.com/mlbb-fantasy/api/internal/platform/logging"
)

func TestListPlayersFilters(t *testing.T) {
	jungler := testPlayer(1, 40)
	goldlaner := testPlayer(2, 35)
	goldlaner.Role = player.RoleGoldlane
	goldlaner.Team = "RRQ Hoshi"

	svc := NewPlayerService(memory.NewPlayerRepository([]player.Player{jungler, goldlaner}), &seqIDGen{}, logging.NewNop())

	all, err := svc.ListPlayers(context.Background(), player.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	junglers, err := svc.ListPlayers(context.Background(), player.Filter{Role: player.RoleJungler})
	require.NoError(t, err)
	require.Len(t, junglers, 1)
	assert.Equal(t, jungler.ID, junglers[0].ID)

	rrq, err := svc.ListPlayers(context.Background(), player.Filter{Team: "RRQ Hoshi"})
	require.NoError(t, err)
	require.Len(t, rrq, 1)
	assert.Equal(t, goldlaner.ID, rrq[0].ID)
}

func TestListPlayersUnknownRole(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(nil), &seqIDGen{}, logging.NewNop())

	_, err := svc.ListPlayers(context.Background(), player.Filter{Role: "carry"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSeedPlayerAssignsIDAndTimestamps(t *testing.T) {
	repo := memory.NewPlayerRepository(nil)
	svc := NewPlayerService(repo, &seqIDGen{}, logging.NewNop())
	svc.now = testClock

	created, err := svc.SeedPlayer(context.Background(), player.Player{
		Name:    "Kairi Rayosdelsol",
		IGN:     "Kairi",
		Team:    "ONIC",
		Role:    player.RoleJungler,
		Cost:    40,
		WinRate: 71.2,
	})
	require.NoError(t, err)

	assert.Equal(t, testID(1), created.ID)
	assert.Equal(t, testClock().UTC(), created.CreatedAt)

	fetched, err := repo.GetByIDs(context.Background(), []string{created.ID})
	require.NoError(t, err)
	require.Len(t, fetched, 1)
}

func TestSeedPlayerValidation(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(nil), &seqIDGen{}, logging.NewNop())

	cases := []struct {
		name  string
		input player.Player
	}{
		{"missing name", player.Player{IGN: "x", Team: "ONIC", Role: player.RoleJungler, Cost: 10}},
		{"zero cost", player.Player{Name: "A", IGN: "a", Team: "ONIC", Role: player.RoleJungler, Cost: 0}},
		{"bad role", player.Player{Name: "A", IGN: "a", Team: "ONIC", Role: "carry", Cost: 10}},
		{"win rate over 100", player.Player{Name: "A", IGN: "a", Team: "ONIC", Role: player.RoleJungler, Cost: 10, WinRate: 101}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SeedPlayer(context.Background(), tc.input)
			require.ErrorIs(t, err, player.ErrValidation)
		})
	}
}
