package usecase

import (
	"fmt"
	"time"

	"github.com/mlbb-fantasy/api/internal/domain/player"
)

// seqIDGen hands out deterministic 24-hex ids so assertions can name them.
type seqIDGen struct{ next int }

func (g *seqIDGen) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%024x", g.next), nil
}

func testID(n int) string {
	return fmt.Sprintf("%024x", n)
}

func testClock() time.Time {
	return time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
}

func testPlayer(n int, cost int64) player.Player {
	return player.Player{
		ID:      testID(n),
		Name:    fmt.Sprintf("Pro Player %d", n),
		IGN:     fmt.Sprintf("pro%d", n),
		Team:    "ONIC",
		Role:    player.RoleJungler,
		Cost:    cost,
		WinRate: 60,
	}
}
